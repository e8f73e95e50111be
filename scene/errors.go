package scene

import "errors"

var (
	ErrUnknownShader  = errors.New("scene: unknown floor shader")
	ErrMissingSetting = errors.New("scene: missing image setting")
)
