package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// Print the image, trace-depths, gi and background blocks.
func PrintImage(ctx *cli.Context) error {
	img, err := buildImage(ctx)
	if err != nil {
		return err
	}

	mainBlock, err := img.MainBlock()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.App.Writer, mainBlock)
	return err
}
