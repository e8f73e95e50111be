package writer

import (
	"io"
	"os"
	"time"

	"github.com/achilleasa/scexport/log"
	"github.com/achilleasa/scexport/scene"
)

type textSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new text scene writer.
func newTextSceneWriter(sceneFile string) *textSceneWriter {
	return &textSceneWriter{
		logger:    log.New("scene writer"),
		sceneFile: sceneFile,
	}
}

// Write scene text to a file.
func (w *textSceneWriter) Write(img *scene.Image) error {
	w.logger.Noticef("writing scene settings to %s", w.sceneFile)
	start := time.Now()

	f, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}

	err = WriteBlocks(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	w.logger.Infof("wrote scene settings in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}

// Write the main block followed by the floor block. All scene points must
// have been passed to img.CheckLowestPoint before calling WriteBlocks.
func WriteBlocks(out io.Writer, img *scene.Image) error {
	mainBlock, err := img.MainBlock()
	if err != nil {
		return err
	}

	if _, err = io.WriteString(out, mainBlock); err != nil {
		return err
	}

	_, err = io.WriteString(out, img.FloorBlock())
	return err
}

// Write scene settings to a text file.
func WriteScene(img *scene.Image, filename string) error {
	writer := newTextSceneWriter(filename)
	return writer.Write(img)
}
