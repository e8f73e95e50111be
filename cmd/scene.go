package cmd

import (
	"github.com/achilleasa/scexport/scene/writer"
	"github.com/urfave/cli"
)

// Read scene points and write the image and floor blocks to a file.
func ExportScene(ctx *cli.Context) error {
	img, err := buildImage(ctx)
	if err != nil {
		return err
	}

	if err = checkScenePoints(ctx, img); err != nil {
		return err
	}

	displayFloorStats(img)

	sceneFile := ctx.String("out")
	if sceneFile == "" || sceneFile == "-" {
		return writer.WriteBlocks(ctx.App.Writer, img)
	}

	return writer.WriteScene(img, sceneFile)
}
