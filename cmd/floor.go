package cmd

import (
	"fmt"

	"github.com/achilleasa/scexport/asset"
	"github.com/achilleasa/scexport/asset/reader"
	"github.com/achilleasa/scexport/scene"
	"github.com/urfave/cli"
)

// Stream the points of every input file into img. Standard input is read
// when no files are given.
func checkScenePoints(ctx *cli.Context, img *scene.Image) error {
	files := []string(ctx.Args())
	if len(files) == 0 {
		files = []string{asset.StdinName}
	}

	for _, file := range files {
		if _, err := reader.ReadPoints(file, img); err != nil {
			return err
		}
	}

	if img.PointCount() == 0 {
		logger.Warning("no scene points read; floor will be placed below the origin")
	}

	return nil
}

// Read scene points and print the floor shader and plane.
func PrintFloor(ctx *cli.Context) error {
	img, err := buildImage(ctx)
	if err != nil {
		return err
	}

	if err = checkScenePoints(ctx, img); err != nil {
		return err
	}

	displayFloorStats(img)

	_, err = fmt.Fprint(ctx.App.Writer, img.FloorBlock())
	return err
}
