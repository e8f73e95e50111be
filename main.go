package main

import (
	"os"

	"github.com/achilleasa/scexport/cmd"
	"github.com/achilleasa/scexport/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "scexport"
	app.Usage = "generate sunflow image settings and floor planes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "image",
			Usage:  "print the image, trace-depths, gi and background blocks",
			Flags:  cmd.ImageFlags,
			Action: cmd.PrintImage,
		},
		{
			Name:  "floor",
			Usage: "print a floor plane placed below the lowest scene point",
			Description: `
Stream the vertices of one or more wavefront obj files (or stdin when no
files are given), rotate them by the floor angle to find the lowest point
and print the floor shader and plane object.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     cmd.ImageFlags,
			Action:    cmd.PrintFloor,
		},
		{
			Name:  "scene",
			Usage: "write image settings and the floor plane to a scene file",
			Description: `
Combine the image and floor commands. The generated text is meant to be
included by a scene file that defines the camera and the scene objects.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.sc",
					Usage: `scene file to write; use "-" for stdout`,
				},
			}, cmd.ImageFlags...),
			Action: cmd.ExportScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("scexport").Error(err)
		os.Exit(1)
	}
}
