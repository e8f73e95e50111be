package cmd

import (
	"github.com/achilleasa/scexport/log"
	"github.com/urfave/cli"
)

var logger = log.New("scexport")

func setupLogging(ctx *cli.Context, levelName string) error {
	if levelName != "" {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	return nil
}
