package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gingerprotocol/rewards-backend/internal/catalog"
)

// newApp creates the command line application
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ginger-rewards"
	app.Usage = "Challenge and lottery reward engine"
	app.Action = startServer
	app.Commands = []*cli.Command{
		{
			Action:      startServer,
			Name:        "serve",
			Usage:       "Start the HTTP API",
			Category:    "Api",
			Description: `Starts the rewards API with the storage driver selected in the configuration.`,
		},
		{
			Action:   printCatalog,
			Name:     "catalog",
			Usage:    "Print the challenge catalog of a day as JSON",
			Category: "Tools",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "day", Value: 1, Usage: "program day"},
			},
		},
	}
	return app
}

func printCatalog(ctx *cli.Context) error {
	out, err := json.MarshalIndent(catalog.Generate(ctx.Int("day")), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(out))
	return err
}
