package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/client"
	"github.com/utilkit-io/utilkit/cmd/utilkit/commands"
	"github.com/utilkit-io/utilkit/internal/config"
	"github.com/utilkit-io/utilkit/models"
)

func getSystemCommands(build models.AppBuildInfo) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "sleep",
			Usage:     "Block for the given number of milliseconds, then report the elapsed time",
			ArgsUsage: "milliseconds",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunSleep(commands.DefaultIO(), cmd.Args().First())
			},
		},
		{
			Name:  "serve",
			Usage: "Run the HTTP server exposing every operation as a JSON API",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Usage:   "Listen address for the API server (e.g. :8080)",
				},
				&cli.StringFlag{
					Name:  "metrics-address",
					Usage: "Listen address for the standalone Prometheus endpoint (e.g. :9090)",
				},
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Usage:   "Minimum log level: debug, info, warn or error",
				},
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "Path to a JSON configuration file",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				// Empty flag values stay zero and lose to the environment,
				// the JSON file, and the defaults during the config merge.
				overrides := &config.StructuredConfig{}
				overrides.Server.Address = cmd.String("address")
				overrides.Metrics.Address = cmd.String("metrics-address")
				overrides.App.LogLevel = cmd.String("log-level")
				overrides.JSONFilePath = cmd.String("config")

				return commands.RunServe(overrides, build)
			},
		},
		{
			Name:  "version",
			Usage: "Show the build version, date and commit of this binary",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunVersion(commands.DefaultIO().Writer, build, cmd.String("format"))
			},
		},
		{
			Name:  "ping",
			Usage: "Check that a running server is reachable and report its version",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Value:   "http://localhost:8080",
					Usage:   "Base address of the server to ping",
				},
				&cli.DurationFlag{
					Name:    "timeout",
					Aliases: []string{"t"},
					Value:   client.DefaultTimeout,
					Usage:   "Give up after this long",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunPing(
					ctx,
					commands.DefaultIO().Writer,
					cmd.String("address"),
					cmd.Duration("timeout"),
				)
			},
		},
	}
}
