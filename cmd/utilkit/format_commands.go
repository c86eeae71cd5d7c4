package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/cmd/utilkit/commands"
	"github.com/utilkit-io/utilkit/datefmt"
)

func getFormatCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "date",
			Usage:     "Format a date using yyyy/MM/dd-style patterns",
			ArgsUsage: "[date]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "pattern",
					Aliases: []string{"p"},
					Value:   datefmt.DefaultPattern,
					Usage:   "Pattern built from yyyy, MM, MMM, MMMM, dd, EEE and friends",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunDate(commands.DefaultIO(), cmd.Args().First(), cmd.String("pattern"))
			},
		},
		{
			Name:      "price",
			Usage:     "Format an amount as a currency string",
			ArgsUsage: "amount",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "currency",
					Aliases: []string{"c"},
					Usage:   "ISO 4217 currency code (defaults to INR)",
				},
				&cli.StringFlag{
					Name:    "notation",
					Aliases: []string{"n"},
					Usage:   "Rendering style: 'compact' (default) or 'standard'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunPrice(
					commands.DefaultIO(),
					cmd.Args().First(),
					cmd.String("currency"),
					cmd.String("notation"),
				)
			},
		},
	}
}
