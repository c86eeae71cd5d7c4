package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/cmd/utilkit/commands"
)

func getTextCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "slug",
			Usage:     "Turn a title into a URL-safe slug",
			ArgsUsage: "[title]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "separator",
					Aliases: []string{"s"},
					Usage:   "Token placed between words; an explicit empty string deletes whitespace",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				// An omitted separator keeps the default hyphen, so the
				// flag value alone cannot tell the two apart.
				var separator *string
				if cmd.IsSet("separator") {
					s := cmd.String("separator")
					separator = &s
				}
				return commands.RunSlug(commands.DefaultIO(), cmd.Args().First(), separator)
			},
		},
		{
			Name:      "title",
			Usage:     "Capitalize the first letter of every word",
			ArgsUsage: "[text]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunTitle(commands.DefaultIO(), cmd.Args().First())
			},
		},
		{
			Name:      "slug-to-title",
			Usage:     "Turn a slug back into a human-readable title",
			ArgsUsage: "[slug]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunSlugToTitle(commands.DefaultIO(), cmd.Args().First())
			},
		},
	}
}
