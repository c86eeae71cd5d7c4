package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/cmd/utilkit/commands"
	"github.com/utilkit-io/utilkit/crypt"
)

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "keygen",
			Usage: "Generate a random AES-256 key or derive one from a passphrase",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "passphrase",
					Aliases: []string{"p"},
					Usage:   "Derive the key from this passphrase instead of random bytes",
				},
				&cli.BoolFlag{
					Name:    "interactive",
					Aliases: []string{"i"},
					Usage:   "Prompt for the passphrase without echo (keeps it out of shell history)",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Usage:   "Base64 salt from a previous derivation, to derive the same key again",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunKeygen(
					commands.DefaultIO(),
					crypt.NewCipherService(),
					cmd.String("passphrase"),
					cmd.String("salt"),
					cmd.Bool("interactive"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "encrypt",
			Usage:     "Encrypt text into a portable JSON envelope",
			ArgsUsage: "[text]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Base64 AES-256 key (see keygen)",
				},
				&cli.StringFlag{
					Name:    "passphrase",
					Aliases: []string{"p"},
					Usage:   "Derive the key from this passphrase instead of --key",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Usage:   "Base64 salt the passphrase key was derived under",
				},
				&cli.BoolFlag{
					Name:  "stats",
					Usage: "Append a human-readable size summary after the payload",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunEncrypt(
					commands.DefaultIO(),
					crypt.NewCipherService(),
					cmd.Args().First(),
					cmd.String("key"),
					cmd.String("passphrase"),
					cmd.String("salt"),
					cmd.Bool("stats"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a JSON envelope back into text",
			ArgsUsage: "[payload]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Base64 AES-256 key the payload was encrypted with",
				},
				&cli.StringFlag{
					Name:    "passphrase",
					Aliases: []string{"p"},
					Usage:   "Derive the key from this passphrase instead of --key",
				},
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Usage:   "Base64 salt the passphrase key was derived under",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunDecrypt(
					commands.DefaultIO(),
					crypt.NewCipherService(),
					cmd.Args().First(),
					cmd.String("key"),
					cmd.String("passphrase"),
					cmd.String("salt"),
				)
			},
		},
	}
}
