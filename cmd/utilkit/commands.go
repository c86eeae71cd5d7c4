package main

import (
	"github.com/urfave/cli/v3"

	"github.com/utilkit-io/utilkit/models"
)

// getCommands assembles the full command tree for the CLI.
func getCommands(build models.AppBuildInfo) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getTextCommands()...)
	cmds = append(cmds, getCryptoCommands()...)
	cmds = append(cmds, getFormatCommands()...)
	cmds = append(cmds, getSystemCommands(build)...)
	return cmds
}
