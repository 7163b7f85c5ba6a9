package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getCardCommands()...)
	cmds = append(cmds, getAuditCommands()...)
	cmds = append(cmds, getSystemCommands(version)...)
	return cmds
}
