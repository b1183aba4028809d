package user

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read user profiles and activity"
}

func (c *Command) Help() string {
	return `Usage: yuque user <subcommand> [options] [args]

  This command groups subcommands for reading users.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
