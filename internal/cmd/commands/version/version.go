package version

import (
	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: yuque version

  Print the version of the yuque CLI.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("yuque v" + version.Version)
	return 0
}
