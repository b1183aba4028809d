package user

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
)

type MeCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *MeCommand) Synopsis() string {
	return "Show the authenticated user"
}

func (c *MeCommand) Help() string {
	return `Usage: yuque user me [options]

  Show the profile of the user the token belongs to.` +
		c.Flags().Help()
}

func (c *MeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user me", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *MeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	me, err := client.User(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting authenticated user: %v", err))
		return 1
	}

	if err := c.Output(c.flags.Format, me); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
