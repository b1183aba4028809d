package user

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
)

type GroupsCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *GroupsCommand) Synopsis() string {
	return "List the groups a user belongs to"
}

func (c *GroupsCommand) Help() string {
	return `Usage: yuque user groups [options] [<login|id>]

  List the groups a user belongs to. Without an argument, list the groups of
  the authenticated user.` +
		c.Flags().Help()
}

func (c *GroupsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user groups", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *GroupsCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() > 1 {
		ui.Error("expected at most one argument: [<login|id>]")
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var id ident.User
	if flags.NArg() == 1 {
		id, err = ident.ParseUser(flags.Arg(0))
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing user: %v", err))
			return 1
		}
	} else {
		me, err := client.User(ctx)
		if err != nil {
			ui.Error(fmt.Sprintf("error getting authenticated user: %v", err))
			return 1
		}
		id = ident.UserByID(me.ID)
	}

	groups, err := client.UserGroups(ctx, id)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing groups of %s: %v", id, err))
		return 1
	}

	if err := c.Output(c.flags.Format, groups); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
