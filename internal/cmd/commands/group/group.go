package group

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage groups and their members"
}

func (c *Command) Help() string {
	return `Usage: yuque group <subcommand> [options] [args]

  This command groups subcommands for managing groups.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flags    base.ClientFlags
	flagUser string
}

func (c *ListCommand) Synopsis() string {
	return "List public groups or the groups of a user"
}

func (c *ListCommand) Help() string {
	return `Usage: yuque group list [options]

  List public groups. With -user, list the groups that user belongs to.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group list", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagUser, "user", "", "Login or id of a user whose groups to list.")

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	if c.flagUser != "" {
		id, err := ident.ParseUser(c.flagUser)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing user: %v", err))
			return 1
		}
		groups, err := client.UserGroups(ctx, id)
		if err != nil {
			ui.Error(fmt.Sprintf("error listing groups of %s: %v", id, err))
			return 1
		}
		return c.output(groups)
	}

	groups, err := client.PublicGroups(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing public groups: %v", err))
		return 1
	}
	return c.output(groups)
}

func (c *ListCommand) output(v any) int {
	if err := c.Output(c.flags.Format, v); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}

type GetCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *GetCommand) Synopsis() string {
	return "Show a group"
}

func (c *GetCommand) Help() string {
	return `Usage: yuque group get [options] <login|id>

  Show the details of a group.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group get", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one argument: <login|id>")
		return 1
	}

	id, err := ident.ParseUser(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing group: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	group, err := client.Group(ctx, id)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting group %s: %v", id, err))
		return 1
	}

	if err := c.Output(c.flags.Format, group); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
