package user

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
)

type ProfileCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *ProfileCommand) Synopsis() string {
	return "Show a user or group profile"
}

func (c *ProfileCommand) Help() string {
	return `Usage: yuque user profile [options] <login|id>

  Show the profile of the user or group with the given login or numeric id.` +
		c.Flags().Help()
}

func (c *ProfileCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user profile", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *ProfileCommand) Run(args []string) int {
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
		ui.Error(fmt.Sprintf("error parsing user: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	profile, err := client.Profile(ctx, id)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting profile for %s: %v", id, err))
		return 1
	}

	if err := c.Output(c.flags.Format, profile); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
