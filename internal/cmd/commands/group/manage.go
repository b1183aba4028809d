package group

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type CreateCommand struct {
	*base.Command

	flags           base.ClientFlags
	flagName        string
	flagLogin       string
	flagDescription string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a group"
}

func (c *CreateCommand) Help() string {
	return `Usage: yuque group create [options]

  Create a group owned by the authenticated user.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group create", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Display name of the group.")
	f.StringVar(&c.flagLogin, "login", "", "(Required) Login (path) of the group.")
	f.StringVar(&c.flagDescription, "description", "", "Description of the group.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var result *multierror.Error
	if c.flagName == "" {
		result = multierror.Append(result, fmt.Errorf("name flag is required"))
	}
	if c.flagLogin == "" {
		result = multierror.Append(result, fmt.Errorf("login flag is required"))
	}
	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}

	params := yuque.CreateGroupParams{
		Name:  c.flagName,
		Login: c.flagLogin,
	}
	if flags.IsSet("description") {
		params.Description = &c.flagDescription
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	group, err := client.CreateGroup(ctx, params)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating group: %v", err))
		return 1
	}

	if err := c.Output(c.flags.Format, group); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type UpdateCommand struct {
	*base.Command

	flags           base.ClientFlags
	flagName        string
	flagLogin       string
	flagDescription string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a group"
}

func (c *UpdateCommand) Help() string {
	return `Usage: yuque group update [options] <login|id>

  Change the name, login or description of a group. Flags that are not given
  are left unchanged.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group update", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagName, "name", "", "New display name.")
	f.StringVar(&c.flagLogin, "login", "", "New login.")
	f.StringVar(&c.flagDescription, "description", "", "New description.")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
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

	group, err := client.UpdateGroup(ctx, id, yuque.UpdateGroupParams{
		Name:        c.flagName,
		Login:       c.flagLogin,
		Description: c.flagDescription,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error updating group %s: %v", id, err))
		return 1
	}

	if err := c.Output(c.flags.Format, group); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type DeleteCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a group"
}

func (c *DeleteCommand) Help() string {
	return `Usage: yuque group delete [options] <login|id>

  Delete a group.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group delete", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
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

	if _, err := client.DeleteGroup(ctx, id); err != nil {
		ui.Error(fmt.Sprintf("error deleting group %s: %v", id, err))
		return 1
	}

	ui.Info(fmt.Sprintf("Deleted group %s", id))
	return 0
}
