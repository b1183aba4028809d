package group

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type MembersCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *MembersCommand) Synopsis() string {
	return "List the members of a group"
}

func (c *MembersCommand) Help() string {
	return `Usage: yuque group members [options] <group>

  List the members of a group and their roles.` +
		c.Flags().Help()
}

func (c *MembersCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group members", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *MembersCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("expected exactly one argument: <group>")
		return 1
	}

	group, err := ident.ParseUser(flags.Arg(0))
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

	members, err := client.GroupUsers(ctx, group)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing members of %s: %v", group, err))
		return 1
	}

	if err := c.Output(c.flags.Format, members); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type MemberSetCommand struct {
	*base.Command

	flags    base.ClientFlags
	flagRole string
}

func (c *MemberSetCommand) Synopsis() string {
	return "Add a member to a group or change their role"
}

func (c *MemberSetCommand) Help() string {
	return `Usage: yuque group member-set [options] <group> <login>

  Add a user to a group, or change the role of an existing member.` +
		c.Flags().Help()
}

func (c *MemberSetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group member-set", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagRole, "role", "member", "Role of the member: owner or member.")

	return f
}

func (c *MemberSetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two arguments: <group> <login>")
		return 1
	}

	role, err := yuque.ParseRole(c.flagRole)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	group, err := ident.ParseUser(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing group: %v", err))
		return 1
	}
	member, err := ident.ParseUser(flags.Arg(1))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing member: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	groupUser, err := client.UpsertGroupUser(ctx, group, member, role)
	if err != nil {
		ui.Error(fmt.Sprintf("error setting %s as %s of %s: %v", member, role, group, err))
		return 1
	}

	if err := c.Output(c.flags.Format, groupUser); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type MemberRemoveCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *MemberRemoveCommand) Synopsis() string {
	return "Remove a member from a group"
}

func (c *MemberRemoveCommand) Help() string {
	return `Usage: yuque group member-remove [options] <group> <login>

  Remove a user from a group.` +
		c.Flags().Help()
}

func (c *MemberRemoveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group member-remove", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *MemberRemoveCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two arguments: <group> <login>")
		return 1
	}

	group, err := ident.ParseUser(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing group: %v", err))
		return 1
	}
	member, err := ident.ParseUser(flags.Arg(1))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing member: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if _, err := client.RemoveGroupUser(ctx, group, member); err != nil {
		ui.Error(fmt.Sprintf("error removing %s from %s: %v", member, group, err))
		return 1
	}

	ui.Info(fmt.Sprintf("Removed %s from %s", member, group))
	return 0
}
