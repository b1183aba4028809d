package repo

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage repositories"
}

func (c *Command) Help() string {
	return `Usage: yuque repo <subcommand> [options] [args]

  This command groups subcommands for managing repositories (books).`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flags               base.ClientFlags
	flagGroup           bool
	flagType            string
	flagIncludeMembered bool
	flagOffset          int
}

func (c *ListCommand) Synopsis() string {
	return "List the repositories of a user or group"
}

func (c *ListCommand) Help() string {
	return `Usage: yuque repo list [options] <login|id>

  List the repositories owned by a user, or by a group with -group.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("repo list", flag.ContinueOnError))
	c.flags.Register(f)

	f.BoolVar(&c.flagGroup, "group", false, "The owner is a group.")
	f.StringVar(&c.flagType, "type", "", "Only list repositories of this type: Book, Design or all.")
	f.BoolVar(&c.flagIncludeMembered, "include-membered", false,
		"Also list repositories the owner is a member of.")
	f.IntVar(&c.flagOffset, "offset", 0, "Number of repositories to skip.")

	return f
}

func (c *ListCommand) Run(args []string) int {
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
		ui.Error(fmt.Sprintf("error parsing owner: %v", err))
		return 1
	}

	kind := yuque.RepoKind(c.flagType)
	if kind != "" && !kind.IsValid() {
		ui.Error(fmt.Sprintf("invalid type %q: must be Book, Design or all", c.flagType))
		return 1
	}

	owner := yuque.Owner{Kind: yuque.OwnerUser, ID: id}
	if c.flagGroup {
		owner.Kind = yuque.OwnerGroup
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	repos, err := client.Repos(ctx, owner, yuque.ReposQuery{
		Type:            kind,
		IncludeMembered: c.flagIncludeMembered,
		Offset:          c.flagOffset,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing repositories of %s: %v", id, err))
		return 1
	}

	if err := c.Output(c.flags.Format, repos); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type GetCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *GetCommand) Synopsis() string {
	return "Show a repository"
}

func (c *GetCommand) Help() string {
	return `Usage: yuque repo get [options] <namespace>

  Show a repository, including its table of contents. The namespace is
  owner/slug or a numeric id.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("repo get", flag.ContinueOnError))
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
		ui.Error("expected exactly one argument: <namespace>")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	repo, err := client.Repo(ctx, ns)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting repository %s: %v", ns, err))
		return 1
	}

	if err := c.Output(c.flags.Format, repo); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
