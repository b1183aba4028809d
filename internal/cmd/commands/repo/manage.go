package repo

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type UpdateCommand struct {
	*base.Command

	flags           base.ClientFlags
	flagName        string
	flagSlug        string
	flagToc         string
	flagDescription string
	flagPublic      string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a repository"
}

func (c *UpdateCommand) Help() string {
	return `Usage: yuque repo update [options] <namespace>

  Change a repository. Flags that are not given are left unchanged.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("repo update", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagName, "name", "", "New name.")
	f.StringVar(&c.flagSlug, "slug", "", "New slug.")
	f.StringVar(&c.flagToc, "toc", "", "New table of contents, in markdown.")
	f.StringVar(&c.flagDescription, "description", "", "New description.")
	f.StringVar(&c.flagPublic, "public", "", "New visibility: public or private.")

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
		ui.Error("expected exactly one argument: <namespace>")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}

	params := yuque.UpdateRepoParams{
		Name:        c.flagName,
		Slug:        c.flagSlug,
		Toc:         c.flagToc,
		Description: c.flagDescription,
	}
	if c.flagPublic != "" {
		public, err := yuque.ParseVisibility(c.flagPublic)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		params.Public = &public
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	repo, err := client.UpdateRepo(ctx, ns, params)
	if err != nil {
		ui.Error(fmt.Sprintf("error updating repository %s: %v", ns, err))
		return 1
	}

	if err := c.Output(c.flags.Format, repo); err != nil {
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
	return "Delete a repository"
}

func (c *DeleteCommand) Help() string {
	return `Usage: yuque repo delete [options] <namespace>

  Delete a repository and all of its documents.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("repo delete", flag.ContinueOnError))
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

	if _, err := client.DeleteRepo(ctx, ns); err != nil {
		ui.Error(fmt.Sprintf("error deleting repository %s: %v", ns, err))
		return 1
	}

	ui.Info(fmt.Sprintf("Deleted repository %s", ns))
	return 0
}
