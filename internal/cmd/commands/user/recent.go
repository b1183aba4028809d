package user

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type RecentCommand struct {
	*base.Command

	flags      base.ClientFlags
	flagType   string
	flagOffset int
}

func (c *RecentCommand) Synopsis() string {
	return "List recently updated repos or documents"
}

func (c *RecentCommand) Help() string {
	return `Usage: yuque user recent [options]

  List repositories or documents the authenticated user recently took part in.` +
		c.Flags().Help()
}

func (c *RecentCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user recent", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagType, "type", "repo", "What to list: repo or doc.")
	f.IntVar(&c.flagOffset, "offset", 0, "Number of entries to skip.")

	return f
}

func (c *RecentCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var kind yuque.RecentKind
	switch c.flagType {
	case "repo", "book":
		kind = yuque.RecentRepos
	case "doc":
		kind = yuque.RecentDocs
	default:
		ui.Error(fmt.Sprintf("invalid type %q: must be repo or doc", c.flagType))
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	recent, err := client.RecentUpdated(ctx, yuque.RecentQuery{Type: kind, Offset: c.flagOffset})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing recent updates: %v", err))
		return 1
	}

	var out any = recent.Repos
	if kind == yuque.RecentDocs {
		out = recent.Docs
	}
	if err := c.Output(c.flags.Format, out); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
