package user

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

type DocsCommand struct {
	*base.Command

	flags      base.ClientFlags
	flagQuery  string
	flagOffset int
}

func (c *DocsCommand) Synopsis() string {
	return "List documents created by the authenticated user"
}

func (c *DocsCommand) Help() string {
	return `Usage: yuque user docs [options]

  List documents created by the authenticated user, 20 per page.` +
		c.Flags().Help()
}

func (c *DocsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user docs", flag.ContinueOnError))
	c.flags.Register(f)

	f.StringVar(&c.flagQuery, "q", "", "Only list documents whose title matches.")
	f.IntVar(&c.flagOffset, "offset", 0, "Number of documents to skip.")

	return f
}

func (c *DocsCommand) Run(args []string) int {
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

	docs, err := client.Docs(ctx, yuque.DocsQuery{Q: c.flagQuery, Offset: c.flagOffset})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing documents: %v", err))
		return 1
	}

	if err := c.Output(c.flags.Format, docs); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
