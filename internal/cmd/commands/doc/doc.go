package doc

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
	return "Manage documents"
}

func (c *Command) Help() string {
	return `Usage: yuque doc <subcommand> [options] [args]

  This command groups subcommands for managing documents in a repository.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *ListCommand) Synopsis() string {
	return "List the documents of a repository"
}

func (c *ListCommand) Help() string {
	return `Usage: yuque doc list [options] <namespace>

  List the documents of a repository.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc list", flag.ContinueOnError))
	c.flags.Register(f)
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

	docs, err := client.RepoDocs(ctx, ns)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing documents of %s: %v", ns, err))
		return 1
	}

	if err := c.Output(c.flags.Format, docs); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type GetCommand struct {
	*base.Command

	flags    base.ClientFlags
	flagRaw  bool
	flagBody bool
}

func (c *GetCommand) Synopsis() string {
	return "Show a document"
}

func (c *GetCommand) Help() string {
	return `Usage: yuque doc get [options] <namespace> <slug>

  Show a document and its body.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc get", flag.ContinueOnError))
	c.flags.Register(f)

	f.BoolVar(&c.flagRaw, "raw", false, "Return the body in its source format without rendering.")
	f.BoolVar(&c.flagBody, "body", false, "Print only the document body.")

	return f
}

func (c *GetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two arguments: <namespace> <slug>")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}
	slug := flags.Arg(1)

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.Doc(ctx, ns, slug, yuque.DocQuery{Raw: c.flagRaw})
	if err != nil {
		ui.Error(fmt.Sprintf("error getting document %s/%s: %v", ns, slug, err))
		return 1
	}

	if c.flagBody {
		ui.Output(doc.Body)
		return 0
	}

	if err := c.Output(c.flags.Format, doc); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
