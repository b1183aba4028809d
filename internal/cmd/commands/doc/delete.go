package doc

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
)

type DeleteCommand struct {
	*base.Command

	flags base.ClientFlags
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete one or more documents"
}

func (c *DeleteCommand) Help() string {
	return `Usage: yuque doc delete [options] <namespace> <id> [<id>...]

  Delete documents from a repository. Every id is attempted; failures are
  reported together at the end.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc delete", flag.ContinueOnError))
	c.flags.Register(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() < 2 {
		ui.Error("expected at least two arguments: <namespace> <id> [<id>...]")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}

	var ids []int64
	for _, arg := range flags.Args()[1:] {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			ui.Error(fmt.Sprintf("invalid document id %q", arg))
			return 1
		}
		ids = append(ids, id)
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var result *multierror.Error
	for _, id := range ids {
		if _, err := client.DeleteDoc(ctx, ns, id); err != nil {
			logger.Warn("error deleting document",
				"namespace", ns.String(),
				"id", id,
				"error", err,
			)
			result = multierror.Append(result, fmt.Errorf("document %d: %w", id, err))
			continue
		}
		ui.Info(fmt.Sprintf("Deleted document %d from %s", id, ns))
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(fmt.Sprintf("error deleting documents: %v", err))
		return 1
	}
	return 0
}
