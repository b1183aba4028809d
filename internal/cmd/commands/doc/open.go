package doc

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
)

type OpenCommand struct {
	*base.Command

	// OpenURL opens a URL in a browser. Defaults to browser.OpenURL.
	OpenURL func(url string) error

	flags     base.ClientFlags
	flagPrint bool
}

func (c *OpenCommand) Synopsis() string {
	return "Open a document in the browser"
}

func (c *OpenCommand) Help() string {
	return `Usage: yuque doc open [options] <owner/repo> <slug>

  Open a document in the default web browser. The namespace must be in
  owner/slug form.` +
		c.Flags().Help()
}

func (c *OpenCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc open", flag.ContinueOnError))
	c.flags.Register(f)

	f.BoolVar(&c.flagPrint, "print", false, "Print the URL instead of opening it.")

	return f
}

func (c *OpenCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two arguments: <owner/repo> <slug>")
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

	url, err := client.DocURL(ns, flags.Arg(1))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if c.flagPrint {
		ui.Output(url)
		return 0
	}

	open := c.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(url); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		ui.Output(url)
		return 1
	}

	ui.Info(fmt.Sprintf("Opened %s", url))
	return 0
}
