package doc

import (
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

// bodyFlags are the content flags shared by create and update.
type bodyFlags struct {
	title    string
	slug     string
	public   string
	format   string
	body     string
	bodyFile string
}

func (b *bodyFlags) register(f *base.FlagSet) {
	f.StringVar(&b.title, "title", "", "Document title.")
	f.StringVar(&b.slug, "slug", "", "Document slug.")
	f.StringVar(&b.public, "public", "", "Visibility: public or private.")
	f.StringVar(&b.format, "body-format", "",
		"Body format: markdown, lake or html. Inferred from -body-file when it ends in .md or .html.")
	f.StringVar(&b.body, "body", "", "Document body.")
	f.StringVar(&b.bodyFile, "body-file", "", "Read the document body from this file.")
}

// load reads -body-file, if given, and validates the enum flags.
func (b *bodyFlags) load(c *base.Command) (body string, format yuque.Format, public *yuque.Visibility, err error) {
	if b.body != "" && b.bodyFile != "" {
		return "", "", nil, fmt.Errorf("-body and -body-file are mutually exclusive")
	}

	body = b.body
	if b.bodyFile != "" {
		data, err := readFile(c, b.bodyFile)
		if err != nil {
			return "", "", nil, err
		}
		body = data
	}

	format = yuque.Format(b.format)
	if format == "" && b.bodyFile != "" {
		switch strings.ToLower(filepath.Ext(b.bodyFile)) {
		case ".md", ".markdown":
			format = yuque.FormatMarkdown
		case ".html", ".htm":
			format = yuque.FormatHTML
		}
	}
	if format != "" && !format.IsValid() {
		return "", "", nil, fmt.Errorf("invalid body format %q: must be markdown, lake or html", b.format)
	}

	if b.public != "" {
		v, err := yuque.ParseVisibility(b.public)
		if err != nil {
			return "", "", nil, err
		}
		public = &v
	}

	return body, format, public, nil
}

func readFile(c *base.Command, path string) (string, error) {
	data, err := afero.ReadFile(c.FS, path)
	if err != nil {
		return "", fmt.Errorf("error reading body file: %w", err)
	}
	return string(data), nil
}

type CreateCommand struct {
	*base.Command

	flags base.ClientFlags
	body  bodyFlags
}

func (c *CreateCommand) Synopsis() string {
	return "Create a document"
}

func (c *CreateCommand) Help() string {
	return `Usage: yuque doc create [options] <namespace>

  Create a document in a repository. The body is given with -body or read
  from -body-file.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc create", flag.ContinueOnError))
	c.flags.Register(f)
	c.body.register(f)
	return f
}

func (c *CreateCommand) Run(args []string) int {
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
	if c.body.title == "" {
		ui.Error("title flag is required")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}

	body, format, public, err := c.body.load(c.Command)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	params := yuque.CreateDocParams{
		Title:  c.body.title,
		Slug:   c.body.slug,
		Format: format,
		Body:   body,
	}
	if public != nil {
		params.Public = *public
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.CreateDoc(ctx, ns, params)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating document in %s: %v", ns, err))
		return 1
	}

	if err := c.Output(c.flags.Format, doc); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

type UpdateCommand struct {
	*base.Command

	flags base.ClientFlags
	body  bodyFlags
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a document"
}

func (c *UpdateCommand) Help() string {
	return `Usage: yuque doc update [options] <namespace> <id>

  Change a document. Flags that are not given are left unchanged.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("doc update", flag.ContinueOnError))
	c.flags.Register(f)
	c.body.register(f)
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 2 {
		ui.Error("expected exactly two arguments: <namespace> <id>")
		return 1
	}

	ns, err := ident.ParseNamespace(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing namespace: %v", err))
		return 1
	}
	id, err := strconv.ParseInt(flags.Arg(1), 10, 64)
	if err != nil {
		ui.Error(fmt.Sprintf("invalid document id %q", flags.Arg(1)))
		return 1
	}

	body, format, public, err := c.body.load(c.Command)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	client, err := c.Client(&c.flags)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.UpdateDoc(ctx, ns, id, yuque.UpdateDocParams{
		Title:  c.body.title,
		Slug:   c.body.slug,
		Public: public,
		Format: format,
		Body:   body,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error updating document %d in %s: %v", id, ns, err))
		return 1
	}

	if err := c.Output(c.flags.Format, doc); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
