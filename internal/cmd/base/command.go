package base

import (
	"context"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is where configuration and body files are read from.
	FS afero.Fs

	// Env is the process environment, after any .env file was loaded.
	Env map[string]string
}

// NewCommand returns a Command backed by the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui, env map[string]string) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
		Env: env,
	}
}

// Context returns a context canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
