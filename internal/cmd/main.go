package cmd

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/yuque/internal/config"
	"github.com/hashicorp-forge/yuque/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := filepath.Base(args[0])

	// A missing .env file is fine; real environment variables win over it.
	_ = godotenv.Load()

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Output: os.Stderr,
		Level:  hclog.LevelFromString(os.Getenv("YUQUE_LOG_LEVEL")),
	})

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	return run(args, log, ui, config.Environ(os.Environ()))
}

// run dispatches args to the registered commands.
func run(args []string, log hclog.Logger, ui cli.Ui, env map[string]string) int {
	cliName := filepath.Base(args[0])
	args = versionArgs(args)

	initCommands(log, ui, env)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}

// versionArgs rewrites a lone -version or -v flag to the version command.
func versionArgs(args []string) []string {
	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		return []string{args[0], "version"}
	}
	return args
}
