package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
	"github.com/hashicorp-forge/yuque/internal/cmd/commands/doc"
	"github.com/hashicorp-forge/yuque/internal/cmd/commands/group"
	"github.com/hashicorp-forge/yuque/internal/cmd/commands/repo"
	"github.com/hashicorp-forge/yuque/internal/cmd/commands/user"
	"github.com/hashicorp-forge/yuque/internal/cmd/commands/version"
)

// Commands is the mapping of all available yuque commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui, env map[string]string) {
	b := base.NewCommand(log, ui, env)

	Commands = map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},

		"user": func() (cli.Command, error) {
			return &user.Command{Command: b}, nil
		},
		"user profile": func() (cli.Command, error) {
			return &user.ProfileCommand{Command: b}, nil
		},
		"user me": func() (cli.Command, error) {
			return &user.MeCommand{Command: b}, nil
		},
		"user docs": func() (cli.Command, error) {
			return &user.DocsCommand{Command: b}, nil
		},
		"user recent": func() (cli.Command, error) {
			return &user.RecentCommand{Command: b}, nil
		},
		"user groups": func() (cli.Command, error) {
			return &user.GroupsCommand{Command: b}, nil
		},

		"group": func() (cli.Command, error) {
			return &group.Command{Command: b}, nil
		},
		"group list": func() (cli.Command, error) {
			return &group.ListCommand{Command: b}, nil
		},
		"group get": func() (cli.Command, error) {
			return &group.GetCommand{Command: b}, nil
		},
		"group create": func() (cli.Command, error) {
			return &group.CreateCommand{Command: b}, nil
		},
		"group update": func() (cli.Command, error) {
			return &group.UpdateCommand{Command: b}, nil
		},
		"group delete": func() (cli.Command, error) {
			return &group.DeleteCommand{Command: b}, nil
		},
		"group members": func() (cli.Command, error) {
			return &group.MembersCommand{Command: b}, nil
		},
		"group member-set": func() (cli.Command, error) {
			return &group.MemberSetCommand{Command: b}, nil
		},
		"group member-remove": func() (cli.Command, error) {
			return &group.MemberRemoveCommand{Command: b}, nil
		},

		"repo": func() (cli.Command, error) {
			return &repo.Command{Command: b}, nil
		},
		"repo list": func() (cli.Command, error) {
			return &repo.ListCommand{Command: b}, nil
		},
		"repo get": func() (cli.Command, error) {
			return &repo.GetCommand{Command: b}, nil
		},
		"repo update": func() (cli.Command, error) {
			return &repo.UpdateCommand{Command: b}, nil
		},
		"repo delete": func() (cli.Command, error) {
			return &repo.DeleteCommand{Command: b}, nil
		},

		"doc": func() (cli.Command, error) {
			return &doc.Command{Command: b}, nil
		},
		"doc list": func() (cli.Command, error) {
			return &doc.ListCommand{Command: b}, nil
		},
		"doc get": func() (cli.Command, error) {
			return &doc.GetCommand{Command: b}, nil
		},
		"doc create": func() (cli.Command, error) {
			return &doc.CreateCommand{Command: b}, nil
		},
		"doc update": func() (cli.Command, error) {
			return &doc.UpdateCommand{Command: b}, nil
		},
		"doc delete": func() (cli.Command, error) {
			return &doc.DeleteCommand{Command: b}, nil
		},
		"doc open": func() (cli.Command, error) {
			return &doc.OpenCommand{Command: b}, nil
		},
	}
}
