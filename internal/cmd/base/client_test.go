package base

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

func newTestCommand(t *testing.T, env map[string]string) (*Command, *cli.MockUi) {
	t.Helper()

	ui := cli.NewMockUi()
	return &Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  afero.NewMemMapFs(),
		Env: env,
	}, ui
}

func TestCommand_Client(t *testing.T) {
	t.Run("token from flag", func(t *testing.T) {
		c, _ := newTestCommand(t, nil)
		client, err := c.Client(&ClientFlags{Token: "tok", Format: FormatJSON})
		require.NoError(t, err)
		assert.Equal(t, yuque.DefaultBaseURL, client.BaseURL())
	})

	t.Run("config file from env", func(t *testing.T) {
		c, _ := newTestCommand(t, map[string]string{
			"YUQUE_CONFIG": "/home/me/.yuque.hcl",
			"MY_TOKEN":     "secret",
		})
		require.NoError(t, afero.WriteFile(c.FS, "/home/me/.yuque.hcl", []byte(`
token    = env("MY_TOKEN")
base_url = "https://yuque.example.com/api/v2"
`), 0o600))

		client, err := c.Client(&ClientFlags{Format: FormatJSON})
		require.NoError(t, err)
		assert.Equal(t, "https://yuque.example.com/api/v2", client.BaseURL())
	})

	t.Run("missing token", func(t *testing.T) {
		c, _ := newTestCommand(t, nil)
		_, err := c.Client(&ClientFlags{Format: FormatJSON})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("missing config file", func(t *testing.T) {
		c, _ := newTestCommand(t, nil)
		_, err := c.Client(&ClientFlags{Config: "/nope.hcl", Token: "tok", Format: FormatJSON})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("invalid format", func(t *testing.T) {
		c, _ := newTestCommand(t, nil)
		_, err := c.Client(&ClientFlags{Token: "tok", Format: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("invalid base URL", func(t *testing.T) {
		c, _ := newTestCommand(t, nil)
		_, err := c.Client(&ClientFlags{Token: "tok", BaseURL: "ftp://x", Format: FormatJSON})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme")
	})
}

func TestCommand_Output(t *testing.T) {
	v := struct {
		Login string `json:"login" yaml:"login"`
		Count int    `json:"count" yaml:"count"`
	}{Login: "someuser", Count: 2}

	t.Run("json", func(t *testing.T) {
		c, ui := newTestCommand(t, nil)
		require.NoError(t, c.Output(FormatJSON, v))
		assert.Equal(t, "{\n  \"login\": \"someuser\",\n  \"count\": 2\n}\n", ui.OutputWriter.String())
	})

	t.Run("yaml", func(t *testing.T) {
		c, ui := newTestCommand(t, nil)
		require.NoError(t, c.Output(FormatYAML, v))
		assert.Equal(t, "login: someuser\ncount: 2\n", ui.OutputWriter.String())
	})
}
