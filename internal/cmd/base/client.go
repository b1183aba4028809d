package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/yuque/internal/config"
	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ClientFlags are the connection and output flags shared by API commands.
type ClientFlags struct {
	Config   string
	Token    string
	BaseURL  string
	Format   string
	LogLevel string
}

// Register adds the shared flags to f.
func (cf *ClientFlags) Register(f *FlagSet) {
	f.StringVar(&cf.Config, "config", "",
		fmt.Sprintf("Path to an HCL configuration file. Defaults to $%s.", config.EnvConfig))
	f.StringVar(&cf.Token, "token", "",
		fmt.Sprintf("Personal access token. Overrides $%s and the configuration file.", config.EnvToken))
	f.StringVar(&cf.BaseURL, "base-url", "",
		fmt.Sprintf("API base URL. Overrides $%s and the configuration file.", config.EnvBaseURL))
	f.StringVar(&cf.Format, "format", FormatJSON, "Output format: json or yaml.")
	f.StringVar(&cf.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn or error.")
}

// Client resolves configuration and returns an API client.
func (c *Command) Client(cf *ClientFlags) (*yuque.Client, error) {
	switch cf.Format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be json or yaml", cf.Format)
	}

	var file *config.Config
	path := cf.Config
	if path == "" {
		path = c.Env[config.EnvConfig]
	}
	if path != "" {
		var err error
		file, err = config.Load(c.FS, path, c.Env)
		if err != nil {
			return nil, err
		}
	}

	settings, err := config.Resolve(file, c.Env, config.Flags{
		Token:    cf.Token,
		BaseURL:  cf.BaseURL,
		LogLevel: cf.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("error resolving configuration: %w", err)
	}

	if settings.LogLevel != hclog.NoLevel {
		c.Log.SetLevel(settings.LogLevel)
	}

	return yuque.New(settings.ClientConfig(c.Log))
}

// Output writes v to the UI in the requested format.
func (c *Command) Output(format string, v any) error {
	var out string

	switch format {
	case FormatYAML:
		var b strings.Builder
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		out = strings.TrimSuffix(b.String(), "\n")
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		out = string(data)
	}

	c.UI.Output(out)
	return nil
}
