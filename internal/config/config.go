// Package config loads the yuque CLI configuration file and resolves it
// against environment variables and command-line flags.
//
// Example configuration:
//
//	token     = env("YUQUE_TOKEN")
//	base_url  = "https://www.yuque.com/api/v2"
//	timeout   = "30s"
//	log_level = "warn"
//
// Environment variables are also available as attributes of the env object,
// so env.YUQUE_TOKEN is equivalent to env("YUQUE_TOKEN") for variables that
// are set.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/yuque/pkg/yuque"
)

const (
	// EnvToken overrides the token in the configuration file.
	EnvToken = "YUQUE_TOKEN"

	// EnvBaseURL overrides the base URL in the configuration file.
	EnvBaseURL = "YUQUE_BASE_URL"

	// EnvConfig is the configuration file path used when -config is not set.
	EnvConfig = "YUQUE_CONFIG"
)

// Config is the configuration file.
type Config struct {
	// Token is the personal access token.
	Token string `hcl:"token,optional"`

	// BaseURL is the API base URL.
	BaseURL string `hcl:"base_url,optional"`

	// Timeout is a Go duration string, for example "30s".
	Timeout string `hcl:"timeout,optional"`

	// LogLevel is one of trace, debug, info, warn or error.
	LogLevel string `hcl:"log_level,optional"`
}

// Load reads and decodes the configuration file at path from fs. env is made
// available to expressions in the file.
func Load(fs afero.Fs, path string, env map[string]string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("configuration file path is required")
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("error reading configuration file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, evalContext(env), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	return &cfg, nil
}

// evalContext exposes the environment to HCL expressions as the env object
// and the env() function. env() returns "" for unset variables.
func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}

	envFunc := function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(env[args[0].AsString()]), nil
		},
	})

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

// Environ converts os.Environ-style "KEY=value" pairs to a map.
func Environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Flags are the values given on the command line. Empty fields are unset.
type Flags struct {
	Token    string
	BaseURL  string
	LogLevel string
}

// Settings are the effective settings after resolution.
type Settings struct {
	Token    string
	BaseURL  string
	Timeout  time.Duration
	LogLevel hclog.Level
}

// Resolve merges the sources in order of precedence: flags, then the
// environment, then the configuration file (which may be nil), then defaults.
// All problems are reported together.
func Resolve(file *Config, env map[string]string, flags Flags) (*Settings, error) {
	if file == nil {
		file = &Config{}
	}
	defaults := yuque.DefaultConfig()

	s := &Settings{
		Token:    first(flags.Token, env[EnvToken], file.Token),
		BaseURL:  first(flags.BaseURL, env[EnvBaseURL], file.BaseURL, defaults.BaseURL),
		Timeout:  defaults.Timeout,
		LogLevel: hclog.NoLevel,
	}

	var result *multierror.Error

	if s.Token == "" {
		result = multierror.Append(result, fmt.Errorf(
			"token is required: set -token, %s or token in the configuration file", EnvToken))
	}

	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout %q: %w", file.Timeout, err))
		} else if d < 0 {
			result = multierror.Append(result, fmt.Errorf("timeout must not be negative: %s", file.Timeout))
		} else {
			s.Timeout = d
		}
	}

	if level := first(flags.LogLevel, file.LogLevel); level != "" {
		s.LogLevel = hclog.LevelFromString(level)
		if s.LogLevel == hclog.NoLevel {
			result = multierror.Append(result, fmt.Errorf("invalid log level %q", level))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return s, nil
}

// ClientConfig returns the yuque client configuration for these settings.
func (s *Settings) ClientConfig(logger hclog.Logger) *yuque.Config {
	return &yuque.Config{
		Token:   s.Token,
		BaseURL: s.BaseURL,
		Timeout: s.Timeout,
		Logger:  logger,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
