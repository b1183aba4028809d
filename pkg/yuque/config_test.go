package yuque

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid config",
			config: &Config{
				Token:   "valid-token",
				BaseURL: DefaultBaseURL,
			},
		},
		{
			name: "Missing base URL",
			config: &Config{
				Token: "valid-token",
			},
			wantError: true,
			errorMsg:  "base_url is required",
		},
		{
			name: "Missing token",
			config: &Config{
				BaseURL: DefaultBaseURL,
			},
			wantError: true,
			errorMsg:  "token is required",
		},
		{
			name: "Invalid URL scheme",
			config: &Config{
				Token:   "valid-token",
				BaseURL: "ftp://www.yuque.com/api/v2",
			},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name: "Missing host",
			config: &Config{
				Token:   "valid-token",
				BaseURL: "https:///api/v2",
			},
			wantError: true,
			errorMsg:  "host",
		},
		{
			name: "Negative timeout",
			config: &Config{
				Token:   "valid-token",
				BaseURL: DefaultBaseURL,
				Timeout: -1 * time.Second,
			},
			wantError: true,
			errorMsg:  "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := New(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid yuque client config")
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("applies defaults without touching the caller's config", func(t *testing.T) {
		cfg := &Config{Token: "tok"}
		client, err := New(cfg)
		require.NoError(t, err)

		assert.Equal(t, DefaultBaseURL, client.BaseURL())
		assert.Empty(t, cfg.BaseURL)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		client, err := New(&Config{Token: "tok", BaseURL: "https://yuque.example.com/api/v2/"})
		require.NoError(t, err)
		assert.Equal(t, "https://yuque.example.com/api/v2", client.BaseURL())
	})

	t.Run("custom HTTP client", func(t *testing.T) {
		client, err := New(&Config{Token: "tok", HTTPClient: &http.Client{}})
		require.NoError(t, err)
		assert.NotNil(t, client.Transport())
	})
}
