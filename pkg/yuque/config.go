package yuque

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the public Yuque API root.
const DefaultBaseURL = "https://www.yuque.com/api/v2"

// Config contains configuration for a Client.
//
// Example configuration (HCL, as read by the yuque CLI):
//
//	token    = env.YUQUE_TOKEN
//	base_url = "https://www.yuque.com/api/v2"
//	timeout  = "30s"
type Config struct {
	// Token is the personal access token sent as X-Auth-Token.
	Token string `json:"-"` // Don't marshal the token to JSON

	// BaseURL of the Yuque API.
	// Default: https://www.yuque.com/api/v2
	BaseURL string `json:"base_url"`

	// Timeout for API requests. Ignored when HTTPClient is set.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// HTTPClient overrides the default HTTP client (optional).
	HTTPClient *http.Client `json:"-"`

	// Logger (optional).
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with defaults for everything but the token.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token,
			validation.Required.Error("token is required")),
		validation.Field(&c.BaseURL,
			validation.Required.Error("base_url is required"),
			validation.By(validateBaseURL)),
		validation.Field(&c.Timeout,
			validation.Min(time.Duration(0)).Error("timeout must not be negative")),
	)
}

func validateBaseURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	parsedURL, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("base_url must include a host")
	}

	return nil
}
