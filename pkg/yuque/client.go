package yuque

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/yuque/internal/version"
	"github.com/hashicorp-forge/yuque/pkg/transport"
)

// Client exposes one method per Yuque API operation. It is safe for
// concurrent use; nothing but the token, base URL and HTTP client is shared
// between calls.
type Client struct {
	config    *Config
	transport *transport.Transport
	logger    hclog.Logger
}

// New creates a new Client. Missing optional fields take their defaults.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Apply defaults on a copy so the caller's config is left alone.
	c := *cfg
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid yuque client config: %w", err)
	}

	t, err := transport.New(transport.Config{
		Token:      c.Token,
		BaseURL:    c.BaseURL,
		UserAgent:  "yuque-go/" + version.Version,
		HTTPClient: c.HTTPClient,
		Timeout:    c.Timeout,
		Logger:     c.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating transport: %w", err)
	}

	return &Client{
		config:    &c,
		transport: t,
		logger:    c.Logger.Named("yuque"),
	}, nil
}

// Transport returns the underlying transport for calls this package does not
// wrap.
func (c *Client) Transport() *transport.Transport {
	return c.transport
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL()
}

func (c *Client) get(ctx context.Context, path string, params any, out any) error {
	opts, err := queryOptions(params)
	if err != nil {
		return err
	}
	res, err := c.transport.Get(ctx, path, opts)
	if err != nil {
		return err
	}
	return decodeResult(res, out)
}

func (c *Client) post(ctx context.Context, path string, params, body any, out any) error {
	opts, err := queryOptions(params)
	if err != nil {
		return err
	}
	res, err := c.transport.Post(ctx, path, body, opts)
	if err != nil {
		return err
	}
	return decodeResult(res, out)
}

func (c *Client) put(ctx context.Context, path string, params any, out any) error {
	opts, err := queryOptions(params)
	if err != nil {
		return err
	}
	res, err := c.transport.Put(ctx, path, nil, opts)
	if err != nil {
		return err
	}
	return decodeResult(res, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	res, err := c.transport.Delete(ctx, path, nil)
	if err != nil {
		return err
	}
	return decodeResult(res, out)
}

func queryOptions(params any) (*transport.RequestOptions, error) {
	if params == nil {
		return nil, nil
	}
	query, err := transport.EncodeValues(params)
	if err != nil {
		return nil, err
	}
	return transport.WithQuery(query), nil
}

// decodeResult decodes a normalized result into out.
//
// Enveloped payloads decode directly. A raw body carrying a "code" member is
// a remote failure and comes back as an *EnvelopeError. A raw body of the
// form {"data": ...} with no code, which is how the v2 API answers most
// calls, decodes its data member. Any other raw body decodes as a whole.
func decodeResult(res *transport.Result, out any) error {
	if res.Kind == transport.KindEmpty {
		return nil
	}

	if res.Kind == transport.KindRaw {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(res.Data, &wrapper); err == nil {
			if code, ok := wrapper["code"]; ok {
				return newEnvelopeError(res, code, wrapper["message"])
			}
			if out == nil {
				return nil
			}
			if data, ok := wrapper["data"]; ok {
				if err := json.Unmarshal(data, out); err != nil {
					return fmt.Errorf("failed to decode response data: %w", err)
				}
				return nil
			}
		}
	}

	if out == nil {
		return nil
	}
	return res.Decode(out)
}

// escapeSegment escapes a free-form path segment such as a document slug.
func escapeSegment(s string) string {
	return url.PathEscape(s)
}
