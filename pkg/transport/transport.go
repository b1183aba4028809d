// Package transport performs authenticated HTTP calls against the Yuque API
// and normalizes its response envelope.
//
// Every request carries the X-Auth-Token header. POST and PUT default to a
// form-encoded content type. Callers can override any header or add query
// parameters per call with RequestOptions; see MergeOptions for precedence.
//
// Errors are relayed, not interpreted: network failures come back exactly as
// http.Client returned them and non-2xx responses come back as
// *ResponseError. Nothing is retried.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Config contains configuration for a Transport.
type Config struct {
	// Token is sent in the X-Auth-Token header of every request.
	Token string

	// BaseURL is prefixed to every request path.
	// Example: "https://www.yuque.com/api/v2"
	BaseURL string

	// UserAgent is the default User-Agent header (optional).
	UserAgent string

	// HTTPClient is used to send requests (optional). When nil a client with
	// Timeout is created.
	HTTPClient *http.Client

	// Timeout for the default HTTP client. Zero means no timeout.
	Timeout time.Duration

	// Logger (optional).
	Logger hclog.Logger
}

// Transport is safe for concurrent use. Token and base URL are fixed at
// construction.
type Transport struct {
	token     string
	baseURL   string
	userAgent string
	client    *http.Client
	logger    hclog.Logger
}

// New creates a Transport.
func New(cfg Config) (*Transport, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Transport{
		token:     cfg.Token,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    client,
		logger:    logger.Named("transport"),
	}, nil
}

// BaseURL returns the base URL requests are sent to.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Get issues a GET request.
func (t *Transport) Get(ctx context.Context, path string, opts *RequestOptions) (*Result, error) {
	return t.do(ctx, http.MethodGet, path, nil, MergeOptions(opts, t.defaults(false)))
}

// Post issues a POST request with body.
func (t *Transport) Post(ctx context.Context, path string, body any, opts *RequestOptions) (*Result, error) {
	return t.do(ctx, http.MethodPost, path, body, MergeOptions(opts, t.defaults(true)))
}

// Put issues a PUT request with body.
func (t *Transport) Put(ctx context.Context, path string, body any, opts *RequestOptions) (*Result, error) {
	return t.do(ctx, http.MethodPut, path, body, MergeOptions(opts, t.defaults(true)))
}

// Delete issues a DELETE request.
func (t *Transport) Delete(ctx context.Context, path string, opts *RequestOptions) (*Result, error) {
	return t.do(ctx, http.MethodDelete, path, nil, MergeOptions(opts, t.defaults(false)))
}

// defaults returns the library default options for a request.
func (t *Transport) defaults(mutating bool) *RequestOptions {
	h := http.Header{}
	h.Set(HeaderAuthToken, t.token)
	if t.userAgent != "" {
		h.Set(HeaderUserAgent, t.userAgent)
	}
	if mutating {
		h.Set(HeaderContentType, ContentTypeForm)
	}
	return &RequestOptions{Header: h}
}

// buildURL joins the base URL and path and encodes query parameters.
func (t *Transport) buildURL(path string, query url.Values) string {
	endpoint := t.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func (t *Transport) do(ctx context.Context, method, path string, body any, opts *RequestOptions) (*Result, error) {
	endpoint := t.buildURL(path, opts.Query)

	bodyReader, err := encodeBody(body, opts.Header.Get(HeaderContentType))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vv := range opts.Header {
		req.Header[k] = vv
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug("request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("request completed",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newResponseError(resp, respBody)
	}

	return normalize(resp, respBody), nil
}

// encodeBody encodes a request body according to the effective content type.
func encodeBody(body any, contentType string) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case io.Reader:
		return b, nil
	case []byte:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	case url.Values:
		return strings.NewReader(b.Encode()), nil
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == ContentTypeJSON || strings.HasSuffix(mediaType, "+json") {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(data), nil
	}

	values, err := EncodeValues(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return strings.NewReader(values.Encode()), nil
}
