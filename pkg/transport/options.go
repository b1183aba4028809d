package transport

import (
	"net/http"
	"net/url"
)

// Header names and values the transport sets by default.
const (
	HeaderAuthToken   = "X-Auth-Token"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"

	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

// RequestOptions are per-call overrides for a single request.
type RequestOptions struct {
	// Header is merged over the transport defaults.
	Header http.Header

	// Query is encoded into the request URL.
	Query url.Values
}

// WithQuery returns options carrying only query parameters.
func WithQuery(q url.Values) *RequestOptions {
	return &RequestOptions{Query: q}
}

// WithHeader returns options carrying a single header.
func WithHeader(key, value string) *RequestOptions {
	h := http.Header{}
	h.Set(key, value)
	return &RequestOptions{Header: h}
}

// MergeOptions combines caller options with defaults.
//
// Precedence is per leaf key: a header name or query key present in caller
// replaces the default for that key entirely; any key the caller does not
// set is filled in from defaults. Neither argument is modified and either
// may be nil.
func MergeOptions(caller, defaults *RequestOptions) *RequestOptions {
	merged := &RequestOptions{
		Header: http.Header{},
		Query:  url.Values{},
	}

	if defaults != nil {
		copyHeader(merged.Header, defaults.Header)
		copyValues(merged.Query, defaults.Query)
	}
	if caller != nil {
		copyHeader(merged.Header, caller.Header)
		copyValues(merged.Query, caller.Query)
	}

	return merged
}

func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		dst[http.CanonicalHeaderKey(k)] = append([]string(nil), vv...)
	}
}

func copyValues(dst, src url.Values) {
	for k, vv := range src {
		dst[k] = append([]string(nil), vv...)
	}
}
