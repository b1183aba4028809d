package yuque

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/yuque/pkg/ident"
	"github.com/hashicorp-forge/yuque/pkg/transport"
)

// ErrMissingIdentity is returned when an operation is given a zero user or
// namespace. Sending it would address a different endpoint.
var ErrMissingIdentity = errors.New("identity is required")

// EnvelopeError is returned for a 2xx response whose body carries a
// non-zero "code". The body is kept whole and nothing is decoded from it.
type EnvelopeError struct {
	// Code is the remote "code" value. Non-numeric codes leave it at zero;
	// Body still has the original.
	Code     int64
	Message  string
	Body     []byte
	Response *http.Response
}

func newEnvelopeError(res *transport.Result, code json.RawMessage, message json.RawMessage) *EnvelopeError {
	e := &EnvelopeError{
		Body:     []byte(res.Data),
		Response: res.Response,
	}

	var n json.Number
	if err := json.Unmarshal(code, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			e.Code = i
		}
	}
	if message != nil {
		_ = json.Unmarshal(message, &e.Message)
	}

	return e
}

// Error implements error.
func (e *EnvelopeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (code %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("API returned code %d: %s", e.Code, string(e.Body))
}

func userSegment(name string, id ident.User) (string, error) {
	if id.IsZero() {
		return "", fmt.Errorf("%s: %w", name, ErrMissingIdentity)
	}
	return id.PathSegment(), nil
}

func namespaceSegment(ns ident.Namespace) (string, error) {
	if ns.IsZero() {
		return "", fmt.Errorf("namespace: %w", ErrMissingIdentity)
	}
	return ns.PathSegment(), nil
}
