package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind tags how a response body was normalized.
type Kind int

const (
	// KindEmpty means the response had no body; only Response is set.
	KindEmpty Kind = iota

	// KindEnvelope means the body was {"code": 0, "data": ...} and Data holds
	// the unwrapped payload.
	KindEnvelope

	// KindRaw means the body was present but not a success envelope. Data
	// holds the whole body unmodified.
	KindRaw
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEnvelope:
		return "envelope"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the normalized outcome of a successful request.
type Result struct {
	Kind Kind

	// Data is the unwrapped payload (KindEnvelope) or the whole body
	// (KindRaw). Nil for KindEmpty.
	Data json.RawMessage

	// Response is the raw HTTP response. Its body has already been consumed.
	Response *http.Response
}

// Decode unmarshals Data into v. It is a no-op for KindEmpty.
func (r *Result) Decode(v any) error {
	if r.Kind == KindEmpty || len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", r.Kind, err)
	}
	return nil
}

// normalize applies the envelope rules to a response body.
func normalize(resp *http.Response, body []byte) *Result {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Result{Kind: KindEmpty, Response: resp}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if rawCode, ok := envelope["code"]; ok {
			var code float64
			if err := json.Unmarshal(rawCode, &code); err == nil && code == 0 {
				data := envelope["data"]
				if data == nil {
					data = json.RawMessage("null")
				}
				return &Result{Kind: KindEnvelope, Data: data, Response: resp}
			}
		}
	}

	return &Result{Kind: KindRaw, Data: json.RawMessage(body), Response: resp}
}

// ResponseError is returned for non-2xx responses. It carries the remote
// service's own body so callers can tell not-found from permission errors.
type ResponseError struct {
	StatusCode int
	Body       []byte
	Response   *http.Response

	// Message is the remote "message" field, if the body had one.
	Message string
}

func newResponseError(resp *http.Response, body []byte) *ResponseError {
	e := &ResponseError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Response:   resp,
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		e.Message = apiErr.Message
	}

	return e
}

// Error implements error.
func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, string(e.Body))
}
