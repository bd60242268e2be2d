package llm

import (
	"errors"
	"fmt"
)

// ErrMissingResponse is returned when the model call succeeded but carried no
// usable content.
var ErrMissingResponse = errors.New("llm: model returned no content")

// Kind classifies an upstream failure for the caller's retry guidance. The
// client never retries internally.
type Kind int

const (
	KindOther Kind = iota
	KindAuth
	KindRateLimit
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	}
	return "other"
}

// UpstreamError wraps a failure reported by the model provider.
type UpstreamError struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm: upstream %s error (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.cause }

// ParseError reports that a structured completion could not be coerced into
// the requested JSON shape. Raw keeps the model output for diagnostics.
type ParseError struct {
	Raw   string
	cause error
}

// NewParseError builds a ParseError for the given raw model output.
func NewParseError(raw string, cause error) *ParseError {
	return &ParseError{Raw: raw, cause: cause}
}

func (e *ParseError) Error() string {
	if e.cause == nil {
		return "llm: response is not valid json"
	}
	return fmt.Sprintf("llm: response is not valid json: %v", e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }
