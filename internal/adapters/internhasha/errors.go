package internhasha

import (
	"context"
	"errors"
	"fmt"

	perr "internhasha/internal/platform/errors"
)

// StatusError is a non-2xx response.
// Message is the server's "message" field or a generic one, Body is the parsed
// JSON (or text), and Code is the domain code string when the body had one.
type StatusError struct {
	Message string
	Status  int
	Body    any
	Code    string

	coded error
}

func newStatusError(r *Response) *StatusError {
	e := &StatusError{Status: r.Status}
	if r.IsJSON {
		e.Body = r.JSON
	} else {
		e.Body = r.Text
	}
	if m, ok := r.JSON.(map[string]any); ok {
		if s, ok := m["message"].(string); ok && s != "" {
			e.Message = s
		}
		if s, ok := m["code"].(string); ok {
			e.Code = s
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("request failed with status %d", r.Status)
	}
	e.coded = perr.New(perr.CodeFromHTTPStatus(r.Status), e.Message)
	return e
}

// Error implements error
func (e *StatusError) Error() string { return e.Message }

// Unwrap exposes the coded project error so perr.HTTPStatus and friends work
func (e *StatusError) Unwrap() error { return e.coded }

// HTTPStatus returns the upstream status
func (e *StatusError) HTTPStatus() int { return e.Status }

// TransportError is a failure before any response was received
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements error
func (e *TransportError) Error() string { return e.Err.Error() }

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error { return e.Err }

// AsStatus returns the *StatusError in err's chain
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// DomainCode returns the upstream domain code ("APPLICANT_002" etc) or ""
func DomainCode(err error) string {
	if se, ok := AsStatus(err); ok {
		return se.Code
	}
	return ""
}

// StatusOf returns the upstream HTTP status, or 0 when there was no response
func StatusOf(err error) int {
	if se, ok := AsStatus(err); ok {
		return se.Status
	}
	return 0
}

// IsAborted reports whether err came from a canceled or expired context
func IsAborted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		perr.IsCode(err, perr.ErrorCodeCanceled)
}

// IsTransport reports whether err happened before any response arrived
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
