package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnauthorized is wrapped by errors for 401 responses. The stored
	// token has already been cleared when it is returned.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is wrapped by errors for 404 responses.
	ErrNotFound = errors.New("not found")
)

// Error is a non-2xx API response.
type Error struct {
	Message    string
	StatusCode int
	// Details is the decoded response body, nil when it was not JSON.
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap maps well-known statuses to sentinel errors.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

func newError(resp *http.Response) *Error {
	e := &Error{
		Message:    resp.Status,
		StatusCode: resp.StatusCode,
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return e
	}
	var details map[string]any
	if json.Unmarshal(data, &details) != nil {
		return e
	}
	e.Details = details
	for _, key := range []string{"message", "detail"} {
		if msg, ok := details[key].(string); ok && msg != "" {
			e.Message = msg
			break
		}
	}
	return e
}
