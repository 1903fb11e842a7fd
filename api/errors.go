package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx upstream response. Message carries the upstream
// error text verbatim when the API supplied one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func decodeError(res *http.Response) error {
	apiErr := &Error{Status: res.StatusCode}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			if payload.Error != "" {
				apiErr.Message = payload.Error
			} else {
				apiErr.Message = payload.Message
			}
		}
	}
	return apiErr
}

// IsUnauthorized reports whether err is an upstream 401, i.e. the session
// cookie is missing or no longer valid.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Message extracts the upstream error text for user display, falling back
// to a generic string for transport errors and silent responses.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
