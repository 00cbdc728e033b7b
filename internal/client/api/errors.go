package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a non-2xx response. Body holds the decoded JSON body, or the raw
// text when it was not JSON.
type Error struct {
	Status int
	Body   any
}

func newError(status int, raw []byte) *Error {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		body = strings.TrimSpace(string(raw))
	}
	return &Error{Status: status, Body: body}
}

func (e *Error) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Message())
}

func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// Field returns a top-level string or list-of-strings field of the body,
// joined by ", ". ok is false when the field is absent or empty.
func (e *Error) Field(name string) (string, bool) {
	m, isMap := e.Body.(map[string]any)
	if !isMap {
		return "", false
	}
	return stringish(m[name])
}

// Message picks the most useful text from the body: detail, message,
// non_field_errors, error, then flattened field errors, then the raw text.
func (e *Error) Message() string {
	for _, k := range []string{"detail", "message", "non_field_errors", "error"} {
		if s, ok := e.Field(k); ok {
			return s
		}
	}

	switch b := e.Body.(type) {
	case map[string]any:
		if lines := FlattenErrors(b); len(lines) > 0 {
			return strings.Join(lines, "; ")
		}
	case string:
		if b != "" {
			return truncate(b, 200)
		}
	case []any:
		if lines := FlattenErrors(b); len(lines) > 0 {
			return strings.Join(lines, "; ")
		}
	}

	if t := http.StatusText(e.Status); t != "" {
		return strings.ToLower(t)
	}
	return "request failed"
}

// JSON renders the body as compact JSON, or the raw text.
func (e *Error) JSON() string {
	if s, ok := e.Body.(string); ok {
		return s
	}
	b, err := json.Marshal(e.Body)
	if err != nil {
		return ""
	}
	return string(b)
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func stringish(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), len(parts) > 0
	}
	return "", false
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
