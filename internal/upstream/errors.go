package upstream

import (
	"fmt"
	"sort"
	"strings"
)

// TransportError wraps failures where the request never produced a usable
// response (connection refused, DNS, context cancellation).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError covers non-2xx responses and 2xx responses whose payload signals
// failure (success: false or status: "error").
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error (%d)", e.StatusCode)
}

// ValidationError carries per-field messages from a 422-style response.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.FieldMessages(), "; "))
}

// FieldMessages flattens the field map into "Field: message" lines in stable
// order, ready for inline display.
func (e *ValidationError) FieldMessages() []string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []string
	for _, f := range fields {
		for _, msg := range e.Fields[f] {
			out = append(out, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return out
}
