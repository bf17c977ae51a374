package fakturoid

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound matches an *APIError with status 404 under errors.Is.
var ErrNotFound = errors.New("record not found")

// APIError is a non-2xx response from the accounting API.
type APIError struct {
	Status  int
	Message string
	// Fields holds validation messages of a 422 response, keyed by attribute.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fakturoid: %d %s", e.Status, http.StatusText(e.Status))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = name + " " + strings.Join(e.Fields[name], ", ")
		}
		b.WriteString(": ")
		b.WriteString(strings.Join(parts, "; "))
	}
	return b.String()
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// errorBody covers the error shapes the API returns: validation errors keyed
// by attribute, and OAuth-style error/error_description pairs.
type errorBody struct {
	Errors           json.RawMessage `json:"errors"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
			apiErr.Message = text
		}
		return apiErr
	}

	switch {
	case parsed.ErrorDescription != "":
		apiErr.Message = parsed.ErrorDescription
	case parsed.Error != "":
		apiErr.Message = parsed.Error
	}

	if len(parsed.Errors) > 0 {
		var fields map[string][]string
		if err := json.Unmarshal(parsed.Errors, &fields); err == nil {
			apiErr.Fields = fields
		} else {
			var list []string
			if err := json.Unmarshal(parsed.Errors, &list); err == nil {
				apiErr.Message = strings.Join(list, "; ")
			}
		}
	}
	return apiErr
}
