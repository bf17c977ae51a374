package request

import "fmt"

// MissingFieldError reports a required argument that was not supplied.
type MissingFieldError struct {
	Name string
	// Reason explains a conditional requirement, e.g. "required for the pay event".
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("missing required parameter %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// TypeError reports an argument whose JSON type does not match its declaration.
type TypeError struct {
	Name string
	Want Kind
	Got  any
	Err  error
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("invalid value for %q: expected %s, got %s", e.Name, e.Want, jsonType(e.Got))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeError) Unwrap() error { return e.Err }

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
