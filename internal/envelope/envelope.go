// Package envelope renders the single JSON text every tool call returns:
// the serialized payload on success, {"error": "..."} on failure.
package envelope

import "github.com/hance08/fakturoid-mcp/internal/convert"

const unknownError = "unknown error"

// Success renders a record, a list of records or any JSON-safe payload.
// Payloads that are not already converted go through convert.Value first.
func Success(payload any) string {
	data, err := convert.Marshal(convert.Value(payload))
	if err != nil {
		return Failure(err)
	}
	return string(data)
}

// Confirm renders {"success": true, ...} followed by the given key/value
// pairs in order, e.g. Confirm("deleted_id", 42).
func Confirm(pairs ...any) string {
	rec := convert.Record{{Name: "success", Value: true}}
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			continue
		}
		rec = append(rec, convert.Field{Name: name, Value: convert.Value(pairs[i+1])})
	}
	return Success(rec)
}

// Failure renders {"error": message}. The message is never empty.
func Failure(err error) string {
	msg := unknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	data, marshalErr := convert.Marshal(map[string]string{"error": msg})
	if marshalErr != nil {
		return `{"error":"` + unknownError + `"}`
	}
	return string(data)
}

// IsFailure reports whether text is an error envelope produced by Failure.
func IsFailure(text string) bool {
	return len(text) > 10 && text[:10] == `{"error":"`
}
