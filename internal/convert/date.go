package convert

import (
	"fmt"

	"github.com/hance08/fakturoid-mcp/internal/model"
)

// ParseError reports a date argument that is not a valid YYYY-MM-DD string.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseDate parses an optional ISO-8601 calendar date. A nil input yields a nil date.
func ParseDate(s *string) (*model.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := model.ParseDate(*s)
	if err != nil {
		return nil, &ParseError{Value: *s, Err: err}
	}
	return &d, nil
}
