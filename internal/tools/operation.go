package tools

import (
	"context"

	"github.com/hance08/fakturoid-mcp/internal/request"
)

// Handler runs one operation and returns its success envelope.
type Handler func(ctx context.Context, store RecordStore, args map[string]any) (string, error)

// Operation is one callable tool.
type Operation struct {
	Name        string
	Title       string
	Description string
	// Entity groups operations for display, e.g. "invoices".
	Entity string
	Params []request.Param

	ReadOnly    bool
	Destructive bool
	Idempotent  bool

	Handler Handler
}

// identifier reads a required integer identifier argument.
func identifier(args map[string]any, name string) (int64, error) {
	values, err := request.Build([]request.Param{{Name: name, Kind: request.Integer, Required: true}}, args)
	if err != nil {
		return 0, err
	}
	id, _ := values.Get(name)
	return id.(int64), nil
}

// requiredString reads a required, non-empty string argument.
func requiredString(args map[string]any, name string) (string, error) {
	values, err := request.Build([]request.Param{{Name: name, Kind: request.String, Required: true}}, args)
	if err != nil {
		return "", err
	}
	s, _ := values.Get(name)
	if s.(string) == "" {
		return "", &request.MissingFieldError{Name: name, Reason: "must not be empty"}
	}
	return s.(string), nil
}

func idParam(name, description string) request.Param {
	return request.Param{Name: name, Kind: request.Integer, Required: true, Description: description}
}
