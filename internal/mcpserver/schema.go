package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hance08/fakturoid-mcp/internal/request"
	"github.com/hance08/fakturoid-mcp/internal/tools"
)

var lineSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":       map[string]any{"type": "string", "description": "Line item name"},
		"quantity":   map[string]any{"type": "number", "description": "Quantity, defaults to 1"},
		"unit_name":  map[string]any{"type": "string", "description": "Unit, e.g. hours"},
		"unit_price": map[string]any{"type": "number", "description": "Price per unit"},
		"vat_rate":   map[string]any{"type": "number", "description": "VAT rate in percent"},
	},
	"required": []string{"name"},
}

// toolFor builds the MCP tool definition of an operation.
func toolFor(op tools.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithTitleAnnotation(op.Title),
		mcp.WithReadOnlyHintAnnotation(op.ReadOnly),
		mcp.WithDestructiveHintAnnotation(op.Destructive),
		mcp.WithIdempotentHintAnnotation(op.Idempotent),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, p := range op.Params {
		opts = append(opts, property(p))
	}
	return mcp.NewTool(op.Name, opts...)
}

func property(p request.Param) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(p.Description)}
	if p.Required {
		props = append(props, mcp.Required())
	}

	switch p.Kind {
	case request.Date:
		props = append(props, mcp.Pattern(`^\d{4}-\d{2}-\d{2}$`))
		return mcp.WithString(p.Name, props...)
	case request.Integer, request.Number:
		return mcp.WithNumber(p.Name, props...)
	case request.Bool:
		if b, ok := p.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(b))
		}
		return mcp.WithBoolean(p.Name, props...)
	case request.StringList:
		props = append(props, mcp.Items(map[string]any{"type": "string"}))
		return mcp.WithArray(p.Name, props...)
	case request.Lines:
		props = append(props, mcp.Items(lineSchema))
		return mcp.WithArray(p.Name, props...)
	default:
		return mcp.WithString(p.Name, props...)
	}
}
