package tools

import "github.com/hance08/fakturoid-mcp/internal/request"

const linesDescription = "Line items, each with keys: name (string), quantity (number), " +
	"unit_name (string), unit_price (number), vat_rate (number)"

func str(name, description string) request.Param {
	return request.Param{Name: name, Kind: request.String, Description: description}
}

func date(name, description string) request.Param {
	return request.Param{Name: name, Kind: request.Date, Description: description + " (YYYY-MM-DD)"}
}

func integer(name, description string) request.Param {
	return request.Param{Name: name, Kind: request.Integer, Presence: request.OmitAbsent, Description: description}
}

func boolean(name, description string) request.Param {
	return request.Param{Name: name, Kind: request.Bool, Presence: request.OmitAbsent, Description: description}
}

func tags() request.Param {
	return request.Param{Name: "tags", Kind: request.StringList, Description: "List of tags"}
}

func lines(required bool) request.Param {
	p := request.Param{Name: "lines", Kind: request.Lines, Required: required, Description: linesDescription}
	if !required {
		p.Presence = request.OmitAbsent
		p.Description = "Replacement line items; replaces all existing lines. " + linesDescription
	}
	return p
}

func required(p request.Param) request.Param {
	p.Required = true
	return p
}

// updatable marks string and date params of an update: an explicit empty
// value is forwarded so that a field can be cleared.
func updatable(params ...request.Param) []request.Param {
	out := make([]request.Param, len(params))
	for i, p := range params {
		p.Presence = request.OmitAbsent
		out[i] = p
	}
	return out
}

func renamed(p request.Param, field string) request.Param {
	p.Field = field
	return p
}

// documentType maps proforma=true/false onto the document_type attribute.
func documentType(v any) any {
	if proforma, _ := v.(bool); proforma {
		return "proforma"
	}
	return "regular"
}

func join(groups ...[]request.Param) []request.Param {
	var out []request.Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
