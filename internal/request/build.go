package request

import (
	"reflect"
)

// Value is one attribute headed for the remote API.
type Value struct {
	Field string
	Value any
}

// Values preserves the order in which parameters were declared.
type Values []Value

// Get returns the value for a remote attribute.
func (vs Values) Get(field string) (any, bool) {
	for _, v := range vs {
		if v.Field == field {
			return v.Value, true
		}
	}
	return nil, false
}

// Map returns the values keyed by remote attribute.
func (vs Values) Map() map[string]any {
	out := make(map[string]any, len(vs))
	for _, v := range vs {
		out[v.Field] = v.Value
	}
	return out
}

// Build checks and coerces args against params and returns the values that
// should be sent. A key missing from args and a key holding JSON null are
// both treated as "not supplied". Arguments not declared in params are ignored.
func Build(params []Param, args map[string]any) (Values, error) {
	values := make(Values, 0, len(params))
	for _, p := range params {
		raw, present := args[p.Name]
		if raw == nil {
			present = false
		}

		if !present {
			if p.Required {
				return nil, &MissingFieldError{Name: p.Name}
			}
			if p.Presence == Always && p.Default != nil {
				values = append(values, Value{Field: p.Target(), Value: mapped(p, p.Default)})
			}
			continue
		}

		if p.Presence == OmitEmpty && !p.Required && isEmpty(raw) {
			continue
		}

		coerced, err := coerce(p, raw)
		if err != nil {
			return nil, err
		}

		if p.Presence == OmitDefault && !p.Required && reflect.DeepEqual(coerced, p.Default) {
			continue
		}

		values = append(values, Value{Field: p.Target(), Value: mapped(p, coerced)})
	}
	return values, nil
}

func mapped(p Param, v any) any {
	if p.Map == nil {
		return v
	}
	return p.Map(v)
}

func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
