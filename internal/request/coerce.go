package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hance08/fakturoid-mcp/internal/convert"
	"github.com/hance08/fakturoid-mcp/internal/model"
)

// coerce converts a decoded JSON argument into the Go type its Kind declares:
// string, model.Date, int64, decimal.Decimal, bool, []string or []model.Line.
func coerce(p Param, raw any) (any, error) {
	switch p.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		return s, nil

	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		d, err := convert.ParseDate(&s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		return *d, nil

	case Integer:
		return toInteger(p, raw)

	case Number:
		return toDecimal(p, raw)

	case Bool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
			}
			return b, nil
		}
		return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}

	case StringList:
		switch v := raw.(type) {
		case []string:
			return v, nil
		case []any:
			out := make([]string, len(v))
			for i, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
				}
				out[i] = s
			}
			return out, nil
		}
		return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}

	case Lines:
		return toLines(p, raw)
	}
	return nil, fmt.Errorf("parameter %q has unsupported kind %d", p.Name, p.Kind)
}

func toInteger(p Param, raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &TypeError{Name: p.Name, Want: p.Kind, Got: raw, Err: err}
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		return n, nil
	}
	return 0, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
}

func toDecimal(p Param, raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, &TypeError{Name: p.Name, Want: p.Kind, Got: raw, Err: err}
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
		return d, nil
	}
	return decimal.Decimal{}, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
}

// toLines decodes line objects strictly: unknown keys are rejected so a
// misspelled "unit_prise" fails loudly instead of being dropped.
func toLines(p Param, raw any) ([]model.Line, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
	}
	for _, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw}
		}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw, Err: err}
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	lines := make([]model.Line, 0, len(items))
	if err := decoder.Decode(&lines); err != nil {
		return nil, &TypeError{Name: p.Name, Want: p.Kind, Got: raw, Err: err}
	}
	return lines, nil
}
