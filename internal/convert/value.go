package convert

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hance08/fakturoid-mcp/internal/model"
)

// MaxDepth bounds recursion into nested records, slices and maps. Values
// nested deeper are rendered with fmt instead of being walked.
const MaxDepth = 32

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	dateType        = reflect.TypeOf(model.Date{})
	timeType        = reflect.TypeOf(time.Time{})
	recordType      = reflect.TypeOf(Record(nil))
)

// Value converts v into a value encoding/json can marshal without loss.
func Value(v any) any {
	return value(reflect.ValueOf(v), 0)
}

// Decimal renders d exactly, keeping the scale it was parsed with, so
// "100.00" stays "100.00" and 19.999 never becomes 19.999000000000001.
func Decimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func value(v reflect.Value, depth int) any {
	if !v.IsValid() {
		return nil
	}
	if depth > MaxDepth {
		return fallback(v)
	}

	switch v.Type() {
	case decimalType:
		return Decimal(v.Interface().(decimal.Decimal))
	case nullDecimalType:
		nd := v.Interface().(decimal.NullDecimal)
		if !nd.Valid {
			return nil
		}
		return Decimal(nd.Decimal)
	case dateType:
		return v.Interface().(model.Date).String()
	case timeType:
		return v.Interface().(time.Time).Format(time.RFC3339Nano)
	case recordType:
		return v.Interface()
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return value(v.Elem(), depth+1)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		return sequence(v, depth)
	case reflect.Array:
		return sequence(v, depth)
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = value(iter.Value(), depth+1)
		}
		return out
	case reflect.Struct:
		return serialize(v, depth+1)
	case reflect.Float32, reflect.Float64:
		if f := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback(v)
		}
		return v.Interface()
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Interface()
	default:
		return fallback(v)
	}
}

func sequence(v reflect.Value, depth int) []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = value(v.Index(i), depth+1)
	}
	return out
}

func fallback(v reflect.Value) any {
	if !v.CanInterface() {
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}
