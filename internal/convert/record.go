package convert

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// InternalPrefix marks attributes that are never serialized.
const InternalPrefix = "_"

// Field is one serialized attribute.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered mapping of attribute names to JSON-safe values.
// It marshals as a JSON object with keys in declaration order.
type Record []Field

// Serialize walks the exported attributes of record and converts each with
// Value. A nil or non-struct record yields an empty Record.
func Serialize(record any) Record {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Record{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Record{}
	}
	return serialize(v, 0)
}

// SerializeAll serializes each element of a slice of records.
func SerializeAll[T any](records []T) []Record {
	out := make([]Record, len(records))
	for i := range records {
		out[i] = Serialize(&records[i])
	}
	return out
}

func serialize(v reflect.Value, depth int) Record {
	t := v.Type()
	rec := make(Record, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			embedded := v.Field(i)
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && jsonName(field) == "" {
				rec = append(rec, serialize(embedded, depth)...)
				continue
			}
		}

		name := jsonName(field)
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		if strings.HasPrefix(name, InternalPrefix) {
			continue
		}
		rec = append(rec, Field{Name: name, Value: value(v.Field(i), depth)})
	}
	return rec
}

func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal encodes v as compact JSON without HTML escaping, so text such as
// "R&D <note>" and non-ASCII names survive unchanged.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
