package request

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Apply writes values onto the struct record points to, matching each
// Value.Field against the struct's json tags. Every written attribute is
// replaced as a whole, lists included; attributes not in values keep their
// current contents.
func Apply(record any, values Values) error {
	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("apply: %T is not a pointer to a struct", record)
	}
	target := rv.Elem()
	fields := fieldIndex(target.Type())

	for _, v := range values {
		index, ok := fields[v.Field]
		if !ok {
			return fmt.Errorf("apply: %s has no attribute %q", target.Type().Name(), v.Field)
		}
		field := target.Field(index)

		data, err := json.Marshal(v.Value)
		if err != nil {
			return fmt.Errorf("apply %s: %w", v.Field, err)
		}
		fresh := reflect.New(field.Type())
		if err := json.Unmarshal(data, fresh.Interface()); err != nil {
			return fmt.Errorf("apply %s: %w", v.Field, err)
		}
		field.Set(fresh.Elem())
	}
	return nil
}

func fieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		index[name] = i
	}
	return index
}
