package table

import (
	"fmt"
	"reflect"
	"strings"
)

// Column describes one displayed column of rows of type R.
type Column[R any] struct {
	// Key identifies the column for sorting and must be unique.
	Key string

	// Title is the header label.
	Title string

	// DataIndex names the field of R shown in this column.
	DataIndex string

	// Sortable enables header activation for this column.
	Sortable bool

	// Value overrides the DataIndex lookup when set.
	Value func(row *R) any
}

// ValueOf returns the value this column displays for row.
// A field that cannot be resolved yields nil.
func (c Column[R]) ValueOf(row *R) any {
	if c.Value != nil {
		return c.Value(row)
	}
	if row == nil {
		return nil
	}
	return lookupField(reflect.ValueOf(row), c.DataIndex)
}

// FindColumn returns the column with the given key.
func FindColumn[R any](columns []Column[R], key string) (Column[R], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Stringify converts a cell value to its display text.
func Stringify(v any) string {
	return fmt.Sprint(v)
}

// lookupField resolves name against a map key, a `table` struct tag or an
// exported struct field name (case-insensitive), in that order.
func lookupField(v reflect.Value, name string) any {
	if name == "" {
		return nil
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.IsExported() && f.Tag.Get("table") == name {
				return v.Field(i).Interface()
			}
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.IsExported() && strings.EqualFold(f.Name, name) {
				return v.Field(i).Interface()
			}
		}
	}

	return nil
}
