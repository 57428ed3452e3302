package table

import (
	"cmp"
	"math"
	"reflect"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order applied to the active sort column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortDirective is the active sort column and its direction.
// An empty Key means no sort is applied.
type SortDirective struct {
	Key       string
	Direction Direction
}

// Active reports whether a column is selected for sorting.
func (d SortDirective) Active() bool {
	return d.Key != ""
}

// SortState is the sort state a single header exposes.
type SortState int

const (
	SortNone SortState = iota
	SortAscending
	SortDescending
)

// String returns the state the way accessibility tooling names it.
func (s SortState) String() string {
	switch s {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// StateOf returns the sort state of the column identified by key.
func (d SortDirective) StateOf(key string) SortState {
	if !d.Active() || d.Key != key {
		return SortNone
	}
	if d.Direction == Descending {
		return SortDescending
	}
	return SortAscending
}

// Sorter compares cell values. String comparison is locale-aware.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter collating strings for the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// DefaultSorter returns a Sorter for English collation.
func DefaultSorter() *Sorter {
	return NewSorter(language.English)
}

// Compare orders a before b. When both values are numeric they are compared
// by value, otherwise their display strings are collated. The choice is made
// for each pair, so a column mixing numbers and text is not totally ordered.
func (s *Sorter) Compare(a, b any) int {
	if c, ok := compareNumbers(a, b); ok {
		return c
	}
	return s.collator.CompareString(Stringify(a), Stringify(b))
}

// Permutation returns indices into values in stable sorted order.
func (s *Sorter) Permutation(values []any, dir Direction) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		if dir == Descending {
			return s.Compare(values[j], values[i])
		}
		return s.Compare(values[i], values[j])
	})
	return idx
}

// DeriveOrder returns rows in the order described by d.
//
// Without an active directive, or when d names no known column, rows is
// returned as is. Otherwise the result is a new slice holding the same
// pointers; rows itself is never reordered. A nil sorter uses DefaultSorter.
func DeriveOrder[R any](s *Sorter, rows []*R, columns []Column[R], d SortDirective) []*R {
	if !d.Active() {
		return rows
	}
	col, ok := FindColumn(columns, d.Key)
	if !ok {
		return rows
	}
	if s == nil {
		s = DefaultSorter()
	}

	values := make([]any, len(rows))
	for i, row := range rows {
		values[i] = col.ValueOf(row)
	}

	out := make([]*R, len(rows))
	for i, j := range s.Permutation(values, d.Direction) {
		out[i] = rows[j]
	}
	return out
}

type numberKind int

const (
	notNumber numberKind = iota
	signedNumber
	unsignedNumber
	floatNumber
)

func kindOf(v reflect.Value) numberKind {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	}
	return notNumber
}

// compareNumbers compares a and b by value when both are numbers. Integers
// are compared exactly; floats go through float64.
func compareNumbers(a, b any) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := kindOf(va), kindOf(vb)
	if ka == notNumber || kb == notNumber {
		return 0, false
	}

	switch {
	case ka == signedNumber && kb == signedNumber:
		return cmp.Compare(va.Int(), vb.Int()), true
	case ka == unsignedNumber && kb == unsignedNumber:
		return cmp.Compare(va.Uint(), vb.Uint()), true
	case ka == signedNumber && kb == unsignedNumber:
		return compareSignedUnsigned(va.Int(), vb.Uint()), true
	case ka == unsignedNumber && kb == signedNumber:
		return -compareSignedUnsigned(vb.Int(), va.Uint()), true
	}

	fa, fb := toFloat(va, ka), toFloat(vb, kb)
	// NaN compares equal to everything, like a NaN difference.
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, true
	}
	return cmp.Compare(fa, fb), true
}

func compareSignedUnsigned(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func toFloat(v reflect.Value, k numberKind) float64 {
	switch k {
	case signedNumber:
		return float64(v.Int())
	case unsignedNumber:
		return float64(v.Uint())
	}
	return v.Float()
}
