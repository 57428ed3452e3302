package table

import "slices"

// State is the per-instance state of a table: the sort directive and the
// selected rows. The zero value has no sort and an empty selection.
type State[R any] struct {
	directive SortDirective
	selected  []*R
}

// ToggleSort applies ToggleSort to the state and returns the new directive.
func (s *State[R]) ToggleSort(key string) SortDirective {
	s.directive = ToggleSort(s.directive, key)
	return s.directive
}

// ToggleSelect applies ToggleSelect to the state and returns the new selection.
func (s *State[R]) ToggleSelect(row *R) []*R {
	s.selected = ToggleSelect(s.selected, row)
	return s.selected
}

// Directive returns the current sort directive.
func (s *State[R]) Directive() SortDirective {
	return s.directive
}

// SortStateOf returns the sort state of the column identified by key.
func (s *State[R]) SortStateOf(key string) SortState {
	return s.directive.StateOf(key)
}

// Selected returns the selected rows in selection order.
func (s *State[R]) Selected() []*R {
	return slices.Clone(s.selected)
}

// IsSelected reports whether row is selected. Membership is pointer identity.
func (s *State[R]) IsSelected(row *R) bool {
	return slices.Contains(s.selected, row)
}

// ToggleSort returns the directive after activating the column key: the
// active column flips direction, any other column becomes active ascending.
// Callers only pass sortable columns.
func ToggleSort(d SortDirective, key string) SortDirective {
	if d.Active() && d.Key == key {
		d.Direction = d.Direction.Flip()
		return d
	}
	return SortDirective{Key: key, Direction: Ascending}
}

// ToggleSelect returns sel with row removed if present, or appended
// otherwise. Membership is pointer identity, not row id. The result is always
// a new slice; sel is left untouched.
func ToggleSelect[R any](sel []*R, row *R) []*R {
	if i := slices.Index(sel, row); i >= 0 {
		out := make([]*R, 0, len(sel)-1)
		out = append(out, sel[:i]...)
		return append(out, sel[i+1:]...)
	}
	out := make([]*R, 0, len(sel)+1)
	out = append(out, sel...)
	return append(out, row)
}
