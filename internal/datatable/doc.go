// Package datatable provides a generic Bubble Tea table component.
//
// Model renders caller-owned rows of any type through column definitions and
// supports client-side sorting on one column, identity-based row selection,
// a loading state and an empty state. Headers and checkboxes react to both
// keys and mouse clicks. Every selection change is reported to the callback
// registered with SetOnRowSelect.
//
// Model follows the bubbles component convention: Update returns the concrete
// Model, and setters take a pointer receiver.
package datatable
