// Package table holds the framework-free core of the data table: column
// definitions and value lookup, the sort engine, the sort/selection state
// and the decision of which visual phase to show.
//
// Nothing in this package knows about terminals or Bubble Tea. The
// datatable package binds it to a component and the ui package draws it.
package table
