// Package app provides the Bubble Tea model of the datatable demo program.
//
// The demo mounts one datatable.Model per story and remounts it when the
// story changes, so sort and selection start over like a fresh component.
// On top of the table it adds a fuzzy filter over the rows, a help screen,
// asynchronous loading of a fixture file and a status line that echoes what
// the table reports through its selection callback.
package app
