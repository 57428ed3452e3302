// Package stories provides the demo rows and the named table configurations
// the datatable program can show.
//
// Each Story mirrors one way of mounting the table: with data, with
// selection enabled, while loading and without rows. Rows can also be read
// from a TOML fixture file, see LoadUsers.
package stories
