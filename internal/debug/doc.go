// Package debug provides debug logging for the datatable demo.
//
// When enabled via the --debug flag or debug.log_file, it logs sort and
// selection changes, fixture loads and story switches to help diagnose issues.
package debug
