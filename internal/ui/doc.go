// Package ui provides rendering functions for the data table.
//
// Render takes RenderParams and produces the table's terminal output for one
// of its phases. RenderFrame and RenderHelp draw the demo program around it.
// Layout and HitTest map mouse coordinates back onto headers and cells using
// the same column widths Render uses. Rendering is pure and separated from
// state management.
package ui
