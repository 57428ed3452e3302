// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - using more subtle, balanced palette
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorSuccess   = lipgloss.Color("2")   // Green
	ColorDanger    = lipgloss.Color("1")   // Red
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
)

// Styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Column header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// Header under keyboard focus
	FocusedHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(ColorHighlight)

	// Cursor row style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	// Normal cell style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Checked checkbox style
	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Sort indicator style
	SortStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Placeholder and secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	// Divider style
	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Symbols
const (
	SymbolCursor     = "›"
	SymbolAscending  = "▲"
	SymbolDescending = "▼"
	SymbolChecked    = "[x]"
	SymbolUnchecked  = "[ ]"
	SymbolDivider    = "─"
)
