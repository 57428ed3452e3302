package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Shravanidhuri/scalable-project/internal/table"
)

// Placeholder texts.
const (
	EmptyText   = "No data available"
	LoadingText = "Loading..."
)

// RenderParams contains all parameters needed for rendering the table.
type RenderParams struct {
	Phase        table.Phase
	Headers      []Header
	Rows         [][]string // display text, one slice per row in display order
	Checked      []bool     // parallel to Rows
	Selectable   bool
	Cursor       int
	ShowCursor   bool
	SpinnerFrame string
}

// Render renders the table for its current phase.
func Render(p RenderParams) string {
	switch p.Phase {
	case table.PhaseLoading:
		return renderLoading(p)
	case table.PhaseEmpty:
		return MutedStyle.Render(EmptyText)
	default:
		return renderTable(p)
	}
}

// renderLoading renders the indeterminate progress indicator.
func renderLoading(p RenderParams) string {
	frame := p.SpinnerFrame
	if frame == "" {
		frame = "…"
	}
	return frame + " " + MutedStyle.Render(LoadingText)
}

// renderTable renders the header, divider and body rows.
func renderTable(p RenderParams) string {
	l := ComputeLayout(p.Headers, p.Rows, p.Selectable)
	var b strings.Builder

	// Header
	cells := make([]string, 0, len(p.Headers)+1)
	if p.Selectable {
		cells = append(cells, HeaderStyle.Render(pad(SelectTitle, l.SelectWidth)))
	}
	for i, h := range p.Headers {
		cells = append(cells, renderHeader(h, l.Widths[i]))
	}
	b.WriteString(strings.Repeat(" ", cursorWidth))
	b.WriteString(strings.Join(cells, strings.Repeat(" ", cellGap)))
	b.WriteString("\n")

	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, l.TotalWidth())))

	// Body
	for r, row := range p.Rows {
		b.WriteString("\n")
		isCursor := p.ShowCursor && r == p.Cursor
		style := NormalStyle
		if isCursor {
			style = SelectedStyle
			b.WriteString(SelectedStyle.Render(SymbolCursor + " "))
		} else {
			b.WriteString(strings.Repeat(" ", cursorWidth))
		}

		cells = cells[:0]
		if p.Selectable {
			box := SymbolUnchecked
			boxStyle := style
			if r < len(p.Checked) && p.Checked[r] {
				box = SymbolChecked
				boxStyle = CheckedStyle
			}
			cells = append(cells, boxStyle.Render(pad(box, l.SelectWidth)))
		}
		for i := range p.Headers {
			text := ""
			if i < len(row) {
				text = CellText(row[i])
			}
			cells = append(cells, style.Render(pad(text, l.Widths[i])))
		}
		b.WriteString(strings.Join(cells, strings.Repeat(" ", cellGap)))
	}

	return b.String()
}

// renderHeader renders one header cell with its sort indicator.
func renderHeader(h Header, width int) string {
	label := CellText(h.Title)
	style := HeaderStyle
	if h.Focused {
		style = FocusedHeaderStyle
	}

	indicator := ""
	if h.Sortable {
		switch h.Sort {
		case table.SortAscending:
			indicator = " " + SymbolAscending
		case table.SortDescending:
			indicator = " " + SymbolDescending
		}
	}

	gap := width - ansi.StringWidth(label) - ansi.StringWidth(indicator)
	return style.Render(label) + SortStyle.Render(indicator) + strings.Repeat(" ", max(0, gap))
}

// pad right-pads s to width display columns.
func pad(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// FrameBodyLine is the line the body starts on inside RenderFrame's output.
const FrameBodyLine = 2

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// FrameParams contains the parameters of the demo frame around the table.
type FrameParams struct {
	Title    string
	Subtitle string
	Body     string
	Status   string
	Help     string
	Compact  string
	Err      error
	Width    int
}

// RenderFrame renders a title line, the body and a footer.
func RenderFrame(p FrameParams) string {
	var b strings.Builder
	width := max(p.Width, MinWidth)
	if bw := lipgloss.Width(p.Body); bw > width {
		width = bw
	}

	b.WriteString(TitleStyle.Render(p.Title))
	if p.Subtitle != "" {
		b.WriteString("  " + p.Subtitle)
	}
	b.WriteString("\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, width)) + "\n")

	b.WriteString(p.Body + "\n")

	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, width)) + "\n")
	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
	}
	if p.Status != "" {
		b.WriteString(MutedStyle.Render(p.Status) + "\n")
	}
	b.WriteString(HelpStyle.Render(compactHelp(p.Help, p.Compact, p.Width)))

	return b.String()
}

// RenderHelp renders the help screen.
func RenderHelp(sections []HelpSection, width int) string {
	var b strings.Builder
	contentWidth := max(width, MinWidth)

	b.WriteString(TitleStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range sections {
		b.WriteString(HeaderStyle.Render(section.Title) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 10 chars for alignment
			b.WriteString(MutedStyle.Render("  "+pad(binding.Keys, 10)) + " " + binding.Desc + "\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return b.String()
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 80 || compact == "" {
		return full
	}
	return compact
}
