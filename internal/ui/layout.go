package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/Shravanidhuri/scalable-project/internal/table"
)

// SelectTitle is the header of the leading checkbox column.
const SelectTitle = "Select"

// Line positions inside the rendered table.
const (
	HeaderLine   = 0
	FirstRowLine = 2
)

const (
	cursorWidth    = 2
	cellGap        = 2
	indicatorWidth = 2 // " ▲"
)

// CellText returns s as a single display line. Escape sequences are
// dropped, line breaks and tabs become spaces and other control characters
// are removed, so every row occupies exactly one terminal line.
func CellText(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n', r == '\r', r == '\t', r == '\v', r == '\f':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Header describes one column header.
type Header struct {
	Title    string
	Sortable bool
	Sort     table.SortState
	Focused  bool
}

// Layout holds the column widths of a populated table.
type Layout struct {
	Selectable  bool
	SelectWidth int
	Widths      []int
}

// ComputeLayout sizes every column to its widest header or cell.
// Sortable headers reserve room for the sort indicator so the layout
// does not shift when the sort changes.
func ComputeLayout(headers []Header, rows [][]string, selectable bool) Layout {
	l := Layout{Selectable: selectable, Widths: make([]int, len(headers))}
	if selectable {
		l.SelectWidth = max(ansi.StringWidth(SelectTitle), ansi.StringWidth(SymbolUnchecked))
	}

	for i, h := range headers {
		w := ansi.StringWidth(CellText(h.Title))
		if h.Sortable {
			w += indicatorWidth
		}
		l.Widths[i] = w
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(l.Widths) {
				break
			}
			if w := ansi.StringWidth(CellText(cell)); w > l.Widths[i] {
				l.Widths[i] = w
			}
		}
	}
	return l
}

// TotalWidth returns the width of a rendered line.
func (l Layout) TotalWidth() int {
	w := cursorWidth
	if l.Selectable {
		w += l.SelectWidth
		if len(l.Widths) > 0 {
			w += cellGap
		}
	}
	for i, cw := range l.Widths {
		if i > 0 {
			w += cellGap
		}
		w += cw
	}
	return w
}

// HitKind classifies what a mouse position points at.
type HitKind int

const (
	HitNone HitKind = iota
	HitHeader
	HitSelectHeader
	HitCheckbox
	HitCell
)

// Hit is the result of HitTest. Row is an index into the displayed rows and
// Column an index into the headers; either is -1 when not applicable.
type Hit struct {
	Kind   HitKind
	Row    int
	Column int
}

// HitTest maps a position relative to the table's top-left corner onto a
// header or cell of a table displaying rowCount rows.
func (l Layout) HitTest(x, y, rowCount int) Hit {
	miss := Hit{Kind: HitNone, Row: -1, Column: -1}

	row := -1
	switch {
	case y == HeaderLine:
	case y >= FirstRowLine && y-FirstRowLine < rowCount:
		row = y - FirstRowLine
	default:
		return miss
	}

	pos := cursorWidth
	if l.Selectable {
		if x >= pos && x < pos+l.SelectWidth {
			if row < 0 {
				return Hit{Kind: HitSelectHeader, Row: -1, Column: -1}
			}
			return Hit{Kind: HitCheckbox, Row: row, Column: -1}
		}
		pos += l.SelectWidth + cellGap
	}

	for i, w := range l.Widths {
		if x >= pos && x < pos+w {
			if row < 0 {
				return Hit{Kind: HitHeader, Row: -1, Column: i}
			}
			return Hit{Kind: HitCell, Row: row, Column: i}
		}
		pos += w + cellGap
	}

	if row >= 0 {
		// Cursor gutter and gaps still belong to the row.
		return Hit{Kind: HitCell, Row: row, Column: -1}
	}
	return miss
}
