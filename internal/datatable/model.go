package datatable

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shravanidhuri/scalable-project/internal/debug"
	"github.com/Shravanidhuri/scalable-project/internal/table"
	"github.com/Shravanidhuri/scalable-project/internal/ui"
)

// Model is a table of rows of type R whose rows are identified by keys of
// type K.
type Model[R any, K comparable] struct {
	// Inputs
	columns     []table.Column[R]
	identify    func(row *R) K
	rows        []*R
	loading     bool
	selectable  bool
	onRowSelect func(selected []*R)

	// Local state
	state   table.State[R]
	ordered []*R // rows in display order, rebuilt when rows or the sort change
	sorter  *table.Sorter

	// UI
	cursor     int
	colCursor  int
	showCursor bool
	mouse      bool
	keys       KeyMap
	spinner    spinner.Model
}

// New creates a table showing columns. identify returns the unique key of a
// row; the cursor uses it to stay on the same row when the order changes.
func New[R any, K comparable](columns []table.Column[R], identify func(row *R) K) Model[R, K] {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = ui.SortStyle

	return Model[R, K]{
		columns:    columns,
		identify:   identify,
		sorter:     table.DefaultSorter(),
		showCursor: true,
		mouse:      true,
		keys:       DefaultKeyMap(),
		spinner:    s,
	}
}

// Init starts the spinner when the table is created in the loading state.
func (m Model[R, K]) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

// Update handles key presses, mouse clicks and spinner ticks.
func (m Model[R, K]) Update(msg tea.Msg) (Model[R, K], tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Not forwarding the tick stops the spinner.
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.Phase() != table.PhasePopulated {
			return m, nil
		}
		m.handleKey(msg)
		return m, nil

	case tea.MouseMsg:
		if !m.mouse || m.Phase() != table.PhasePopulated {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

// handleKey handles key presses on a populated table.
func (m *Model[R, K]) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ordered)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = max(0, len(m.ordered)-1)
	case key.Matches(msg, m.keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.colCursor < len(m.columns)-1 {
			m.colCursor++
		}
	case key.Matches(msg, m.keys.Sort):
		if m.colCursor < len(m.columns) {
			m.ToggleSort(m.columns[m.colCursor].Key)
		}
	case key.Matches(msg, m.keys.Select):
		if row, ok := m.CursorRow(); ok && m.selectable {
			m.ToggleSelect(row)
		}
	}
}

// handleMouse handles left clicks. Coordinates are relative to the table's
// top-left corner.
func (m *Model[R, K]) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	layout := ui.ComputeLayout(m.headers(), m.cells(), m.selectable)
	hit := layout.HitTest(msg.X, msg.Y, len(m.ordered))

	switch hit.Kind {
	case ui.HitHeader:
		if m.columns[hit.Column].Sortable {
			m.colCursor = hit.Column
			m.ToggleSort(m.columns[hit.Column].Key)
		}
	case ui.HitCheckbox:
		m.cursor = hit.Row
		if m.selectable {
			m.ToggleSelect(m.ordered[hit.Row])
		}
	case ui.HitCell:
		m.cursor = hit.Row
		if hit.Column >= 0 {
			m.colCursor = hit.Column
		}
	}
}

// ToggleSort activates the sortable column columnKey, flipping the direction
// when it is already active. It reports whether columnKey named a sortable
// column.
func (m *Model[R, K]) ToggleSort(columnKey string) bool {
	col, ok := table.FindColumn(m.columns, columnKey)
	if !ok || !col.Sortable {
		return false
	}

	d := m.state.ToggleSort(columnKey)
	debug.Log("sort %s %s", d.Key, d.Direction)
	m.reorder()
	return true
}

// ToggleSelect selects row, or deselects it when already selected, and
// reports the new selection to the OnRowSelect callback. Rows are compared by
// pointer. The returned slice belongs to the caller.
func (m *Model[R, K]) ToggleSelect(row *R) []*R {
	sel := slices.Clone(m.state.ToggleSelect(row))
	debug.Log("selection changed: %d rows", len(sel))
	if m.onRowSelect != nil {
		m.onRowSelect(slices.Clone(sel))
	}
	return sel
}

// reorder rebuilds the display order and keeps the cursor on the same row.
func (m *Model[R, K]) reorder() {
	var (
		id      K
		hasID   bool
		current *R
	)
	if row, ok := m.CursorRow(); ok {
		current = row
		if m.identify != nil {
			id, hasID = m.identify(row), true
		}
	}

	defer debug.Timed("derive order")()
	m.ordered = table.DeriveOrder(m.sorter, m.rows, m.columns, m.state.Directive())

	if current != nil {
		for i, row := range m.ordered {
			if (hasID && m.identify(row) == id) || (!hasID && row == current) {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Model[R, K]) clampCursor() {
	if m.cursor >= len(m.ordered) {
		m.cursor = len(m.ordered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.colCursor >= len(m.columns) {
		m.colCursor = len(m.columns) - 1
	}
	if m.colCursor < 0 {
		m.colCursor = 0
	}
}

// View renders the table.
func (m Model[R, K]) View() string {
	p := ui.RenderParams{
		Phase:        m.Phase(),
		Selectable:   m.selectable,
		Cursor:       m.cursor,
		ShowCursor:   m.showCursor,
		SpinnerFrame: m.spinner.View(),
	}
	if p.Phase == table.PhasePopulated {
		p.Headers = m.headers()
		p.Rows = m.cells()
		if m.selectable {
			p.Checked = make([]bool, len(m.ordered))
			for i, row := range m.ordered {
				p.Checked[i] = m.state.IsSelected(row)
			}
		}
	}
	return ui.Render(p)
}

// headers describes the column headers for rendering.
func (m Model[R, K]) headers() []ui.Header {
	d := m.state.Directive()
	out := make([]ui.Header, len(m.columns))
	for i, c := range m.columns {
		out[i] = ui.Header{
			Title:    c.Title,
			Sortable: c.Sortable,
			Sort:     d.StateOf(c.Key),
			Focused:  m.showCursor && i == m.colCursor,
		}
	}
	return out
}

// cells returns the display text of every row in display order.
func (m Model[R, K]) cells() [][]string {
	out := make([][]string, len(m.ordered))
	for i, row := range m.ordered {
		cells := make([]string, len(m.columns))
		for j, c := range m.columns {
			cells[j] = table.Stringify(c.ValueOf(row))
		}
		out[i] = cells
	}
	return out
}

// SetRows replaces the rows. The table keeps its sort and selection.
func (m *Model[R, K]) SetRows(rows []*R) {
	m.rows = rows
	m.reorder()
}

// SetColumns replaces the column definitions.
func (m *Model[R, K]) SetColumns(columns []table.Column[R]) {
	m.columns = columns
	m.reorder()
}

// SetLoading sets the loading flag. It returns the command that starts the
// spinner when loading begins.
func (m *Model[R, K]) SetLoading(loading bool) tea.Cmd {
	start := loading && !m.loading
	m.loading = loading
	if start {
		return m.spinner.Tick
	}
	return nil
}

// SetSelectable shows or hides the selection checkboxes.
func (m *Model[R, K]) SetSelectable(selectable bool) {
	m.selectable = selectable
}

// SetOnRowSelect registers the callback receiving the full selection after
// every toggle. A nil callback is allowed.
func (m *Model[R, K]) SetOnRowSelect(fn func(selected []*R)) {
	m.onRowSelect = fn
}

// SetKeyMap replaces the key bindings.
func (m *Model[R, K]) SetKeyMap(km KeyMap) {
	m.keys = km
}

// SetSorter replaces the value comparison, e.g. for another locale.
func (m *Model[R, K]) SetSorter(s *table.Sorter) {
	m.sorter = s
	m.reorder()
}

// SetShowCursor toggles the row and header highlight.
func (m *Model[R, K]) SetShowCursor(show bool) {
	m.showCursor = show
}

// SetMouse enables or disables mouse handling.
func (m *Model[R, K]) SetMouse(enabled bool) {
	m.mouse = enabled
}

// Phase returns the visual state the table is in.
func (m Model[R, K]) Phase() table.Phase {
	return table.Decide(m.loading, len(m.rows))
}

// Rows returns the rows as supplied.
func (m Model[R, K]) Rows() []*R {
	return m.rows
}

// Ordered returns the rows in display order.
func (m Model[R, K]) Ordered() []*R {
	return m.ordered
}

// Selected returns the selected rows in selection order.
func (m Model[R, K]) Selected() []*R {
	return m.state.Selected()
}

// IsSelected reports whether row is selected.
func (m Model[R, K]) IsSelected(row *R) bool {
	return m.state.IsSelected(row)
}

// Directive returns the current sort directive.
func (m Model[R, K]) Directive() table.SortDirective {
	return m.state.Directive()
}

// SortState returns the sort state exposed by the header of columnKey.
func (m Model[R, K]) SortState(columnKey string) table.SortState {
	return m.state.SortStateOf(columnKey)
}

// Cursor returns the index of the cursor row in display order.
func (m Model[R, K]) Cursor() int {
	return m.cursor
}

// CursorRow returns the row under the cursor.
func (m Model[R, K]) CursorRow() (*R, bool) {
	if m.cursor < 0 || m.cursor >= len(m.ordered) {
		return nil, false
	}
	return m.ordered[m.cursor], true
}

// FocusedColumn returns the key of the header under keyboard focus.
func (m Model[R, K]) FocusedColumn() string {
	if m.colCursor < 0 || m.colCursor >= len(m.columns) {
		return ""
	}
	return m.columns[m.colCursor].Key
}

// Loading reports whether the table is in the loading state.
func (m Model[R, K]) Loading() bool {
	return m.loading
}

// Selectable reports whether selection checkboxes are shown.
func (m Model[R, K]) Selectable() bool {
	return m.selectable
}
