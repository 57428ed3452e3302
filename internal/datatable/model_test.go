package datatable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Shravanidhuri/scalable-project/internal/config"
	"github.com/Shravanidhuri/scalable-project/internal/table"
	"github.com/Shravanidhuri/scalable-project/internal/ui"
)

type user struct {
	ID    int
	Name  string
	Age   int
	Email string
}

func userID(u *user) int { return u.ID }

func testColumns() []table.Column[user] {
	return []table.Column[user]{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
		{Key: "email", Title: "Email", DataIndex: "email"},
	}
}

func testUsers() []*user {
	return []*user{
		{ID: 1, Name: "Alice", Age: 25, Email: "alice@mail.com"},
		{ID: 2, Name: "Bob", Age: 30, Email: "bob@mail.com"},
		{ID: 3, Name: "Charlie", Age: 22, Email: "charlie@mail.com"},
	}
}

func newTestModel(rows []*user) Model[user, int] {
	m := New(testColumns(), userID)
	m.SetRows(rows)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func orderedNames(m Model[user, int]) []string {
	var out []string
	for _, u := range m.Ordered() {
		out = append(out, u.Name)
	}
	return out
}

func TestNewModel(t *testing.T) {
	m := New(testColumns(), userID)

	if m.Phase() != table.PhaseEmpty {
		t.Errorf("Expected empty phase, got %v", m.Phase())
	}
	if m.Directive().Active() {
		t.Error("Expected no sort initially")
	}
	if len(m.Selected()) != 0 {
		t.Error("Expected empty selection initially")
	}
	if m.Selectable() || m.Loading() {
		t.Error("Expected selectable and loading to default to false")
	}
}

func TestRendersData(t *testing.T) {
	m := newTestModel([]*user{{ID: 1, Name: "Alice"}})

	if !strings.Contains(ansi.Strip(m.View()), "Alice") {
		t.Errorf("Expected Alice in view:\n%s", m.View())
	}
}

func TestEmptyState(t *testing.T) {
	m := newTestModel(nil)

	out := ansi.Strip(m.View())
	if out != ui.EmptyText {
		t.Errorf("Expected exactly %q, got %q", ui.EmptyText, out)
	}
	if strings.Contains(out, "Name") {
		t.Error("Empty state must not render the table")
	}
}

func TestLoadingState(t *testing.T) {
	for _, rows := range [][]*user{nil, testUsers()} {
		m := newTestModel(rows)
		if cmd := m.SetLoading(true); cmd == nil {
			t.Error("Expected SetLoading(true) to start the spinner")
		}

		out := ansi.Strip(m.View())
		if m.Phase() != table.PhaseLoading {
			t.Errorf("Expected loading phase, got %v", m.Phase())
		}
		if strings.Contains(out, ui.EmptyText) {
			t.Error("Loading view must not contain the empty placeholder")
		}
		if strings.Contains(out, "Name") || strings.Contains(out, "Alice") {
			t.Error("Loading view must not contain the table")
		}
		if !strings.Contains(out, ui.LoadingText) {
			t.Errorf("Expected loading indicator, got %q", out)
		}
	}
}

func TestLoadingIgnoresInput(t *testing.T) {
	m := newTestModel(testUsers())
	m.SetLoading(true)

	m, _ = m.Update(runes("s"))
	if m.Directive().Active() {
		t.Error("Sort keys must be ignored while loading")
	}
}

func TestSpinnerStopsWhenLoaded(t *testing.T) {
	m := newTestModel(nil)
	m.SetLoading(true)

	m, cmd := m.Update(m.spinner.Tick())
	if cmd == nil {
		t.Error("Expected the spinner to keep ticking while loading")
	}

	m.SetLoading(false)
	if cmd := m.SetLoading(false); cmd != nil {
		t.Error("Expected no command when loading stays false")
	}
	_, cmd = m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Error("Expected the spinner to stop once loaded")
	}
}

func TestHeaderClickSortsSingleRow(t *testing.T) {
	alice := &user{ID: 1, Name: "Alice", Age: 25}
	m := New([]table.Column[user]{{Key: "age", Title: "Age", DataIndex: "age", Sortable: true}}, userID)
	m.SetRows([]*user{alice})

	// The header cell starts after the two-column cursor gutter.
	m, _ = m.Update(click(2, ui.HeaderLine))
	if got := m.SortState("age"); got != table.SortAscending {
		t.Errorf("Expected ascending after first click, got %v", got)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Age "+ui.SymbolAscending) {
		t.Errorf("Expected ascending indicator:\n%s", m.View())
	}

	m, _ = m.Update(click(2, ui.HeaderLine))
	if got := m.SortState("age"); got != table.SortDescending {
		t.Errorf("Expected descending after second click, got %v", got)
	}
	if len(m.Ordered()) != 1 || m.Ordered()[0] != alice {
		t.Error("Single row must keep its position")
	}
}

func TestSortByKeyboard(t *testing.T) {
	m := newTestModel(testUsers())

	// Focus starts on Name.
	m, _ = m.Update(runes("s"))
	if got := strings.Join(orderedNames(m), ","); got != "Alice,Bob,Charlie" {
		t.Errorf("name ascending = %s", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.FocusedColumn() != "age" {
		t.Fatalf("Expected focus on age, got %q", m.FocusedColumn())
	}
	m, _ = m.Update(runes("s"))
	if got := strings.Join(orderedNames(m), ","); got != "Charlie,Alice,Bob" {
		t.Errorf("age ascending = %s", got)
	}
	if m.SortState("name") != table.SortNone {
		t.Error("Expected name header to reset to none")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := strings.Join(orderedNames(m), ","); got != "Bob,Alice,Charlie" {
		t.Errorf("age descending = %s", got)
	}
}

func TestNonSortableColumnIgnored(t *testing.T) {
	m := newTestModel(testUsers())

	if m.ToggleSort("email") {
		t.Error("Expected ToggleSort on a non-sortable column to be rejected")
	}
	if m.ToggleSort("missing") {
		t.Error("Expected ToggleSort on an unknown column to be rejected")
	}

	// Email header: gutter(2) + Name(7, "Charlie") + gap(2) + Age(5) + gap(2)
	m, _ = m.Update(click(18, ui.HeaderLine))
	if m.Directive().Active() {
		t.Errorf("Clicking a non-sortable header must not sort, got %+v", m.Directive())
	}
}

func TestSortDoesNotMutateRows(t *testing.T) {
	rows := testUsers()
	m := newTestModel(rows)

	m.ToggleSort("age")

	if rows[0].Name != "Alice" || rows[1].Name != "Bob" || rows[2].Name != "Charlie" {
		t.Error("Sorting must not reorder the caller's slice")
	}
	if &m.Rows()[0] != &rows[0] {
		t.Error("Rows() must return the caller's slice")
	}
}

func TestCursorFollowsRowAcrossSort(t *testing.T) {
	m := newTestModel(testUsers())

	// Move to Bob.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if row, _ := m.CursorRow(); row.Name != "Bob" {
		t.Fatalf("Expected cursor on Bob, got %s", row.Name)
	}

	m.ToggleSort("age")
	m.ToggleSort("age") // descending: Bob first
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor to follow Bob to index 0, got %d", m.Cursor())
	}
	if row, _ := m.CursorRow(); row.Name != "Bob" {
		t.Errorf("Expected cursor on Bob, got %s", row.Name)
	}
}

func TestCursorNavigation(t *testing.T) {
	m := newTestModel(testUsers())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor 0 (clamped), got %d", m.Cursor())
	}

	m, _ = m.Update(runes("G"))
	if m.Cursor() != 2 {
		t.Errorf("Expected cursor 2 after 'G', got %d", m.Cursor())
	}

	m, _ = m.Update(runes("j"))
	if m.Cursor() != 2 {
		t.Errorf("Expected cursor 2 (clamped), got %d", m.Cursor())
	}

	m, _ = m.Update(runes("g"))
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor 0 after 'g', got %d", m.Cursor())
	}
}

func TestSelectionCallback(t *testing.T) {
	alice := &user{ID: 1, Name: "Alice", Age: 25}
	m := newTestModel([]*user{alice})
	m.SetSelectable(true)

	var calls [][]*user
	m.SetOnRowSelect(func(sel []*user) { calls = append(calls, sel) })

	// Checkbox column starts after the cursor gutter.
	m, _ = m.Update(click(2, ui.FirstRowLine))
	if len(calls) != 1 || len(calls[0]) != 1 || calls[0][0] != alice {
		t.Fatalf("Expected one call with [alice], got %v", calls)
	}
	if !strings.Contains(ansi.Strip(m.View()), ui.SymbolChecked) {
		t.Error("Expected a checked box after selecting")
	}

	m, _ = m.Update(click(2, ui.FirstRowLine))
	if len(calls) != 2 || len(calls[1]) != 0 {
		t.Fatalf("Expected a second call with an empty selection, got %v", calls)
	}
	if len(m.Selected()) != 0 {
		t.Error("Expected empty selection after second toggle")
	}
}

func TestClickBelowMultilineCell(t *testing.T) {
	ann := &user{ID: 1, Name: "Ann\nMarie", Age: 25}
	bob := &user{ID: 2, Name: "Bob", Age: 30}
	m := newTestModel([]*user{ann, bob})
	m.SetSelectable(true)

	m, _ = m.Update(click(3, ui.FirstRowLine+1))

	sel := m.Selected()
	if len(sel) != 1 || sel[0] != bob {
		t.Fatalf("Expected Bob selected, got %v", sel)
	}
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if !strings.Contains(lines[ui.FirstRowLine+1], ui.SymbolChecked) {
		t.Errorf("Expected Bob's line to show the checked box, got %q", lines[ui.FirstRowLine+1])
	}
}

func TestSelectionByKeyboard(t *testing.T) {
	rows := testUsers()
	m := newTestModel(rows)
	m.SetSelectable(true)

	m, _ = m.Update(runes("x"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(runes("x"))

	sel := m.Selected()
	if len(sel) != 2 || sel[0] != rows[0] || sel[1] != rows[2] {
		t.Errorf("Expected [Alice Charlie] in selection order, got %v", sel)
	}
}

func TestSelectionIgnoredWhenNotSelectable(t *testing.T) {
	m := newTestModel(testUsers())
	called := false
	m.SetOnRowSelect(func([]*user) { called = true })

	m, _ = m.Update(runes("x"))
	m, _ = m.Update(click(2, ui.FirstRowLine))

	if called || len(m.Selected()) != 0 {
		t.Error("Selection must not change when the table is not selectable")
	}
	if strings.Contains(ansi.Strip(m.View()), ui.SelectTitle) {
		t.Error("Select column must be hidden when not selectable")
	}
}

func TestSelectionWithoutCallback(t *testing.T) {
	m := newTestModel(testUsers())
	m.SetSelectable(true)

	sel := m.ToggleSelect(m.Rows()[1])
	if len(sel) != 1 {
		t.Errorf("Expected one selected row, got %d", len(sel))
	}
}

func TestSelectionSurvivesSortAndNewRows(t *testing.T) {
	rows := testUsers()
	m := newTestModel(rows)
	m.SetSelectable(true)
	m.ToggleSelect(rows[1])

	m.ToggleSort("age")
	if !m.IsSelected(rows[1]) {
		t.Error("Selection must survive sorting")
	}

	// Same ids, different rows: identity decides membership.
	m.SetRows(testUsers())
	for _, row := range m.Rows() {
		if m.IsSelected(row) {
			t.Errorf("Row %d must not be selected by id", row.ID)
		}
	}
}

func TestClickMovesCursor(t *testing.T) {
	m := newTestModel(testUsers())

	m, _ = m.Update(click(4, ui.FirstRowLine+2))
	if m.Cursor() != 2 {
		t.Errorf("Expected cursor 2 after clicking the third row, got %d", m.Cursor())
	}

	m.SetMouse(false)
	m, _ = m.Update(click(4, ui.FirstRowLine))
	if m.Cursor() != 2 {
		t.Error("Mouse clicks must be ignored when mouse is disabled")
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	km := KeyMapFromConfig(&config.KeysConfig{
		Sort:   "o",
		Select: " ,v",
	})

	if !key.Matches(runes("o"), km.Sort) {
		t.Error("Expected 'o' to match Sort binding")
	}
	if key.Matches(runes("s"), km.Sort) {
		t.Error("Expected 's' to no longer match Sort binding")
	}
	if !key.Matches(runes("v"), km.Select) {
		t.Error("Expected 'v' to match Select binding")
	}
	// Unset bindings keep their defaults.
	if !key.Matches(runes("j"), km.Down) {
		t.Error("Expected default Down binding")
	}
}
