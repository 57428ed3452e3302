package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/Shravanidhuri/scalable-project/internal/config"
	"github.com/Shravanidhuri/scalable-project/internal/datatable"
	"github.com/Shravanidhuri/scalable-project/internal/debug"
	"github.com/Shravanidhuri/scalable-project/internal/stories"
	"github.com/Shravanidhuri/scalable-project/internal/table"
	"github.com/Shravanidhuri/scalable-project/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateTable State = iota
	StateFilter
	StateHelp
)

// selectionLog records what the table reports through its selection
// callback. It is shared by pointer so the record survives model copies.
type selectionLog struct {
	calls int
	last  []*stories.User
}

func (l *selectionLog) record(selected []*stories.User) {
	l.calls++
	l.last = selected
	debug.Log("onRowSelect #%d: %s", l.calls, userNames(selected))
}

// Model is the main application model.
type Model struct {
	// Configuration
	config   *config.Config
	dataPath string

	// Data
	users  []*stories.User
	loaded bool

	// Table
	story      stories.Story
	table      datatable.Model[stories.User, int]
	tableKeys  datatable.KeyMap
	sorter     *table.Sorter
	selections *selectionLog

	// State
	state State
	err   error

	// Filter
	filterInput textinput.Model

	// UI
	width  int
	height int
	keys   KeyMap

	shouldQuit bool
}

// New creates a new Model showing story. When dataPath is set the user rows
// are read from that fixture file instead of the built-in ones.
func New(cfg *config.Config, story stories.Story, dataPath string) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	m := Model{
		config:      cfg,
		dataPath:    dataPath,
		story:       story,
		tableKeys:   datatable.KeyMapFromConfig(&cfg.Keys),
		sorter:      table.NewSorter(cfg.LocaleTag()),
		filterInput: filterInput,
		state:       StateTable,
		keys:        KeyMapFromConfig(&cfg.Keys),
	}
	if dataPath == "" {
		m.users = stories.Users()
		m.loaded = true
	}
	m.mount()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.table.Init()}
	if !m.loaded {
		cmds = append(cmds, loadUsers(m.dataPath))
	}
	return tea.Batch(cmds...)
}

// mount replaces the table with a fresh one configured for the current
// story. Sort and selection start over.
func (m *Model) mount() tea.Cmd {
	t := datatable.New(stories.Columns(), stories.UserID)
	t.SetKeyMap(m.tableKeys)
	t.SetSorter(m.sorter)
	t.SetShowCursor(m.config.UI.ShowCursor)
	t.SetMouse(m.config.UI.Mouse)
	t.SetSelectable(m.story.Selectable)

	m.selections = &selectionLog{}
	t.SetOnRowSelect(m.selections.record)

	m.table = t
	m.filterInput.Reset()
	debug.Log("mounted story %s", m.story.Name)

	switch {
	case m.story.Loading:
		return m.table.SetLoading(true)
	case m.story.Empty:
		return nil
	case !m.loaded:
		// Rows arrive with RowsLoadedMsg
		return m.table.SetLoading(true)
	}
	m.applyFilter()
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) && m.state == StateTable {
			m.shouldQuit = true
			return m, tea.Quit
		}

		// Delegate to state-specific handler
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.state != StateTable {
			return m, nil
		}
		// The table starts below the title and divider
		msg.Y -= ui.FrameBodyLine
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case RowsLoadedMsg:
		m.loaded = true
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.users = msg.Users
		}
		if m.story.HasRows() {
			m.table.SetLoading(false)
			m.applyFilter()
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateTable:
		return m.handleTableKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleTableKeys handles key presses in the table view. Keys the demo does
// not bind go to the table.
func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		if m.table.Phase() == table.PhaseLoading || !m.story.HasRows() {
			return m, nil
		}
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.NextStory):
		m.story = stories.Next(m.story.Name)
		m.err = nil
		return m, m.mount()
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateTable
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateTable
		m.filterInput.Reset()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.state = StateTable
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// userSource implements fuzzy.Source for user fuzzy matching.
type userSource []*stories.User

func (u userSource) String(i int) string {
	// Match against both name and email
	return u[i].Name + " " + u[i].Email
}

func (u userSource) Len() int {
	return len(u)
}

// applyFilter hands the users matching the filter input to the table.
// The table keeps its own sort; fuzzy ranking only decides membership.
func (m *Model) applyFilter() {
	if !m.story.HasRows() {
		return
	}

	filter := m.filterInput.Value()
	if filter == "" {
		m.table.SetRows(m.users)
		return
	}

	matches := fuzzy.FindFrom(filter, userSource(m.users))
	keep := make([]bool, len(m.users))
	for _, match := range matches {
		keep[match.Index] = true
	}

	// Preserve the source order so an unsorted table stays in data order
	filtered := make([]*stories.User, 0, len(matches))
	for i, u := range m.users {
		if keep[i] {
			filtered = append(filtered, u)
		}
	}
	m.table.SetRows(filtered)
}

// View renders the UI.
func (m Model) View() string {
	if m.state == StateHelp {
		return ui.RenderHelp(m.helpSections(), m.width)
	}

	names := stories.Names()
	position := 0
	for i, n := range names {
		if n == m.story.Name {
			position = i + 1
		}
	}

	return ui.RenderFrame(ui.FrameParams{
		Title:    "DataTable",
		Subtitle: fmt.Sprintf("%s (%d/%d)", m.story.Title, position, len(names)),
		Body:     m.table.View(),
		Status:   m.status(),
		Help:     "tab next story  / filter  ←/→ column  s sort  space select  ? help  q quit",
		Compact:  "tab story  s sort  ? help  q quit",
		Err:      m.err,
		Width:    m.width,
	})
}

// status describes the rows, the sort and the last reported selection.
func (m Model) status() string {
	if m.state == StateFilter {
		return "Filter: " + m.filterInput.View()
	}

	var parts []string
	if m.table.Phase() == table.PhasePopulated {
		rows := fmt.Sprintf("%d rows", len(m.table.Rows()))
		if f := m.filterInput.Value(); f != "" {
			rows += fmt.Sprintf(" matching %q", f)
		}
		parts = append(parts, rows)
	}
	if d := m.table.Directive(); d.Active() {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", d.Key, d.Direction))
	}
	if m.selections.calls > 0 {
		parts = append(parts, fmt.Sprintf("onRowSelect(%s)", userNames(m.selections.last)))
	}
	return strings.Join(parts, " · ")
}

// helpSections lists every binding for the help screen.
func (m Model) helpSections() []ui.HelpSection {
	return []ui.HelpSection{
		{
			Title: "Table",
			Bindings: helpBindings(
				m.tableKeys.Up, m.tableKeys.Down, m.tableKeys.Home, m.tableKeys.End,
				m.tableKeys.Left, m.tableKeys.Right, m.tableKeys.Sort, m.tableKeys.Select,
			),
		},
		{
			Title:    "Demo",
			Bindings: helpBindings(m.keys.NextStory, m.keys.Filter, m.keys.Help, m.keys.Quit),
		},
		{
			Title: "Mouse",
			Bindings: []ui.HelpBinding{
				{Keys: "header", Desc: "sort column"},
				{Keys: "checkbox", Desc: "select row"},
			},
		},
	}
}

func helpBindings(bindings ...key.Binding) []ui.HelpBinding {
	out := make([]ui.HelpBinding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
	}
	return out
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Story returns the story being shown.
func (m Model) Story() stories.Story {
	return m.story
}

// Selected returns the rows selected in the current story.
func (m Model) Selected() []*stories.User {
	return m.table.Selected()
}

// Commands

func loadUsers(path string) tea.Cmd {
	return func() tea.Msg {
		users, err := stories.LoadUsers(path)
		return RowsLoadedMsg{Users: users, Err: err}
	}
}

// Helper functions

func userNames(users []*stories.User) string {
	if len(users) == 0 {
		return "none"
	}
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return strings.Join(names, ", ")
}
