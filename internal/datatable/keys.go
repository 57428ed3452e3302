package datatable

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Shravanidhuri/scalable-project/internal/config"
)

// KeyMap defines the table's keybindings.
type KeyMap struct {
	// Rows
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Headers
	Left  key.Binding
	Right key.Binding
	Sort  key.Binding

	Select key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "sort column"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "select row"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	override(&km.Up, cfg.Up, "up")
	override(&km.Down, cfg.Down, "down")
	override(&km.Home, cfg.Home, "first")
	override(&km.End, cfg.End, "last")
	override(&km.Left, cfg.Left, "previous column")
	override(&km.Right, cfg.Right, "next column")
	override(&km.Sort, cfg.Sort, "sort column")
	override(&km.Select, cfg.Select, "select row")

	return km
}

// override replaces b when keys is set.
func override(b *key.Binding, keys, desc string) {
	parsed := config.ParseKeys(keys)
	if len(parsed) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(parsed...),
		key.WithHelp(keys, desc),
	)
}
