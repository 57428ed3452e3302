package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Shravanidhuri/scalable-project/internal/config"
)

// KeyMap defines the demo's own keybindings. Table keys live in
// datatable.KeyMap.
type KeyMap struct {
	Filter    key.Binding
	NextStory key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		NextStory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next story"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if keys := config.ParseKeys(cfg.Filter); len(keys) > 0 {
		km.Filter = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.Filter, "filter"),
		)
	}
	if keys := config.ParseKeys(cfg.NextStory); len(keys) > 0 {
		km.NextStory = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.NextStory, "next story"),
		)
	}
	if keys := config.ParseKeys(cfg.Help); len(keys) > 0 {
		km.Help = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if keys := config.ParseKeys(cfg.Quit); len(keys) > 0 {
		km.Quit = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}
