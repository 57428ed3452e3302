// Package config handles datatable configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/Shravanidhuri/scalable-project/internal/stories"
)

// Config represents datatable configuration.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Keys  KeysConfig  `toml:"keys"`
	Debug DebugConfig `toml:"debug"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// BCP 47 tag used to collate text columns (e.g. "en", "sv", "de")
	Locale string `toml:"locale"`

	// Story shown at startup: "default", "selectable", "loading", "empty"
	DefaultStory string `toml:"default_story"`

	// Highlight the row under the keyboard cursor
	ShowCursor bool `toml:"show_cursor"`

	// Enable mouse clicks on headers and checkboxes
	Mouse bool `toml:"mouse"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Home      string `toml:"home"`
	End       string `toml:"end"`
	Left      string `toml:"left"`
	Right     string `toml:"right"`
	Sort      string `toml:"sort"`
	Select    string `toml:"select"`
	Filter    string `toml:"filter"`
	NextStory string `toml:"next_story"`
	Help      string `toml:"help"`
	Quit      string `toml:"quit"`
}

// DebugConfig contains debug logging settings.
type DebugConfig struct {
	// Write a debug log to this file (empty = disabled unless --debug)
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Locale:       "en",
			DefaultStory: "default",
			ShowCursor:   true,
			Mouse:        true,
		},
		Keys: KeysConfig{
			Up:        "up,k",
			Down:      "down,j",
			Home:      "home,g",
			End:       "end,G",
			Left:      "left,h",
			Right:     "right,l",
			Sort:      "s,enter",
			Select:    " ,x",
			Filter:    "/",
			NextStory: "tab",
			Help:      "?",
			Quit:      "q,ctrl+c",
		},
	}
}

// LocaleTag returns the parsed collation locale, falling back to English.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/datatable/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "datatable", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "datatable", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "datatable", "config.toml")
	}
	return filepath.Join(configDir, "datatable", "config.toml")
}

// DefaultLogPath returns where --debug writes its log.
func DefaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "datatable", "debug.log")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// go-toml/v2 only overwrites fields present in the file,
	// so unspecified fields keep their defaults.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// CreateDefaultConfigFile writes a commented default config file to path.
func CreateDefaultConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# datatable configuration\n\n")

	b.WriteString("[ui]\n")
	b.WriteString("# Locale used to order text columns (BCP 47 tag)\n")
	fmt.Fprintf(&b, "locale = %q\n", cfg.UI.Locale)
	fmt.Fprintf(&b, "# Story shown at startup: %s\n", strings.Join(stories.Names(), ", "))
	fmt.Fprintf(&b, "default_story = %q\n", cfg.UI.DefaultStory)
	b.WriteString("# Highlight the row under the keyboard cursor\n")
	fmt.Fprintf(&b, "show_cursor = %v\n", cfg.UI.ShowCursor)
	b.WriteString("# Click headers to sort and checkboxes to select\n")
	fmt.Fprintf(&b, "mouse = %v\n\n", cfg.UI.Mouse)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# home = %q\n", cfg.Keys.Home)
	fmt.Fprintf(&b, "# end = %q\n", cfg.Keys.End)
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# sort = %q\n", cfg.Keys.Sort)
	fmt.Fprintf(&b, "# select = %q\n", cfg.Keys.Select)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# next_story = %q\n", cfg.Keys.NextStory)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("[debug]\n")
	b.WriteString("# Write a debug log to this file\n")
	b.WriteString("# log_file = \"/tmp/datatable.log\"\n")

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.UI.Locale != "" {
		if _, err := language.Parse(c.UI.Locale); err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid value for ui.locale: %s (expected a BCP 47 tag such as en or sv)", c.UI.Locale))
		}
	}

	if c.UI.DefaultStory != "" {
		if _, err := stories.Lookup(c.UI.DefaultStory); err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid value for ui.default_story: %s (expected %s)", c.UI.DefaultStory, strings.Join(stories.Names(), ", ")))
		}
	}

	// Two actions on the same key make one of them unreachable.
	seen := make(map[string]string)
	for _, kb := range []struct{ name, keys string }{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"home", c.Keys.Home},
		{"end", c.Keys.End},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"sort", c.Keys.Sort},
		{"select", c.Keys.Select},
		{"filter", c.Keys.Filter},
		{"next_story", c.Keys.NextStory},
		{"help", c.Keys.Help},
		{"quit", c.Keys.Quit},
	} {
		for _, k := range ParseKeys(kb.keys) {
			if prev, ok := seen[k]; ok && prev != kb.name {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both keys.%s and keys.%s", k, prev, kb.name))
				continue
			}
			seen[k] = kb.name
		}
	}

	return warnings
}

// ParseKeys parses a comma-separated list of keys. A lone space is kept so
// the space bar can be bound.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		if p == " " {
			keys = append(keys, p)
			continue
		}
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

