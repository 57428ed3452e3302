package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/Shravanidhuri/scalable-project/internal/stories"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.Locale != "en" {
		t.Errorf("Expected default locale 'en', got %q", cfg.UI.Locale)
	}

	if cfg.UI.DefaultStory != "default" {
		t.Errorf("Expected default story 'default', got %q", cfg.UI.DefaultStory)
	}

	if !cfg.UI.Mouse {
		t.Error("Expected Mouse to be true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name:        "empty config is valid",
			config:      &Config{},
			wantWarning: false,
		},
		{
			name: "invalid locale",
			config: &Config{
				UI: UIConfig{Locale: "not a locale!"},
			},
			wantWarning: true,
		},
		{
			name: "unknown story",
			config: &Config{
				UI: UIConfig{DefaultStory: "paginated"},
			},
			wantWarning: true,
		},
		{
			name: "key bound twice",
			config: &Config{
				Keys: KeysConfig{Sort: "s", Select: "s"},
			},
			wantWarning: true,
		},
		{
			name: "same key listed twice for one action",
			config: &Config{
				Keys: KeysConfig{Sort: "s,s"},
			},
			wantWarning: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestValidateStories(t *testing.T) {
	for _, name := range stories.Names() {
		cfg := DefaultConfig()
		cfg.UI.DefaultStory = name
		if warnings := cfg.Validate(); len(warnings) != 0 {
			t.Errorf("story %q: unexpected warnings %v", name, warnings)
		}
	}

	cfg := DefaultConfig()
	cfg.UI.DefaultStory = "paginated"
	warnings := cfg.Validate()
	if len(warnings) != 1 || !strings.Contains(warnings[0], strings.Join(stories.Names(), ", ")) {
		t.Errorf("Expected one warning listing the stories, got %v", warnings)
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	// Only specify some values - others should keep defaults
	tomlContent := `[ui]
locale = "sv"

[keys]
sort = "o"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.UI.Locale != "sv" {
		t.Errorf("Expected locale 'sv', got %q", cfg.UI.Locale)
	}
	if cfg.Keys.Sort != "o" {
		t.Errorf("Expected sort key 'o', got %q", cfg.Keys.Sort)
	}

	// Check that non-specified values keep defaults
	if cfg.Keys.Quit != "q,ctrl+c" {
		t.Errorf("Expected default quit keys, got %q", cfg.Keys.Quit)
	}

	// Boolean defaults survive when not specified
	if !cfg.UI.ShowCursor {
		t.Error("Expected ShowCursor to remain true (default) when not specified in config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("Expected defaults for a missing config file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui\nlocale ="), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got, want := ConfigPath(), filepath.Join("/tmp/xdg", "datatable", "config.toml"); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated config: %v", err)
	}

	// The generated file must parse back to the defaults.
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	if cfg.UI != DefaultConfig().UI {
		t.Errorf("generated [ui] = %+v, want %+v", cfg.UI, DefaultConfig().UI)
	}
	// Every binding is documented.
	keys := reflect.TypeOf(KeysConfig{})
	for i := 0; i < keys.NumField(); i++ {
		tag := keys.Field(i).Tag.Get("toml")
		if !strings.Contains(string(data), "# "+tag+" = ") {
			t.Errorf("Expected commented binding for keys.%s", tag)
		}
	}
}

func TestLocaleTag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Locale = "sv"
	if cfg.LocaleTag() != language.Swedish {
		t.Errorf("Expected Swedish, got %v", cfg.LocaleTag())
	}

	cfg.UI.Locale = "???"
	if cfg.LocaleTag() != language.English {
		t.Errorf("Expected English fallback, got %v", cfg.LocaleTag())
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"up,k", []string{"up", "k"}},
		{" ,x", []string{" ", "x"}},
		{"q, ctrl+c", []string{"q", "ctrl+c"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseKeys(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseKeys(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
