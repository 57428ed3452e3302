package stories

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/Shravanidhuri/scalable-project/internal/debug"
)

// fixture is the on-disk shape of a user fixture file.
type fixture struct {
	Users []*User `toml:"users"`
}

// LoadUsers reads the users of a TOML fixture file. A file without users
// yields no rows and no error.
func LoadUsers(path string) ([]*User, error) {
	defer debug.Timed("load fixture " + path)()

	// Shared lock: blocks while SaveUsers holds the exclusive one
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock fixture: %w", err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var f fixture
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	debug.Log("loaded %d users from %s", len(f.Users), path)
	return f.Users, nil
}

// SaveUsers writes users as a TOML fixture file.
func SaveUsers(path string, users []*User) error {
	data, err := toml.Marshal(fixture{Users: users})
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create fixture directory: %w", err)
		}
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("failed to lock fixture: %w", err)
	}
	defer fileLock.Unlock()

	// Write to a temp file then rename so readers never see a partial file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace fixture: %w", err)
	}
	return nil
}
