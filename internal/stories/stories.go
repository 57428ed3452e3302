package stories

import (
	"errors"
	"fmt"

	"github.com/Shravanidhuri/scalable-project/internal/table"
)

// ErrUnknownStory is returned by Lookup for names that are not in Names.
var ErrUnknownStory = errors.New("unknown story")

// User is the row type of every story.
type User struct {
	ID    int    `toml:"id" table:"id"`
	Name  string `toml:"name" table:"name"`
	Age   int    `toml:"age" table:"age"`
	Email string `toml:"email" table:"email"`
}

// UserID identifies a user row.
func UserID(u *User) int {
	return u.ID
}

// Columns returns the user columns. Name and age are sortable.
func Columns() []table.Column[User] {
	return []table.Column[User]{
		{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
		{Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
		{Key: "email", Title: "Email", DataIndex: "email"},
	}
}

// Users returns the built-in rows. Every call allocates new rows.
func Users() []*User {
	return []*User{
		{ID: 1, Name: "Alice", Age: 25, Email: "alice@mail.com"},
		{ID: 2, Name: "Bob", Age: 30, Email: "bob@mail.com"},
		{ID: 3, Name: "Charlie", Age: 22, Email: "charlie@mail.com"},
	}
}

// Story is one named way of mounting the table.
type Story struct {
	Name       string
	Title      string
	Selectable bool
	Loading    bool

	// Empty stories mount the table without rows.
	Empty bool
}

// HasRows reports whether the story shows user rows.
func (s Story) HasRows() bool {
	return !s.Empty && !s.Loading
}

var all = []Story{
	{Name: "default", Title: "Default"},
	{Name: "selectable", Title: "Selectable", Selectable: true},
	{Name: "loading", Title: "Loading", Loading: true, Empty: true},
	{Name: "empty", Title: "Empty", Empty: true},
}

// Names returns the story names in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the story called name.
func Lookup(name string) (Story, error) {
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return Story{}, fmt.Errorf("%w: %q", ErrUnknownStory, name)
}

// Next returns the story after name, wrapping around. Unknown names start
// over at the first story.
func Next(name string) Story {
	for i, s := range all {
		if s.Name == name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
