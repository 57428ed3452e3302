package app

import (
	"github.com/Shravanidhuri/scalable-project/internal/stories"
)

// Message types for the bubbletea app.

// RowsLoadedMsg is sent when the fixture file has been read.
type RowsLoadedMsg struct {
	Users []*stories.User
	Err   error
}
