// Package watcher monitors the static data files and the guide directory so
// a running server can reload its catalog when an editor rewrites them.
package watcher

import "time"

// EventType represents the type of file system event
type EventType int

const (
	// EventWritten is emitted when a file is created or changed (after settling)
	EventWritten EventType = iota
	// EventRemoved is emitted when a file is deleted
	EventRemoved
)

// String returns the string representation of the event type
func (t EventType) String() string {
	switch t {
	case EventWritten:
		return "written"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a file system event
type Event struct {
	// Type is the kind of event (written, removed)
	Type EventType

	// Path is the file path
	Path string

	// Size is the file size in bytes
	Size int64

	// ModTime is the file's last modification time
	ModTime time.Time
}
