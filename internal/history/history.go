// Package history provides persistence for the calculator session
// transcript. Only processed lines are persisted, never the memory slots
// themselves.
package history

// Entry is one processed input line with its displayed result.
type Entry struct {
	Line    string
	Display string
	Ts      string
}

// Store is the interface for session history persistence.
type Store interface {
	// Append records one processed line.
	Append(line, display string) error
	// Recent returns up to limit entries, newest first. limit <= 0 returns
	// all entries.
	Recent(limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
