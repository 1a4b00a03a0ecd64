package history

import (
	"sync"
	"time"
)

// Memory is an in-memory history store for testing.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory history store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records one processed line.
func (m *Memory) Append(line, display string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		Line:    line,
		Display: display,
		Ts:      time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// Recent returns up to limit entries, newest first.
func (m *Memory) Recent(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
