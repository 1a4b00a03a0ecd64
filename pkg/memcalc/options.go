// Package memcalc provides the public API for the memory calculator.
package memcalc

import (
	"nickandperla.net/memcalc/internal/history"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteHistory configures SQLite session history at the given path.
func WithSQLiteHistory(path string) Option {
	return func(r *Runtime) {
		s, err := history.NewSQLite(path)
		if err == nil {
			r.history = s
		}
	}
}

// WithMemoryHistory configures an in-memory history store (for testing).
func WithMemoryHistory() Option {
	return func(r *Runtime) {
		r.history = history.NewMemory()
	}
}

// WithHistoryStore sets a custom history store.
func WithHistoryStore(s history.Store) Option {
	return func(r *Runtime) {
		r.history = s
	}
}

// WithSlotCap bounds the number of memory slots; mutation commands that would
// create a slot past the cap fail their line. Zero means unbounded.
func WithSlotCap(n int) Option {
	return func(r *Runtime) {
		r.slotCap = n
	}
}

// WithMutationResult makes mem<name>+ / mem<name>- commands update the
// previous result to the new slot value instead of leaving it unchanged.
func WithMutationResult() Option {
	return func(r *Runtime) {
		r.mutationResult = true
	}
}
