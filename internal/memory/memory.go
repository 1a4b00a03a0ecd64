// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package memory implements the calculator's named slot store.
package memory

import (
	"errors"
	"sort"
	"sync"
)

// ErrSlotLimit is returned by Accumulate when a capped store is full and the
// named slot does not exist yet.
var ErrSlotLimit = errors.New("memory slot limit reached")

// Slot is a named memory cell holding one floating-point value.
type Slot struct {
	Name  string
	Value float64
}

// Store is a thread-safe mapping from slot name to value.
type Store struct {
	mu    sync.RWMutex
	slots map[string]float64
	limit int // maximum slot count, 0 = unbounded
}

// NewStore creates a new empty unbounded store.
func NewStore() *Store {
	return &Store{slots: make(map[string]float64)}
}

// NewCappedStore creates a store holding at most limit slots.
func NewCappedStore(limit int) *Store {
	s := NewStore()
	s.limit = limit
	return s
}

// Get returns the value for name, or 0 if the slot was never set.
func (s *Store) Get(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[name]
}

// Accumulate adds delta to the named slot, inserting delta as the initial
// value if the slot is absent, and returns the new value. The only possible
// failure is ErrSlotLimit on a capped store.
func (s *Store) Accumulate(name string, delta float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[name]; !ok && s.limit > 0 && len(s.slots) >= s.limit {
		return 0, ErrSlotLimit
	}
	s.slots[name] += delta
	return s.slots[name], nil
}

// Len returns the number of slots in use.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Snapshot returns a copy of all slots sorted by name.
func (s *Store) Snapshot() []Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Slot, 0, len(s.slots))
	for name, value := range s.slots {
		out = append(out, Slot{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
