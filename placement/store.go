package placement

import (
	"sync"

	"github.com/austencloud/kinetics/core"
)

// Store is the special-placement override table: one flat map from
// OverrideKey to offset, guarded by a read-mostly lock. Readers (many
// pictographs classifying and placing concurrently) share the lock;
// Replace swaps the whole table at once, and Snapshot hands out an
// independent copy so batch work can pin a consistent view.
type Store struct {
	mu      sync.RWMutex
	entries map[OverrideKey]core.Offset
}

// NewStore returns an empty override table.
func NewStore() *Store {
	return &Store{entries: make(map[OverrideKey]core.Offset)}
}

// Get reads the override under k. An absent key is not an error: it reads
// as "no override" and the caller falls back to its default strategy.
func (s *Store) Get(k OverrideKey) (core.Offset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	off, ok := s.entries[k]
	return off, ok
}

// Set writes one override. Used by loaders and the authoring workflow.
func (s *Store) Set(k OverrideKey, off core.Offset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = off
}

// Len reports the number of overrides.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a copy of the table. The copy is private to the caller.
func (s *Store) Entries() map[OverrideKey]core.Offset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[OverrideKey]core.Offset, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Snapshot returns an independent Store holding a copy of the current
// table. Mutations on either side stay invisible to the other.
func (s *Store) Snapshot() *Store {
	return &Store{entries: s.Entries()}
}

// Replace swaps the whole table for entries, taking a private copy. This
// is the reload-on-demand path: readers either see the old table or the
// new one, never a mix.
func (s *Store) Replace(entries map[OverrideKey]core.Offset) {
	fresh := make(map[OverrideKey]core.Offset, len(entries))
	for k, v := range entries {
		fresh[k] = v
	}
	s.mu.Lock()
	s.entries = fresh
	s.mu.Unlock()
}
