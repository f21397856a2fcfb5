// Package letters: template types, sentinel errors, and the prefloat
// write-through store for the letters subpackage of
// github.com/austencloud/kinetics.
package letters

import (
	"errors"
	"sync"

	"github.com/austencloud/kinetics/core"
)

// Sentinel errors for classification and dataset handling.
var (
	// ErrNoMatch indicates no strategy applied or no template matched; the
	// pictograph stays unlettered. This is an expected, recoverable outcome.
	ErrNoMatch = errors.New("letters: no matching letter")

	// ErrDatasetInvalid indicates a reference dataset that violates its
	// structural rules (unknown letter, FLOAT in a template, bad enums).
	ErrDatasetInvalid = errors.New("letters: invalid reference dataset")

	// ErrPrefloatUnresolved indicates a float motion without prefloat
	// attributes where a strategy requires them.
	ErrPrefloatUnresolved = errors.New("letters: float motion carries no prefloat attributes")
)

// ReferenceMotion is one side of a template: the canonical shape of a
// concrete motion. Templates never contain FLOAT; transitional motions
// are matched through their prefloat attributes instead.
type ReferenceMotion struct {
	MotionType core.MotionType
	StartLoc   core.Location
	EndLoc     core.Location
	PropRotDir core.RotationDirection
}

// ReferenceTemplate is one canonical motion pair known to correspond to a
// Letter. A Letter owns several templates, one per grid symmetry.
type ReferenceTemplate struct {
	Blue ReferenceMotion
	Red  ReferenceMotion
}

// Side returns the template side tracked under color c.
func (t ReferenceTemplate) Side(c core.Color) ReferenceMotion {
	if c == core.ColorBlue {
		return t.Blue
	}
	return t.Red
}

// PrefloatAttributes records the concrete motion a float stands in for.
type PrefloatAttributes struct {
	MotionType core.MotionType
	PropRotDir core.RotationDirection
}

// PrefloatStore receives the prefloat attributes a strategy resolves for
// a float motion. The write-through persists past the classification call:
// downstream stages may read the resolved attributes later, so stores must
// keep them until overwritten.
type PrefloatStore interface {
	// SetPrefloat persists attrs for the motion tracked under c.
	SetPrefloat(c core.Color, attrs PrefloatAttributes) error
}

// MemoryPrefloatStore is the in-process PrefloatStore: a small read-mostly
// table guarded by a lock, safe for concurrent classifiers.
type MemoryPrefloatStore struct {
	mu    sync.RWMutex
	attrs map[core.Color]PrefloatAttributes
}

// NewMemoryPrefloatStore returns an empty in-process store.
func NewMemoryPrefloatStore() *MemoryPrefloatStore {
	return &MemoryPrefloatStore{attrs: make(map[core.Color]PrefloatAttributes)}
}

// SetPrefloat implements PrefloatStore. It never fails.
func (s *MemoryPrefloatStore) SetPrefloat(c core.Color, attrs PrefloatAttributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs[c] = attrs
	return nil
}

// Prefloat returns the last attributes persisted under c, if any.
func (s *MemoryPrefloatStore) Prefloat(c core.Color) (PrefloatAttributes, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attrs, ok := s.attrs[c]
	return attrs, ok
}
