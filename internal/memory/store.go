// Package memory implements the named slot store that calculator expressions
// can reference, and memory commands accumulate into.
package memory

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("slot not found")

// NotFoundError indicates a read of a slot that was never written.
type NotFoundError struct {
	Name string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("slot not found: %q", err.Name)
}

// Is allows errors.Is(err, ErrNotFound).
func (err *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Store maps case-sensitive slot names to float accumulators.
// A slot exists only once it has been written by Update; the zero Store is
// empty and ready to use.
type Store struct {
	slots map[string]float64
}

// Get returns the value of a slot, or a *NotFoundError if it was never
// written. Unwritten slots never read as zero.
func (s *Store) Get(name string) (float64, error) {
	if value, defined := s.slots[name]; defined {
		return value, nil
	}
	return 0, &NotFoundError{name}
}

// Update adds delta into the named slot, creating it with value delta if it
// did not exist, and returns the new value.
func (s *Store) Update(name string, delta float64) float64 {
	if s.slots == nil {
		s.slots = make(map[string]float64)
	}
	value := s.slots[name] + delta
	s.slots[name] = value
	return value
}

// Has returns true if the named slot has been written.
func (s *Store) Has(name string) bool {
	_, defined := s.slots[name]
	return defined
}

// Len returns how many slots have been written.
func (s *Store) Len() int { return len(s.slots) }

// Names returns a sorted snapshot of all written slot names.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.slots))
	for name := range s.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
