package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned by Append once the registry is full.
	ErrCapacityExceeded = errors.New("registry capacity exceeded")

	// ErrOutOfRange is returned by Get for an index outside [0, Len).
	ErrOutOfRange = errors.New("setting index out of range")
)

// Registry is the ordered, append-only settings table. Capacity is fixed at
// construction; entries are created during application setup and never
// removed.
type Registry struct {
	capacity int
	settings []*Setting
}

// NewRegistry creates an empty registry that can hold up to capacity entries.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		settings: make([]*Setting, 0, capacity),
	}
}

// Capacity returns the maximum number of entries.
func (r *Registry) Capacity() int { return r.capacity }

// Len returns the number of entries appended so far.
func (r *Registry) Len() int { return len(r.settings) }

// Append creates a real setting at the end of the list.
func (r *Registry) Append(name string, options []string, current int, liveUpdate bool, onChange ChangeFunc) (*Setting, error) {
	if len(r.settings) == r.capacity {
		return nil, fmt.Errorf("cannot add setting %q: %w", name, ErrCapacityExceeded)
	}
	s := newSetting(name, options, current, liveUpdate, onChange)
	r.settings = append(r.settings, s)
	return s, nil
}

// AppendSeparator creates a blank grouping row at the end of the list.
func (r *Registry) AppendSeparator() (*Setting, error) {
	if len(r.settings) == r.capacity {
		return nil, ErrCapacityExceeded
	}
	s := newSeparator()
	r.settings = append(r.settings, s)
	return s, nil
}

// Get returns the setting at index i.
func (r *Registry) Get(i int) (*Setting, error) {
	if i < 0 || i >= len(r.settings) {
		return nil, fmt.Errorf("index %d: %w", i, ErrOutOfRange)
	}
	return r.settings[i], nil
}

// FirstSelectable returns the index of the first non-separator entry, or -1
// when every entry is a separator (or the registry is empty).
func (r *Registry) FirstSelectable() int {
	for i, s := range r.settings {
		if !s.IsSeparator() {
			return i
		}
	}
	return -1
}
