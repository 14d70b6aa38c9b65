package obs

import (
	"fmt"
	"strings"
	"time"
)

// Key identifies one observed series: a measurement vector on a well.
// Rendered as a single string ("WOPR:A-1") in both file formats.
type Key struct {
	Vector string
	Well   string
}

// String renders the key in its external vector:well form.
func (k Key) String() string {
	return k.Vector + ":" + k.Well
}

// ParseKey parses the external vector:well form. Well names may themselves
// contain colons, so the split is on the first one only.
func ParseKey(s string) (Key, error) {
	vector, well, ok := strings.Cut(s, ":")
	if !ok || vector == "" || well == "" {
		return Key{}, fmt.Errorf("malformed observation key %q: want vector:well", s)
	}
	return Key{Vector: vector, Well: well}, nil
}

// Entry is one (date, value, error) sample for one key.
type Entry struct {
	Key   Key
	Date  time.Time
	Value float64
	Error float64
}

// VectorConfig holds the error model for one measurement vector.
// The error bound of an observation is max(MinError, RelError*|value|).
type VectorConfig struct {
	MinError float64
	RelError float64
}

// Bound computes the error bound for a value under this configuration.
func (c VectorConfig) Bound(value float64) float64 {
	e := c.RelError * abs(value)
	if e < c.MinError {
		return c.MinError
	}
	return e
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Set is an insertion-ordered mapping from Key to date-ordered entries.
//
// Invariants: key order is first-append order; within a key, dates are
// strictly increasing. Append enforces the date invariant so a Set can
// never silently hold out-of-order or duplicate-date entries.
type Set struct {
	keys    []Key
	entries map[Key][]Entry
}

// NewSet creates an empty observation set.
func NewSet() *Set {
	return &Set{entries: make(map[Key][]Entry)}
}

// Append adds an entry under its key, preserving date order. It returns
// an error if the entry's date is not strictly after the key's last date.
func (s *Set) Append(e Entry) error {
	existing := s.entries[e.Key]
	if len(existing) > 0 {
		last := existing[len(existing)-1].Date
		if !e.Date.After(last) {
			return fmt.Errorf("observation for %s at %s: date not after previous entry (%s)",
				e.Key, e.Date.Format("2006-01-02"), last.Format("2006-01-02"))
		}
	}
	if len(existing) == 0 {
		s.keys = append(s.keys, e.Key)
	}
	s.entries[e.Key] = append(existing, e)
	return nil
}

// Keys returns the keys in first-append order.
func (s *Set) Keys() []Key {
	return s.keys
}

// Entries returns the entries for a key in date order. The returned slice
// is shared; callers must not mutate it.
func (s *Set) Entries(k Key) []Entry {
	return s.entries[k]
}

// Len returns the total number of entries across all keys.
func (s *Set) Len() int {
	n := 0
	for _, entries := range s.entries {
		n += len(entries)
	}
	return n
}

// Select returns a derived set holding only entries whose date is in the
// given anchor date window. Key order is preserved; keys left with zero
// entries are dropped entirely.
func (s *Set) Select(dates []time.Time) *Set {
	keep := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		keep[d] = true
	}
	out := NewSet()
	for _, k := range s.keys {
		for _, e := range s.entries[k] {
			if keep[e.Date] {
				// Dates within a key stay strictly increasing under
				// filtering, so Append cannot fail here.
				_ = out.Append(e)
			}
		}
	}
	return out
}
