package schedule

import (
	"sort"
	"time"
)

// Index provides governing-event lookup per well.
//
// The index holds one date-sorted event slice per well so the lookup is a
// binary search rather than a scan over the whole schedule. Build it once
// per schedule; it is read-only afterwards and safe to share between
// concurrent samplers.
type Index struct {
	byWell map[string][]Event
}

// NewIndex builds a per-well sorted index over the schedule's events.
// The sort is stable so same-day events keep their append order and the
// later append wins a governing-event lookup.
func NewIndex(s *Schedule) *Index {
	byWell := make(map[string][]Event, len(s.Wells()))
	for _, e := range s.Events() {
		byWell[e.Well] = append(byWell[e.Well], e)
	}
	for well := range byWell {
		events := byWell[well]
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Date.Before(events[j].Date)
		})
	}
	return &Index{byWell: byWell}
}

// Governing returns the latest event for the well dated at or before d
// (carry-forward). The second return is false when the well has no event
// at or before d, which callers treat as "no observation", not an error.
func (ix *Index) Governing(well string, d time.Time) (Event, bool) {
	events := ix.byWell[NormalizeWell(well)]
	if len(events) == 0 {
		return Event{}, false
	}
	d = truncate(d)
	// First index with date strictly after d; the governing event sits
	// immediately before it.
	i := sort.Search(len(events), func(i int) bool {
		return events[i].Date.After(d)
	})
	if i == 0 {
		return Event{}, false
	}
	return events[i-1], true
}
