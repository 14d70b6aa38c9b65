package schedule

import (
	"sort"
	"time"
)

// Schedule is an append-only, insertion-ordered collection of Events.
//
// Insertion order is append order; the schedule is chronological by
// construction for well-behaved inputs but nothing downstream assumes it
// is sorted. Wells() preserves first-appearance order so exports are
// deterministic regardless of map iteration.
//
// Schedule is not safe for concurrent mutation, but once construction is
// finished any number of concurrent readers (parallel export runs, for
// example) may share it.
type Schedule struct {
	events []Event
	wells  []string
	seen   map[string]bool
}

// New creates an empty Schedule.
func New() *Schedule {
	return &Schedule{seen: make(map[string]bool)}
}

// Append adds an event to the schedule. The well name is NFC-normalized
// and the event date truncated to calendar-day resolution on entry.
func (s *Schedule) Append(e Event) {
	e.Well = NormalizeWell(e.Well)
	e.Date = truncate(e.Date)
	if !s.seen[e.Well] {
		s.seen[e.Well] = true
		s.wells = append(s.wells, e.Well)
	}
	s.events = append(s.events, e)
}

// Len returns the number of events.
func (s *Schedule) Len() int {
	return len(s.events)
}

// Events returns the events in insertion order. The returned slice is
// shared; callers must not mutate it.
func (s *Schedule) Events() []Event {
	return s.events
}

// Wells returns the well names in order of first appearance.
func (s *Schedule) Wells() []string {
	return s.wells
}

// Dates returns the distinct event dates in increasing order. An event
// stream usually contains many wells sharing a date, so duplicates are
// removed.
func (s *Schedule) Dates() []time.Time {
	if len(s.events) == 0 {
		return nil
	}
	set := make(map[time.Time]bool, len(s.events))
	for _, e := range s.events {
		set[e.Date] = true
	}
	dates := make([]time.Time, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
