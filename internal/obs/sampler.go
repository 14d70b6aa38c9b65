package obs

import (
	"math"
	"sort"
	"time"

	"github.com/flowcal/wellobs/internal/schedule"
)

// Sample computes the observation set for a schedule over the given anchor
// dates.
//
// For every well (in schedule order), every configured vector (sorted by
// name for determinism) and every anchor date, the governing event is
// resolved by carry-forward lookup and the vector's field value extracted
// from it. Missing wells, missing fields and non-finite values all skip
// silently: sparse history is a normal condition, not an error.
//
// Multiple anchors resolving to the same governing event produce one entry
// each; observation density follows the resampling grid, not the event
// grid.
//
// Sample is a pure function of its inputs and safe to call concurrently
// against a shared schedule.
func Sample(s *schedule.Schedule, anchors []time.Time, vectors map[string]VectorConfig) *Set {
	index := schedule.NewIndex(s)

	names := make([]string, 0, len(vectors))
	for name := range vectors {
		names = append(names, name)
	}
	sort.Strings(names)

	set := NewSet()
	for _, well := range s.Wells() {
		for _, vector := range names {
			cfg := vectors[vector]
			for _, d := range anchors {
				ev, ok := index.Governing(well, d)
				if !ok {
					continue
				}
				value, ok := ev.Fields[vector]
				if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
					continue
				}
				// Anchors are strictly increasing per key, so
				// Append cannot fail.
				_ = set.Append(Entry{
					Key:   Key{Vector: vector, Well: well},
					Date:  d,
					Value: value,
					Error: cfg.Bound(value),
				})
			}
		}
	}
	return set
}
