// Package resample derives the anchor date sequence an export samples
// observations at, from a schedule's event dates and a resampling policy.
package resample

import (
	"time"

	"github.com/flowcal/wellobs/internal/schedule"
)

// Policy selects the anchor date grid.
type Policy string

const (
	// PolicyNone uses the schedule's own event dates verbatim
	// (deduplicated, increasing).
	PolicyNone Policy = "none"

	// PolicyMonthly, PolicyQuarterly and PolicyAnnual emit one anchor
	// per calendar period: the first day of each month, quarter or year
	// inside the inclusive [first event, last event] range. That is the
	// day after each period end, clipped so no anchor falls outside the
	// observed range.
	PolicyMonthly   Policy = "monthly"
	PolicyQuarterly Policy = "quarterly"
	PolicyAnnual    Policy = "annual"
)

// ParsePolicy parses a policy name. The upstream single-letter frequency
// codes ("M", "Q", "A") and the empty string (meaning none) are accepted
// as aliases.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "none":
		return PolicyNone, nil
	case "monthly", "M":
		return PolicyMonthly, nil
	case "quarterly", "Q":
		return PolicyQuarterly, nil
	case "annual", "A":
		return PolicyAnnual, nil
	default:
		return "", &UnsupportedPolicyError{Policy: s}
	}
}

// monthsPerPeriod returns the period length in months for a periodic
// policy, or 0 for PolicyNone.
func (p Policy) monthsPerPeriod() int {
	switch p {
	case PolicyMonthly:
		return 1
	case PolicyQuarterly:
		return 3
	case PolicyAnnual:
		return 12
	default:
		return 0
	}
}

// Dates derives the anchor date sequence for the schedule under the given
// policy. The result is strictly increasing with no duplicates.
//
// Returns ErrEmptySchedule when the schedule has no events and an
// UnsupportedPolicyError for a policy outside the four defined values.
func Dates(s *schedule.Schedule, policy Policy) ([]time.Time, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySchedule
	}

	dates := s.Dates()
	if policy == PolicyNone {
		return dates, nil
	}

	step := policy.monthsPerPeriod()
	if step == 0 {
		return nil, &UnsupportedPolicyError{Policy: string(policy)}
	}

	first, last := dates[0], dates[len(dates)-1]

	// Start at the period boundary containing the first event, then
	// advance until the anchor lies inside the range.
	anchor := periodStart(first, step)
	for anchor.Before(first) {
		anchor = anchor.AddDate(0, step, 0)
	}

	var anchors []time.Time
	for !anchor.After(last) {
		anchors = append(anchors, anchor)
		anchor = anchor.AddDate(0, step, 0)
	}
	return anchors, nil
}

// periodStart returns the first day of the calendar period of the given
// length (in months) containing t. Quarters start in January, April, July
// and October; years in January.
func periodStart(t time.Time, step int) time.Time {
	y, m, _ := t.UTC().Date()
	month := int(m) - 1
	month -= month % step
	return time.Date(y, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}
