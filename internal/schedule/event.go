package schedule

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies the history event type a well reported.
type Kind string

const (
	// KindProductionHistory is a production history record (rates,
	// cumulative totals and pressures for a producing well).
	KindProductionHistory Kind = "production_history"

	// KindInjectionHistory is an injection history record.
	KindInjectionHistory Kind = "injection_history"
)

// Recognized measurement vector field names. Production events carry the
// production set, injection events the injection set; both carry the
// pressure vectors. These match the summary vector naming used by the
// upstream history data.
const (
	VectorOilRate    = "WOPR"
	VectorGasRate    = "WGPR"
	VectorWaterRate  = "WWPR"
	VectorOilTotal   = "WOPT"
	VectorGasTotal   = "WGPT"
	VectorWaterTotal = "WWPT"

	VectorGasInjRate    = "WGIR"
	VectorWaterInjRate  = "WWIR"
	VectorGasInjTotal   = "WGIT"
	VectorWaterInjTotal = "WWIT"

	VectorBHP = "WBHP"
	VectorTHP = "WTHP"
)

// Event is a single dated history record for one well.
//
// Fields maps measurement vector names (e.g. VectorOilRate) to values.
// Which fields are present depends on Kind; absent fields simply produce
// no observations. Events are immutable once appended to a Schedule.
type Event struct {
	Date   time.Time
	Well   string
	Kind   Kind
	Fields map[string]float64
}

// NormalizeWell returns the canonical (NFC-normalized) form of a well name.
// Well names arrive from external tabular data and may be encoded with
// combining characters; normalizing on entry keeps observation keys from
// differently-encoded inputs equal.
func NormalizeWell(name string) string {
	return norm.NFC.String(name)
}

// truncate drops the time-of-day component, keeping dates comparable at
// calendar-day resolution in UTC.
func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
