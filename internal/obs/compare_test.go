package obs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSet(t *testing.T, entries ...Entry) *Set {
	t.Helper()
	set := NewSet()
	for _, e := range entries {
		require.NoError(t, set.Append(e))
	}
	return set
}

func TestDiff_EqualSets(t *testing.T) {
	k := Key{Vector: "WOPR", Well: "A-1"}
	a := buildSet(t,
		Entry{Key: k, Date: date(2005, 11, 1), Value: 100, Error: 10},
		Entry{Key: k, Date: date(2005, 12, 1), Value: 110, Error: 10},
	)
	b := buildSet(t,
		Entry{Key: k, Date: date(2005, 11, 1), Value: 100, Error: 10},
		Entry{Key: k, Date: date(2005, 12, 1), Value: 110, Error: 10},
	)

	assert.Empty(t, Diff(a, b))
	assert.True(t, Equal(a, b))
}

func TestDiff_KeyOrderIrrelevant(t *testing.T) {
	kOil := Key{Vector: "WOPR", Well: "A-1"}
	kBHP := Key{Vector: "WBHP", Well: "A-1"}
	a := buildSet(t,
		Entry{Key: kOil, Date: date(2005, 11, 1), Value: 1},
		Entry{Key: kBHP, Date: date(2005, 11, 1), Value: 2},
	)
	b := buildSet(t,
		Entry{Key: kBHP, Date: date(2005, 11, 1), Value: 2},
		Entry{Key: kOil, Date: date(2005, 11, 1), Value: 1},
	)

	assert.True(t, Equal(a, b), "group order is a formatting concern, not information")
}

func TestDiff_ReportsMissingKeys(t *testing.T) {
	kOil := Key{Vector: "WOPR", Well: "A-1"}
	kBHP := Key{Vector: "WBHP", Well: "A-1"}
	a := buildSet(t, Entry{Key: kOil, Date: date(2005, 11, 1), Value: 1})
	b := buildSet(t, Entry{Key: kBHP, Date: date(2005, 11, 1), Value: 2})

	diffs := Diff(a, b)
	assert.Len(t, diffs, 2)
	assert.False(t, Equal(a, b))
}

func TestDiff_ReportsValueAndErrorMismatches(t *testing.T) {
	k := Key{Vector: "WOPR", Well: "A-1"}
	a := buildSet(t, Entry{Key: k, Date: date(2005, 11, 1), Value: 100, Error: 10})

	bValue := buildSet(t, Entry{Key: k, Date: date(2005, 11, 1), Value: 101, Error: 10})
	assert.Len(t, Diff(a, bValue), 1)

	bError := buildSet(t, Entry{Key: k, Date: date(2005, 11, 1), Value: 100, Error: 11})
	assert.Len(t, Diff(a, bError), 1)

	bDate := buildSet(t, Entry{Key: k, Date: date(2005, 11, 2), Value: 100, Error: 10})
	assert.Len(t, Diff(a, bDate), 1)
}

func TestDiff_ReportsLengthMismatch(t *testing.T) {
	k := Key{Vector: "WOPR", Well: "A-1"}
	a := buildSet(t,
		Entry{Key: k, Date: date(2005, 11, 1), Value: 100},
		Entry{Key: k, Date: date(2005, 12, 1), Value: 110},
	)
	b := buildSet(t, Entry{Key: k, Date: date(2005, 11, 1), Value: 100})

	diffs := Diff(a, b)
	require.Len(t, diffs, 1)
	assert.Contains(t, diffs[0], "2 entries vs 1")
}

func TestDiff_EmptySets(t *testing.T) {
	assert.True(t, Equal(NewSet(), NewSet()))
}
