package obs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKey_String(t *testing.T) {
	k := Key{Vector: "WOPR", Well: "A-1"}
	assert.Equal(t, "WOPR:A-1", k.String())
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("WOPR:A-1")
	require.NoError(t, err)
	assert.Equal(t, Key{Vector: "WOPR", Well: "A-1"}, k)

	// Well names may contain colons; only the first separates.
	k, err = ParseKey("WBHP:FIELD:A-1")
	require.NoError(t, err)
	assert.Equal(t, Key{Vector: "WBHP", Well: "FIELD:A-1"}, k)

	for _, bad := range []string{"", "WOPR", "WOPR:", ":A-1"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVectorConfig_Bound(t *testing.T) {
	cfg := VectorConfig{MinError: 10, RelError: 0.05}

	assert.Equal(t, 50.075, cfg.Bound(1001.5), "relative term dominates")
	assert.Equal(t, 10.0, cfg.Bound(5), "floor dominates small values")
	assert.Equal(t, 10.0, cfg.Bound(0))
	assert.Equal(t, 50.0, cfg.Bound(-1000), "relative term uses the magnitude")
}

func TestSet_Append_OrderedKeysAndDates(t *testing.T) {
	set := NewSet()
	kOil := Key{Vector: "WOPR", Well: "A-1"}
	kBHP := Key{Vector: "WBHP", Well: "A-1"}

	require.NoError(t, set.Append(Entry{Key: kOil, Date: date(2005, 11, 1), Value: 1}))
	require.NoError(t, set.Append(Entry{Key: kBHP, Date: date(2005, 11, 1), Value: 2}))
	require.NoError(t, set.Append(Entry{Key: kOil, Date: date(2005, 12, 1), Value: 3}))

	assert.Equal(t, []Key{kOil, kBHP}, set.Keys(), "keys in first-append order")
	assert.Len(t, set.Entries(kOil), 2)
	assert.Equal(t, 3, set.Len())
}

func TestSet_Append_RejectsNonIncreasingDates(t *testing.T) {
	set := NewSet()
	k := Key{Vector: "WOPR", Well: "A-1"}

	require.NoError(t, set.Append(Entry{Key: k, Date: date(2005, 12, 1)}))
	assert.Error(t, set.Append(Entry{Key: k, Date: date(2005, 12, 1)}), "duplicate date")
	assert.Error(t, set.Append(Entry{Key: k, Date: date(2005, 11, 1)}), "earlier date")
}

func TestSet_Select(t *testing.T) {
	set := NewSet()
	kOil := Key{Vector: "WOPR", Well: "A-1"}
	kBHP := Key{Vector: "WBHP", Well: "A-1"}
	require.NoError(t, set.Append(Entry{Key: kOil, Date: date(2005, 11, 1), Value: 1}))
	require.NoError(t, set.Append(Entry{Key: kOil, Date: date(2005, 12, 1), Value: 2}))
	require.NoError(t, set.Append(Entry{Key: kBHP, Date: date(2005, 12, 1), Value: 3}))

	sub := set.Select([]time.Time{date(2005, 11, 1)})
	assert.Equal(t, []Key{kOil}, sub.Keys(), "keys left empty by the window are dropped")
	require.Len(t, sub.Entries(kOil), 1)
	assert.Equal(t, 1.0, sub.Entries(kOil)[0].Value)

	empty := set.Select(nil)
	assert.Empty(t, empty.Keys())
	assert.Equal(t, 0, empty.Len())
}
