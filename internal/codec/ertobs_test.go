package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcal/wellobs/internal/obs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleSet is the fixed observation set used across codec tests.
func sampleSet(t *testing.T) *obs.Set {
	t.Helper()
	set := obs.NewSet()
	kOil := obs.Key{Vector: "WOPR", Well: "A-1"}
	kBHP := obs.Key{Vector: "WBHP", Well: "A-1"}
	for _, e := range []obs.Entry{
		{Key: kOil, Date: date(2005, 11, 1), Value: 1001.5, Error: 50.075},
		{Key: kOil, Date: date(2005, 12, 1), Value: 980, Error: 49},
		{Key: kBHP, Date: date(2005, 11, 1), Value: 250, Error: 10},
	} {
		require.NoError(t, set.Append(e))
	}
	return set
}

func TestERT_Encode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ERT{}.Encode(&buf, sampleSet(t)))

	want := "WOPR:A-1\n" +
		"01/11/2005 1001.5 50.075\n" +
		"01/12/2005 980 49\n" +
		"\n" +
		"WBHP:A-1\n" +
		"01/11/2005 250 10\n"
	assert.Equal(t, want, buf.String())
}

func TestERT_RoundTrip(t *testing.T) {
	set := sampleSet(t)

	var buf bytes.Buffer
	require.NoError(t, ERT{}.Encode(&buf, set))

	decoded, err := ERT{}.Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, obs.Diff(set, decoded))
}

func TestERT_Encode_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ERT{}.Encode(&buf, obs.NewSet()))
	assert.Equal(t, "", buf.String(), "no groups, no output")
}

func TestERT_Decode_ToleratesExtraBlankLines(t *testing.T) {
	input := "\nWOPR:A-1\n\n01/11/2005 100 10\n\n\n01/12/2005 110 10\n\n"
	set, err := ERT{}.Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, set.Entries(obs.Key{Vector: "WOPR", Well: "A-1"}), 2)
}

func TestERT_Decode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"two tokens", "WOPR:A-1\n01/11/2005 100\n"},
		{"four tokens", "WOPR:A-1\n01/11/2005 100 10 extra\n"},
		{"bad date", "WOPR:A-1\n2005-11-01 100 10\n"},
		{"bad value", "WOPR:A-1\n01/11/2005 abc 10\n"},
		{"bad error bound", "WOPR:A-1\n01/11/2005 100 abc\n"},
		{"data before header", "01/11/2005 100 10\n"},
		{"header without well", "WOPR:\n"},
		{"out of order dates", "WOPR:A-1\n01/12/2005 100 10\n01/11/2005 100 10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ERT{}.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, IsMalformedRecord(err), "want MalformedRecordError, got %v", err)
		})
	}
}

func TestERT_Decode_ReportsLineNumber(t *testing.T) {
	input := "WOPR:A-1\n01/11/2005 100 10\n01/12/2005 oops 10\n"
	_, err := ERT{}.Decode(strings.NewReader(input))

	var me *MalformedRecordError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 3, me.Line)
	assert.Equal(t, "ert", me.Format)
}

func TestERT_Decode_Empty(t *testing.T) {
	set, err := ERT{}.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
