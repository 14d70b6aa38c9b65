package codec

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files pin the exact byte layout of the flat writer. The layout
// is a compatibility surface: downstream calibration tooling parses these
// files, so accidental formatting changes must show up as a diff.
//
// To regenerate golden files, run:
//
//	go test ./internal/codec -update
func TestERT_Encode_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ERT{}.Encode(&buf, sampleSet(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "ertobs_basic", buf.Bytes())
}
