package codec

import (
	"io"
	"strconv"

	"github.com/flowcal/wellobs/internal/obs"
)

// Codec is one observation file format: a serializer/parser pair over the
// shared observation set abstraction.
type Codec interface {
	// Name identifies the format ("ert" or "yaml").
	Name() string

	// Extension is the conventional file extension, without the dot.
	Extension() string

	// Encode writes the set to w. Keys with zero entries never occur in
	// an obs.Set, so every emitted group has at least one observation.
	Encode(w io.Writer, set *obs.Set) error

	// Decode parses a previously encoded set. A record that does not
	// conform to the format's grammar fails the whole read; there is no
	// partial-result tolerance.
	Decode(r io.Reader) (*obs.Set, error)
}

// ByName returns the codec registered under the given format name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "ert":
		return ERT{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// formatFloat renders a float as the shortest decimal string that parses
// back to exactly the same value. Shared by both formats so numeric text
// never drifts between them.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloat is the inverse of formatFloat.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
