package obs

import (
	"math"
	"time"
)

// Subset names the three exported observation subsets. The values double
// as output file name suffixes.
type Subset string

const (
	SubsetComplete Subset = "_complete"
	SubsetTraining Subset = "_training"
	SubsetTest     Subset = "_test"
)

// Subsets lists the three subsets in export order.
var Subsets = []Subset{SubsetComplete, SubsetTraining, SubsetTest}

// Range is a half-open [Lo, Hi) index window over an anchor date sequence.
type Range struct {
	Lo int
	Hi int
}

// Dates returns the anchor dates covered by the range.
func (r Range) Dates(anchors []time.Time) []time.Time {
	if r.Lo >= r.Hi {
		return nil
	}
	return anchors[r.Lo:r.Hi]
}

// Split holds the index ranges of the three subsets over one shared
// anchor date sequence.
type Split struct {
	Complete Range
	Training Range
	Test     Range
}

// Range returns the window for the named subset.
func (s Split) Range(subset Subset) Range {
	switch subset {
	case SubsetTraining:
		return s.Training
	case SubsetTest:
		return s.Test
	default:
		return s.Complete
	}
}

// Partition splits n anchor indices into complete/training/test windows
// for a training fraction in (0, 1].
//
// With trainN = round(n*fraction): complete is [0, n), training [0, trainN)
// and test [trainN+1, n). The anchor at index trainN belongs to neither
// subset; the boundary observation is deliberately discarded so training
// and test never share a date. Downstream consumers depend on this exact
// behavior.
func Partition(n int, fraction float64) (Split, error) {
	if n == 0 {
		return Split{}, ErrEmptyAnchorSequence
	}
	if !(fraction > 0 && fraction <= 1) {
		return Split{}, &InvalidFractionError{Fraction: fraction}
	}

	trainN := int(math.Round(float64(n) * fraction))

	testLo := trainN + 1
	if testLo > n {
		testLo = n
	}
	return Split{
		Complete: Range{Lo: 0, Hi: n},
		Training: Range{Lo: 0, Hi: trainN},
		Test:     Range{Lo: testLo, Hi: n},
	}, nil
}
