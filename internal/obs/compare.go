package obs

import "fmt"

// Diff compares two observation sets and returns a list of human-readable
// differences. Sets are equal when they hold the same key set and, per
// key, the same ordered dates, floating-point-equal values and
// floating-point-equal errors. Key order is not significant for
// equivalence: two formats may legitimately emit groups in different
// order for the same logical export.
func Diff(a, b *Set) []string {
	var diffs []string

	inB := make(map[Key]bool, len(b.keys))
	for _, k := range b.keys {
		inB[k] = true
	}
	for _, k := range a.keys {
		if !inB[k] {
			diffs = append(diffs, fmt.Sprintf("key %s missing from second set", k))
		}
	}
	inA := make(map[Key]bool, len(a.keys))
	for _, k := range a.keys {
		inA[k] = true
	}
	for _, k := range b.keys {
		if !inA[k] {
			diffs = append(diffs, fmt.Sprintf("key %s missing from first set", k))
		}
	}

	for _, k := range a.keys {
		if !inB[k] {
			continue
		}
		ea, eb := a.entries[k], b.entries[k]
		if len(ea) != len(eb) {
			diffs = append(diffs, fmt.Sprintf("key %s: %d entries vs %d", k, len(ea), len(eb)))
			continue
		}
		for i := range ea {
			switch {
			case !ea[i].Date.Equal(eb[i].Date):
				diffs = append(diffs, fmt.Sprintf("key %s[%d]: date %s vs %s",
					k, i, ea[i].Date.Format("2006-01-02"), eb[i].Date.Format("2006-01-02")))
			case ea[i].Value != eb[i].Value:
				diffs = append(diffs, fmt.Sprintf("key %s[%d]: value %v vs %v", k, i, ea[i].Value, eb[i].Value))
			case ea[i].Error != eb[i].Error:
				diffs = append(diffs, fmt.Sprintf("key %s[%d]: error %v vs %v", k, i, ea[i].Error, eb[i].Error))
			}
		}
	}
	return diffs
}

// Equal reports whether two observation sets hold identical information.
func Equal(a, b *Set) bool {
	return len(Diff(a, b)) == 0
}
