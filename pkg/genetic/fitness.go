// Package genetic implements the evolutionary search loop described in the
// system design: population management, rank-based parent selection,
// elitism, crossover, and the adaptive mutation-rate controller. It
// operates purely over pkg/config.Configuration values and the
// pkg/mutation.Schema vocabulary; it knows nothing about how a candidate is
// scored (see pkg/fitness) or how to spawn a formatter (see pkg/backend).
package genetic

import "fmt"

// FitnessVector is an ordered tuple of small non-negative integers compared
// lexicographically; smaller is better. The canonical instance is
// (edit_distance, deleted_line_count), but the engine itself is agnostic to
// the number of components.
type FitnessVector []int

// Compare returns -1, 0, or 1 as f is lexicographically less than, equal
// to, or greater than other. Vectors of unequal length compare componentwise
// over the shared prefix; if that prefix never differs, the shorter vector
// orders first (the search never actually mixes vector arities, but this
// keeps Compare total).
func (f FitnessVector) Compare(other FitnessVector) int {
	n := len(f)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if f[i] != other[i] {
			if f[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(f) < len(other):
		return -1
	case len(f) > len(other):
		return 1
	default:
		return 0
	}
}

// Less reports whether f is strictly better (smaller) than other.
func (f FitnessVector) Less(other FitnessVector) bool { return f.Compare(other) < 0 }

// LessOrEqual reports whether f is no worse than other.
func (f FitnessVector) LessOrEqual(other FitnessVector) bool { return f.Compare(other) <= 0 }

// Equal reports whether f and other compare equal.
func (f FitnessVector) Equal(other FitnessVector) bool { return f.Compare(other) == 0 }

// IsZero reports whether every component is zero: a perfect match, where
// the formatter left every example file byte-identical.
func (f FitnessVector) IsZero() bool {
	for _, v := range f {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of f.
func (f FitnessVector) Clone() FitnessVector {
	if f == nil {
		return nil
	}
	out := make(FitnessVector, len(f))
	copy(out, f)
	return out
}

// String renders the vector for progress logging, e.g. "[12 3]".
func (f FitnessVector) String() string {
	return fmt.Sprintf("%v", []int(f))
}
