// Package mutation defines the per-key mutation rule vocabulary: the four
// canonical rule kinds a backend's schema is built from (Choice, DeltaGauss,
// Range, Identity), plus the Schema type mapping a configuration key to its
// rule. The package does not know how to walk a Configuration recursively —
// that traversal lives in pkg/genetic, which consults a Schema one key at a
// time.
package mutation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/kestrelcode/styleforge/pkg/config"
)

// Rule perturbs a single value given the current value and a random source.
// Implementations must not mutate current in place; they return a new Value.
type Rule interface {
	// Apply returns a new value derived from current. The result may equal
	// current: IdentityRule always returns it, RangeRule can draw it, and
	// DeltaGaussRule returns it once its retries are exhausted.
	Apply(current config.Value, rng *rand.Rand) (config.Value, error)
}

// Schema maps a configuration key to the mutation rule governing it. Keys
// absent from a Schema fall back to engine-level defaults (boolean toggle,
// or pass-through with a warning) rather than an entry here.
type Schema map[string]Rule

// IdentityRule passes the value through unchanged. Used for opaque values
// (regexes, free-form comment pragmas) the search should never touch; a key
// whose schema entry is IdentityRule is effectively frozen.
type IdentityRule struct{}

func (IdentityRule) Apply(current config.Value, _ *rand.Rand) (config.Value, error) {
	return current, nil
}

// ChoiceRule picks any member of a fixed finite set other than the current
// value. Used for enumeration-valued keys (e.g. clang-format's BreakBeforeBraces).
type ChoiceRule struct {
	Options []config.Value
}

func (r ChoiceRule) Apply(current config.Value, rng *rand.Rand) (config.Value, error) {
	if len(r.Options) == 0 {
		return current, fmt.Errorf("mutation: choice rule has no options")
	}
	if len(r.Options) == 1 {
		return r.Options[0], nil
	}

	alternatives := make([]config.Value, 0, len(r.Options))
	for _, opt := range r.Options {
		if !opt.Equal(current) {
			alternatives = append(alternatives, opt)
		}
	}
	if len(alternatives) == 0 {
		return current, nil
	}
	return alternatives[rng.IntN(len(alternatives))], nil
}

// maxGaussRetries bounds the retry loop in DeltaGaussRule so a pathological
// sigma near zero cannot spin forever trying to produce a differing value.
const maxGaussRetries = 64

// DeltaGaussRule adds a Gaussian perturbation of standard deviation Sigma to
// an integer value, clamps to [Min, +inf), rounds, and retries (up to a hard
// ceiling) until the result differs from the input. Used for bounded integer
// keys such as ColumnLimit.
type DeltaGaussRule struct {
	Sigma float64
	Min   int64
}

func (r DeltaGaussRule) Apply(current config.Value, rng *rand.Rand) (config.Value, error) {
	if current.Kind != config.KindInt {
		return current, fmt.Errorf("mutation: DeltaGaussRule requires an int value, got %s", current.Kind)
	}

	for attempt := 0; attempt < maxGaussRetries; attempt++ {
		delta := rng.NormFloat64() * r.Sigma
		candidate := math.Round(float64(current.Int) + delta)
		if candidate < float64(r.Min) {
			candidate = float64(r.Min)
		}
		result := int64(candidate)
		if result != current.Int {
			return config.Int(result), nil
		}
	}
	return current, nil
}

// RangeRule draws uniformly from [Lo, Hi). Used for integer keys with a
// bounded, backend-documented range (e.g. PenaltyIndentedWhitespace).
type RangeRule struct {
	Lo, Hi int64
}

func (r RangeRule) Apply(current config.Value, rng *rand.Rand) (config.Value, error) {
	if current.Kind != config.KindInt {
		return current, fmt.Errorf("mutation: RangeRule requires an int value, got %s", current.Kind)
	}
	if r.Hi <= r.Lo {
		return current, fmt.Errorf("mutation: RangeRule has empty range [%d, %d)", r.Lo, r.Hi)
	}
	span := r.Hi - r.Lo
	return config.Int(r.Lo + rng.Int64N(span)), nil
}
