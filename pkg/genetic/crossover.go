package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/kestrelcode/styleforge/pkg/config"
	internalerrors "github.com/kestrelcode/styleforge/internal/errors"
)

// Crossover produces a child configuration from two parents. The child's
// key set is keys(a) ∪ keys(b): a key present in only one parent is
// inherited from that parent verbatim; a key present in both is inherited
// from whichever parent wins a coin flip, except that two structured
// values (nested configurations) recurse instead of being swapped whole.
//
// A key appearing in both parents with incompatible value Kinds is a
// backend schema bug, not a runtime condition to paper over: Crossover
// returns a CodedError tagged CodeSchemaInconsistency so the controller can
// abort the run with a clear message, per spec.md §4.3 and §7.
func Crossover(a, b config.Configuration, rng *rand.Rand) (config.Configuration, error) {
	child := make(config.Configuration, len(a)+len(b))

	for key, va := range a {
		vb, inB := b[key]
		if !inB {
			child[key] = va.Clone()
			continue
		}
		merged, err := crossoverValue(key, va, vb, rng)
		if err != nil {
			return nil, err
		}
		child[key] = merged
	}

	for key, vb := range b {
		if _, inA := a[key]; inA {
			continue
		}
		child[key] = vb.Clone()
	}

	return child, nil
}

func crossoverValue(key string, a, b config.Value, rng *rand.Rand) (config.Value, error) {
	if !a.SameType(b) {
		return config.Value{}, internalerrors.Wrap(
			internalerrors.CodeSchemaInconsistency,
			fmt.Sprintf("crossover: key %q has incompatible types across parents (%s vs %s)", key, a.Kind, b.Kind),
			nil,
		)
	}

	if a.Kind == config.KindConfig {
		nested, err := Crossover(a.Nested, b.Nested, rng)
		if err != nil {
			return config.Value{}, err
		}
		return config.Nested(nested), nil
	}

	// Lists (and every remaining scalar kind) are inherited whole from one
	// parent or the other: spec.md's data model only requires recursion for
	// "nested records", and a list of records has no natural pairwise
	// correspondence between the two parents' elements to recurse into.
	if rng.IntN(2) == 0 {
		return a.Clone(), nil
	}
	return b.Clone(), nil
}
