package genetic

import (
	"log"
	"math/rand/v2"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// Mutate returns a mutated copy of cfg. For each non-structured key not in
// lockedKeys, with probability rate the value is replaced by consulting
// rule := schema[key] (falling back to a boolean toggle, or an unchanged
// pass-through with a logged warning, for keys the schema does not cover).
// A key whose schema entry is mutation.IdentityRule is copied unchanged,
// whatever its kind. Other structured values — a nested configuration, or
// a list of them — recurse into Mutate at the same rate instead of being
// treated as a single opaque value; this is the "Recursive" rule kind from
// the data model, implemented here rather than as a mutation.Rule because
// only the engine knows how to walk a Configuration.
func Mutate(cfg config.Configuration, rate float64, schema mutation.Schema, lockedKeys map[string]struct{}, rng *rand.Rand) config.Configuration {
	out := make(config.Configuration, len(cfg))
	for key, val := range cfg {
		if _, locked := lockedKeys[key]; locked {
			out[key] = val.Clone()
			continue
		}
		if _, frozen := schema[key].(mutation.IdentityRule); frozen {
			out[key] = val.Clone()
			continue
		}

		switch val.Kind {
		case config.KindConfig:
			out[key] = config.Nested(Mutate(val.Nested, rate, schema, lockedKeys, rng))
			continue
		case config.KindList:
			items := make([]config.Configuration, len(val.List))
			for i, item := range val.List {
				items[i] = Mutate(item, rate, schema, lockedKeys, rng)
			}
			out[key] = config.List(items)
			continue
		}

		if rng.Float64() < rate {
			out[key] = applyRule(key, val, schema, rng)
		} else {
			out[key] = val.Clone()
		}
	}
	return out
}

// applyRule mutates a single scalar value by consulting schema[key]. Keys
// absent from the schema fall back to a boolean toggle (for Kind ==
// KindBool) or are passed through unchanged with a warning — the fallback
// path described in spec.md's mutation engine contract for unknown keys
// preserved verbatim from the backend.
func applyRule(key string, val config.Value, schema mutation.Schema, rng *rand.Rand) config.Value {
	rule, ok := schema[key]
	if !ok {
		if val.Kind == config.KindBool {
			return config.Bool(!val.Bool)
		}
		log.Printf("genetic: no mutation rule for key %q (%s); passing through unchanged", key, val.Kind)
		return val
	}

	mutated, err := rule.Apply(val, rng)
	if err != nil {
		log.Printf("genetic: mutation rule for key %q failed: %v; passing through unchanged", key, err)
		return val
	}
	return mutated
}
