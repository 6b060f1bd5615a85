package uncrustify

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// numericStringGaussRule perturbs a string-encoded integer by a Gaussian
// delta, clamps to [Min, +inf), and re-encodes as a string. uncrustify's
// own configuration format carries no type tags (every value decodes as
// config.String, see decode in codec.go), so the
// stdlib-Int-only DeltaGaussRule from pkg/mutation cannot drive a
// "Number"/"Unsigned Number" key directly; this type extends the Rule
// interface from inside the backend instead of widening it for every
// caller.
type numericStringGaussRule struct {
	Sigma    float64
	Min      int64
	Unsigned bool
}

func (r numericStringGaussRule) Apply(current config.Value, rng *rand.Rand) (config.Value, error) {
	if current.Kind != config.KindString {
		return current, fmt.Errorf("uncrustify: numeric rule requires a string value, got %s", current.Kind)
	}
	base, err := strconv.ParseInt(strings.TrimSpace(current.Str), 10, 64)
	if err != nil {
		// Not actually numeric despite its declared type; leave it alone
		// rather than fail the whole generation over one stray key.
		return current, nil
	}

	floor := r.Min
	if r.Unsigned && floor < 0 {
		floor = 0
	}

	const maxRetries = 64
	for attempt := 0; attempt < maxRetries; attempt++ {
		delta := rng.NormFloat64() * r.Sigma
		candidate := math.Round(float64(base) + delta)
		if candidate < float64(floor) {
			candidate = float64(floor)
		}
		result := int64(candidate)
		if result != base {
			return config.String(strconv.FormatInt(result, 10)), nil
		}
	}
	return current, nil
}

// buildSchemaFromShowConfig parses the output of "uncrustify --show-config"
// into a mutation.Schema. Each option line has the shape
// "key = value # Type" or "key = value # {a, b, c}", per spec.md's
// documented type-annotation vocabulary: Unsigned Number, Number, String,
// or braced comma-separated alternatives.
func buildSchemaFromShowConfig(output []byte) mutation.Schema {
	schema := mutation.Schema{}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, annotation, ok := parseShowConfigLine(line)
		if !ok {
			continue
		}
		schema[key] = ruleForAnnotation(annotation)
	}
	return schema
}

// parseShowConfigLine splits a "key = value # annotation" line into its key
// and trailing type annotation. Lines without a "#" comment carry no
// annotation and are skipped: there is nothing to build a rule from.
func parseShowConfigLine(line string) (key, annotation string, ok bool) {
	hashIdx := strings.Index(line, "#")
	if hashIdx < 0 {
		return "", "", false
	}
	head := strings.TrimSpace(line[:hashIdx])
	annotation = strings.TrimSpace(line[hashIdx+1:])

	eqIdx := strings.Index(head, "=")
	if eqIdx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(head[:eqIdx])
	if key == "" || annotation == "" {
		return "", "", false
	}
	return key, annotation, true
}

// ruleForAnnotation builds the mutation rule matching one parsed type
// annotation. Braced alternatives become a Choice over string options;
// numeric annotations become a Gaussian perturbation over the string's
// integer value; freeform String fields are left untouched, since there
// is no principled way to perturb an opaque string.
func ruleForAnnotation(annotation string) mutation.Rule {
	if strings.HasPrefix(annotation, "{") && strings.HasSuffix(annotation, "}") {
		return choiceRuleFromBraces(annotation)
	}
	switch {
	case strings.EqualFold(annotation, "Unsigned Number"):
		return numericStringGaussRule{Sigma: 4, Min: 0, Unsigned: true}
	case strings.EqualFold(annotation, "Number"):
		return numericStringGaussRule{Sigma: 4, Min: math.MinInt32}
	default:
		return mutation.IdentityRule{}
	}
}

func choiceRuleFromBraces(annotation string) mutation.Rule {
	inner := strings.TrimSuffix(strings.TrimPrefix(annotation, "{"), "}")
	parts := strings.Split(inner, ",")
	options := make([]config.Value, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		options = append(options, config.String(p))
	}
	if len(options) == 0 {
		return mutation.IdentityRule{}
	}
	return mutation.ChoiceRule{Options: options}
}
