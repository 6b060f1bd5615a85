package uncrustify

import (
	"math/rand/v2"
	"testing"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

func TestBuildSchemaFromShowConfigParsesAllAnnotationKinds(t *testing.T) {
	output := []byte(`
# general options
newlines                = Auto    # {Auto, LF, CR, CRLF, Ignore}
nl_max                  = 0       # Unsigned Number
indent_columns          = 4       # Number
cmt_insert_file_header  =         # String
`)
	schema := buildSchemaFromShowConfig(output)

	if _, ok := schema["newlines"].(mutation.ChoiceRule); !ok {
		t.Fatalf("newlines rule = %T, want ChoiceRule", schema["newlines"])
	}
	if _, ok := schema["nl_max"].(numericStringGaussRule); !ok {
		t.Fatalf("nl_max rule = %T, want numericStringGaussRule", schema["nl_max"])
	}
	if _, ok := schema["indent_columns"].(numericStringGaussRule); !ok {
		t.Fatalf("indent_columns rule = %T, want numericStringGaussRule", schema["indent_columns"])
	}
	if _, ok := schema["cmt_insert_file_header"].(mutation.IdentityRule); !ok {
		t.Fatalf("cmt_insert_file_header rule = %T, want IdentityRule", schema["cmt_insert_file_header"])
	}
}

func TestNumericStringGaussRuleClampsToZeroWhenUnsigned(t *testing.T) {
	rule := numericStringGaussRule{Sigma: 100, Min: 0, Unsigned: true}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		got, err := rule.Apply(config.String("0"), rng)
		if err != nil {
			t.Fatalf("Apply returned error: %v", err)
		}
		if got.Str == "" {
			t.Fatalf("Apply returned empty string")
		}
		if got.Str[0] == '-' {
			t.Fatalf("unsigned rule produced a negative value: %s", got.Str)
		}
	}
}

func TestNumericStringGaussRuleLeavesNonNumericValueUnchanged(t *testing.T) {
	rule := numericStringGaussRule{Sigma: 4, Min: 0}
	rng := rand.New(rand.NewPCG(1, 2))

	got, err := rule.Apply(config.String("not-a-number"), rng)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got.Str != "not-a-number" {
		t.Fatalf("Apply() = %q, want unchanged", got.Str)
	}
}

func TestChoiceRuleFromBracesParsesAlternatives(t *testing.T) {
	rule := choiceRuleFromBraces("{Auto, LF, CR, CRLF}")
	choice, ok := rule.(mutation.ChoiceRule)
	if !ok {
		t.Fatalf("rule = %T, want ChoiceRule", rule)
	}
	if len(choice.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(choice.Options))
	}
}
