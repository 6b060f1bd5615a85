package genetic

import (
	"testing"

	"github.com/kestrelcode/styleforge/pkg/config"
)

func TestCrossoverKeyUnion(t *testing.T) {
	a := config.Configuration{"A": config.Int(1), "Shared": config.Int(1)}
	b := config.Configuration{"B": config.Int(2), "Shared": config.Int(2)}

	rng := newRNG()
	for i := 0; i < 50; i++ {
		child, err := Crossover(a, b, rng)
		if err != nil {
			t.Fatalf("Crossover returned error: %v", err)
		}
		if len(child) != 3 {
			t.Fatalf("child has %d keys, want 3 (A, B, Shared)", len(child))
		}
		if child["A"].Int != 1 {
			t.Fatalf("A-only key not inherited from a")
		}
		if child["B"].Int != 2 {
			t.Fatalf("B-only key not inherited from b")
		}
		shared := child["Shared"].Int
		if shared != 1 && shared != 2 {
			t.Fatalf("Shared key = %d, want 1 or 2", shared)
		}
	}
}

func TestCrossoverRecursesIntoNestedConfig(t *testing.T) {
	a := config.Configuration{"Nested": config.Nested(config.Configuration{"X": config.Int(1)})}
	b := config.Configuration{"Nested": config.Nested(config.Configuration{"X": config.Int(2)})}

	rng := newRNG()
	for i := 0; i < 50; i++ {
		child, err := Crossover(a, b, rng)
		if err != nil {
			t.Fatalf("Crossover returned error: %v", err)
		}
		x := child["Nested"].Nested["X"].Int
		if x != 1 && x != 2 {
			t.Fatalf("nested X = %d, want 1 or 2", x)
		}
	}
}

func TestCrossoverSchemaInconsistencyErrors(t *testing.T) {
	a := config.Configuration{"ColumnLimit": config.Int(80)}
	b := config.Configuration{"ColumnLimit": config.String("file")}

	if _, err := Crossover(a, b, newRNG()); err == nil {
		t.Fatalf("expected error for mismatched value kinds on shared key")
	}
}

func TestCrossoverDoesNotAliasParents(t *testing.T) {
	a := config.Configuration{"ColumnLimit": config.Int(80)}
	b := config.Configuration{"ColumnLimit": config.Int(80)}

	child, err := Crossover(a, b, newRNG())
	if err != nil {
		t.Fatalf("Crossover returned error: %v", err)
	}
	child["ColumnLimit"] = config.Int(999)
	if a["ColumnLimit"].Int != 80 || b["ColumnLimit"].Int != 80 {
		t.Fatalf("mutating child affected a parent")
	}
}
