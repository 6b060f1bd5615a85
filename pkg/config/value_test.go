package config

import "testing"

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal bools", Bool(true), Bool(true), true},
		{"different bools", Bool(true), Bool(false), false},
		{"equal ints", Int(120), Int(120), true},
		{"different kinds", Int(1), Bool(true), false},
		{"equal strings", String("LLVM"), String("LLVM"), true},
		{
			name: "equal nested configs",
			a:    Nested(Configuration{"A": Int(1)}),
			b:    Nested(Configuration{"A": Int(1)}),
			want: true,
		},
		{
			name: "different nested configs",
			a:    Nested(Configuration{"A": Int(1)}),
			b:    Nested(Configuration{"A": Int(2)}),
			want: false,
		},
		{
			name: "equal lists",
			a:    List([]Configuration{{"A": Int(1)}}),
			b:    List([]Configuration{{"A": Int(1)}}),
			want: true,
		},
		{
			name: "lists of different length",
			a:    List([]Configuration{{"A": Int(1)}}),
			b:    List(nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueCloneIsIndependent(t *testing.T) {
	original := Nested(Configuration{"Sub": List([]Configuration{{"X": Int(1)}})})
	clone := original.Clone()

	clone.Nested["Sub"].List[0]["X"] = Int(99)

	if original.Nested["Sub"].List[0]["X"].Int != 1 {
		t.Fatalf("mutating clone affected original: got %d, want 1", original.Nested["Sub"].List[0]["X"].Int)
	}
}

func TestConfigurationKeysSorted(t *testing.T) {
	c := Configuration{"Zeta": Int(1), "Alpha": Int(2), "Mu": Int(3)}
	got := c.Keys()
	want := []string{"Alpha", "Mu", "Zeta"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConfigurationEqualAndUnknownKeys(t *testing.T) {
	a := Configuration{"A": Int(1), "B": Bool(true)}
	b := Configuration{"A": Int(1), "B": Bool(true)}
	if !a.Equal(b) {
		t.Fatalf("expected equal configurations")
	}

	knownSet := map[string]bool{"A": true}
	unknown := a.UnknownKeys(func(key string) bool { return knownSet[key] })
	if len(unknown) != 1 || unknown[0] != "B" {
		t.Fatalf("UnknownKeys() = %v, want [B]", unknown)
	}
}
