package genetic

import "testing"

func TestFitnessVectorCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b FitnessVector
		want int
	}{
		{"first component dominates", FitnessVector{1, 100}, FitnessVector{2, 0}, -1},
		{"tie broken by second", FitnessVector{5, 1}, FitnessVector{5, 2}, -1},
		{"equal", FitnessVector{3, 3}, FitnessVector{3, 3}, 0},
		{"greater", FitnessVector{9, 0}, FitnessVector{1, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Fatalf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFitnessVectorIsZero(t *testing.T) {
	if !(FitnessVector{0, 0}).IsZero() {
		t.Fatalf("expected (0,0) to be zero")
	}
	if (FitnessVector{0, 1}).IsZero() {
		t.Fatalf("expected (0,1) to not be zero")
	}
}

func TestFitnessVectorCloneIndependence(t *testing.T) {
	orig := FitnessVector{1, 2}
	clone := orig.Clone()
	clone[0] = 99
	if orig[0] != 1 {
		t.Fatalf("mutating clone affected original")
	}
}
