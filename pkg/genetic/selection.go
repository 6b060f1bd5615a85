package genetic

// uniformFloat64 is satisfied by both math/rand/v2's *Rand (used everywhere
// else in this package) and math/rand's v1 *Rand (the type
// github.com/MaxHalford/eaopt's Selector interface is built around). It
// lets selectParentIndex serve rankSelector in eaopt_adapter.go without a
// v1/v2 conversion at the call site.
type uniformFloat64 interface {
	Float64() float64
}

// selectParentIndex implements the biased rank-based selector from
// spec.md §4.6: index = floor(U1 · U2 · N), U1, U2 ~ Uniform(0,1). Multiplying
// two independent uniforms produces a PDF skewed hard toward zero, so a
// ranked (best-first) slice is selected from with strong bias toward its
// front while still leaving every member reachable — the tail of the
// ranking is not strictly excluded, just unlikely.
func selectParentIndex(n int, rng uniformFloat64) int {
	u1 := rng.Float64()
	u2 := rng.Float64()
	idx := int(u1 * u2 * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
