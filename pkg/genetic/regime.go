package genetic

// Regime names the four conditions the adaptive mutation-rate controller
// distinguishes after each generation by comparing this generation's best
// fitness against the elite's.
type Regime int

const (
	// RegimeInitial marks the first generation, before any elite exists:
	// the configured mutation rate is left untouched.
	RegimeInitial Regime = iota
	// RegimeProgress: best strictly improves on the elite.
	RegimeProgress
	// RegimeRegress: best is strictly worse than the elite.
	RegimeRegress
	// RegimeStasis: the entire generation is flat — best and worst both
	// equal the elite, meaning the search has collapsed to a single point.
	RegimeStasis
	// RegimeStagnation: best equals the elite, but the generation was not
	// flat (some worse candidates exist) — a plateau near a good region.
	RegimeStagnation
)

func (r Regime) String() string {
	switch r {
	case RegimeInitial:
		return "initial"
	case RegimeProgress:
		return "progress"
	case RegimeRegress:
		return "regress"
	case RegimeStasis:
		return "stasis"
	case RegimeStagnation:
		return "stagnation"
	default:
		return "unknown"
	}
}

// regimeMultiplier is the mutation-rate multiplier applied for each regime,
// per spec.md §4.6's table.
func regimeMultiplier(r Regime) float64 {
	switch r {
	case RegimeRegress:
		return 0.75
	case RegimeProgress:
		return 1.50
	case RegimeStasis:
		return 100.0
	case RegimeStagnation:
		return 0.95
	default:
		return 1.0
	}
}

// classifyRegime compares this generation's best and worst fitness against
// the elite fitness from before this generation ran, per the table in
// spec.md §4.6. hasElite is false only for the very first generation.
func classifyRegime(hasElite bool, elite, best, worst FitnessVector) Regime {
	if !hasElite {
		return RegimeInitial
	}
	switch {
	case best.Less(elite):
		return RegimeProgress
	case elite.Less(best):
		return RegimeRegress
	case best.Equal(elite) && worst.Equal(elite):
		return RegimeStasis
	default:
		return RegimeStagnation
	}
}

// adjustMutationRate applies the regime's multiplier to rate and clamps the
// result to (0, 1], asserting strict positivity per the mutation-rate
// invariant. It also reports whether the regime counts as "no progress"
// (every regime except Progress and Initial).
func adjustMutationRate(rate float64, regime Regime) (newRate float64, noProgress bool) {
	if regime == RegimeInitial {
		return rate, false
	}

	newRate = rate * regimeMultiplier(regime)
	if newRate > 1 {
		newRate = 1
	}
	if newRate <= 0 {
		panic("genetic: adjusted mutation rate is non-positive")
	}

	return newRate, regime != RegimeProgress
}
