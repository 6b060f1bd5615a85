package genetic

import (
	mathrand "math/rand"
	"math/rand/v2"
	"sync"

	"github.com/MaxHalford/eaopt"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// scalarize encodes a FitnessVector as the single float64
// github.com/MaxHalford/eaopt's Genome.Evaluate and Individual.Fitness
// contract requires, the same compromise the teacher's own
// eaoptDeckGenome.Evaluate makes (it folds DeckGenome's richer internal
// scoring into one float before handing it to eaopt). The encoding is
// order-preserving for the two-component (edit_distance, deleted_lines)
// vector this engine produces, assuming deleted_lines stays under 1e9;
// FitnessVector.Compare, not this value, remains the source of truth for
// every comparison the controller itself makes (elite promotion, regime
// classification, termination).
func scalarize(v FitnessVector) float64 {
	switch len(v) {
	case 0:
		return 0
	case 1:
		return float64(v[0])
	default:
		return float64(v[0])*1e9 + float64(v[1])
	}
}

// crossoverFault carries a CodeSchemaInconsistency error out of
// configGenome.Crossover, whose eaopt.Genome signature has no error
// return. The teacher's own eaoptDeckGenome.Crossover silently drops the
// equivalent error ("if err != nil { return }" in
// pkg/deck/genetic/optimizer.go); styleforge cannot do that, since
// spec.md §7 requires a schema-inconsistent crossover to abort the run
// with CodeSchemaInconsistency, so the fault is recorded here and checked
// by the controller after every offspring is produced.
type crossoverFault struct {
	mu  sync.Mutex
	err error
}

func (f *crossoverFault) record(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
}

func (f *crossoverFault) check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// configGenome adapts a pkg/config.Configuration to eaopt.Genome, the
// interface github.com/MaxHalford/eaopt — the teacher's own
// genetic-search dependency, see pkg/deck/genetic/optimizer.go's
// eaoptDeckGenome — requires of anything it evolves. It delegates the
// actual recombination work to this package's own Crossover and Mutate
// functions rather than reimplementing them, the same division of labor
// the teacher keeps between eaoptDeckGenome and *DeckGenome.
type configGenome struct {
	cfg config.Configuration

	// rate points at the controller's current, regime-adjusted mutation
	// rate (see regime.go); every genome produced within one generation
	// shares the same pointer, so the controller only has to update one
	// float between generations instead of rebuilding every genome.
	rate       *float64
	schema     mutation.Schema
	lockedKeys map[string]struct{}
	sanitize   func(config.Configuration)

	// rng is shared across every genome the controller creates. Mutate
	// and Crossover are defined over the concrete *rand/v2.Rand type (so
	// mutation.Rule implementations can use math/rand/v2's generic
	// integer ranges), not eaopt's math/rand (v1) Rand, so genomes draw
	// from this v2 source instead of the rng eaopt passes into
	// Mutate/Crossover — the same choice the teacher's own DeckGenome
	// makes: its randomInt helper reads from a package-level
	// math/rand/v2 source and ignores the *rand.Rand eaopt supplies to
	// Mutate/Crossover entirely (pkg/deck/genetic/genome.go).
	rng *rand.Rand

	fault *crossoverFault

	// fitness is set by the controller from the PopulationEvaluator
	// result for this configuration; Evaluate() below reads it back
	// rather than re-scoring, since only the controller's
	// evaluator/worker pool knows how to spawn the formatter (§4.4-§4.5
	// have no eaopt analogue).
	fitness FitnessVector
}

// Evaluate satisfies eaopt.Genome. The controller never calls this method
// directly — Individuals are constructed with Fitness already populated
// from a PopulationEvaluator result — but it is a working implementation
// rather than a stub, so a bare *eaopt.Individual built from a
// configGenome elsewhere (tests, future callers) behaves correctly.
func (g *configGenome) Evaluate() (float64, error) {
	return scalarize(g.fitness), nil
}

// Mutate satisfies eaopt.Genome by invoking Mutate (this package's
// recursive per-key engine) at the shared, regime-adjusted rate. The
// eaopt-supplied rng is ignored in favor of g.rng; see the field comment.
func (g *configGenome) Mutate(_ *mathrand.Rand) {
	g.cfg = Mutate(g.cfg, *g.rate, g.schema, g.lockedKeys, g.rng)
	if g.sanitize != nil {
		g.sanitize(g.cfg)
	}
}

// Crossover satisfies eaopt.Genome by invoking this package's Crossover.
// A schema-inconsistency error is recorded on g.fault rather than
// dropped, since the interface this method implements has no error
// return (see crossoverFault's comment).
func (g *configGenome) Crossover(other eaopt.Genome, _ *mathrand.Rand) {
	peer, ok := other.(*configGenome)
	if !ok || peer == nil {
		return
	}
	child, err := Crossover(g.cfg, peer.cfg, g.rng)
	if err != nil {
		g.fault.record(err)
		return
	}
	g.cfg = child
	if g.sanitize != nil {
		g.sanitize(g.cfg)
	}
}

// Clone satisfies eaopt.Genome with a deep copy of cfg; every other field
// is shared state (the rate pointer, schema, locked keys, sanitizer, rng
// and fault box are identical for every genome in a run).
func (g *configGenome) Clone() eaopt.Genome {
	return &configGenome{
		cfg:        g.cfg.Clone(),
		rate:       g.rate,
		schema:     g.schema,
		lockedKeys: g.lockedKeys,
		sanitize:   g.sanitize,
		rng:        g.rng,
		fault:      g.fault,
		fitness:    g.fitness.Clone(),
	}
}

// rankSelector implements eaopt.Selector with the biased rank-based
// parent selector from spec.md §4.6 (selectParentIndex): index =
// floor(U1·U2·N) against indis taken in the order given. The controller
// always supplies indis already sorted best-first (see nextPopulation),
// matching selectParentIndex's "ranked best-first slice" contract.
//
// Selected individuals are cloned via Individuals.Clone, the same
// idiom the teacher uses for its elite slice
// (pop.Individuals[:mod.Elite].Clone(pop.RNG) in
// pkg/deck/genetic/optimizer.go): eaopt's own built-in selectors
// (e.g. SelTournament) return fresh copies rather than aliases into the
// population being selected from, and offspring construction in
// nextPopulation mutates the returned individuals in place.
type rankSelector struct{}

func (rankSelector) Apply(n uint, indis eaopt.Individuals, rng *mathrand.Rand) (eaopt.Individuals, []int, error) {
	selected := make(eaopt.Individuals, n)
	indexes := make([]int, n)
	for i := range selected {
		idx := selectParentIndex(len(indis), rng)
		clone := indis[idx : idx+1].Clone(rng)
		selected[i] = clone[0]
		indexes[i] = idx
	}
	return selected, indexes, nil
}

func (rankSelector) Validate() error { return nil }
