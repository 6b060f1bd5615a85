package genetic

import (
	"context"

	"github.com/kestrelcode/styleforge/pkg/config"
)

// Candidate pairs a configuration with the fitness assigned to it by the
// most recent evaluation. Failed is set when the evaluator could not score
// the configuration at all (a formatter soft or hard failure somewhere in
// the example corpus); Fitness is meaningless in that case.
type Candidate struct {
	Config  config.Configuration
	Fitness FitnessVector
	Failed  bool
}

// Clone returns an independent copy of the candidate.
func (c Candidate) Clone() Candidate {
	return Candidate{
		Config:  c.Config.Clone(),
		Fitness: c.Fitness.Clone(),
		Failed:  c.Failed,
	}
}

// Evaluation is the result the controller receives for one configuration
// from a PopulationEvaluator: either a fitness vector, or a failed marker.
type Evaluation struct {
	Fitness FitnessVector
	Failed  bool
}

// PopulationEvaluator scores an entire generation's worth of configurations
// and returns results in the same order they were submitted. Implementations
// are expected to parallelize internally (see pkg/fitness.Pool) — the
// controller treats this as a single blocking call per generation, matching
// the strict generation-to-generation happens-before ordering of the
// concurrency model.
type PopulationEvaluator interface {
	EvaluateAll(ctx context.Context, configs []config.Configuration) []Evaluation
}
