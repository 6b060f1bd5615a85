package fitness

import (
	"context"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/genetic"
)

// Pool evaluates a generation's population across a fixed number of
// worker goroutines, each driving the Evaluator's subprocess-spawning hot
// path one configuration at a time. Adapted from the teacher's
// reevaluateStoredDecks worker pool: a buffered work channel, N
// consumers, and an indexed result channel that restores submission
// order regardless of completion order.
type Pool struct {
	Evaluator *Evaluator
	Workers   int
	ShowBar   bool
}

type poolWork struct {
	index int
	cfg   config.Configuration
}

type poolResult struct {
	index int
	eval  genetic.Evaluation
}

// EvaluateAll implements genetic.PopulationEvaluator. A Workers value of
// 1 or less runs the population sequentially on the caller's goroutine,
// mirroring the teacher's sequential fallback path.
func (p *Pool) EvaluateAll(ctx context.Context, configs []config.Configuration) []genetic.Evaluation {
	if p.Workers <= 1 {
		return p.evaluateSequential(ctx, configs)
	}

	results := make([]genetic.Evaluation, len(configs))
	workChan := make(chan poolWork, len(configs))
	resultChan := make(chan poolResult, len(configs))
	var wg sync.WaitGroup

	var bar *progressbar.ProgressBar
	if p.ShowBar {
		bar = progressbar.NewOptions(len(configs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("candidates"),
		)
	}

	workers := p.Workers
	if workers > len(configs) {
		workers = len(configs)
	}
	for range workers {
		wg.Go(func() {
			for work := range workChan {
				resultChan <- poolResult{index: work.index, eval: p.Evaluator.Evaluate(ctx, work.cfg)}
			}
		})
	}

	for i, cfg := range configs {
		workChan <- poolWork{index: i, cfg: cfg}
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		results[result.index] = result.eval
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return results
}

func (p *Pool) evaluateSequential(ctx context.Context, configs []config.Configuration) []genetic.Evaluation {
	results := make([]genetic.Evaluation, len(configs))
	for i, cfg := range configs {
		results[i] = p.Evaluator.Evaluate(ctx, cfg)
	}
	return results
}
