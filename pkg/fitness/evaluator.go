package fitness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/agnivade/levenshtein"
	"go.uber.org/ratelimit"

	"github.com/kestrelcode/styleforge/internal/progress"
	"github.com/kestrelcode/styleforge/pkg/backend"
	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/genetic"
)

// Evaluator scores one candidate configuration against the example corpus
// by materializing it to a scratch workspace, invoking the backend
// formatter once per example file, and summing edit distance and deleted
// line counts across all of them.
type Evaluator struct {
	Backend      backend.Backend
	Command      string
	Examples     []string // absolute paths to example source files
	Cache        ScoreCache
	SpawnLimit   ratelimit.Limiter // nil means unlimited
	Progress     *progress.Stream  // nil disables progress markers
	WorkspaceDir string            // base directory for scratch workspaces; empty means os.TempDir()
}

// Evaluate scores a single configuration, returning the aggregated fitness
// vector or a failure marker per spec.md §4.4. The entire evaluation is
// atomic: any single example file's failure marks the whole candidate
// failed with no partial fitness reported.
func (e *Evaluator) Evaluate(ctx context.Context, cfg config.Configuration) genetic.Evaluation {
	configBytes, err := e.Backend.Encode(cfg)
	if err != nil {
		return genetic.Evaluation{Failed: true}
	}

	workspace, err := os.MkdirTemp(e.WorkspaceDir, "styleforge-")
	if err != nil {
		return genetic.Evaluation{Failed: true}
	}
	defer os.RemoveAll(workspace)

	configPath := filepath.Join(workspace, e.Backend.DefaultConfigFilename())
	if err := os.WriteFile(configPath, configBytes, 0o644); err != nil {
		return genetic.Evaluation{Failed: true}
	}

	totalEdit, totalDeleted := 0, 0
	for _, example := range e.Examples {
		score, err := e.scoreFile(ctx, workspace, example, configBytes)
		if err != nil {
			e.emit(progress.MarkerHardFailure)
			return genetic.Evaluation{Failed: true}
		}
		if score.Failed {
			marker := progress.MarkerSoftFailure
			if score.Hard {
				marker = progress.MarkerHardFailure
			}
			e.emit(marker)
			return genetic.Evaluation{Failed: true}
		}
		e.emit(progress.MarkerSuccess)
		totalEdit += score.EditDistance
		totalDeleted += score.DeletedLines
	}

	return genetic.Evaluation{Fitness: genetic.FitnessVector{totalEdit, totalDeleted}}
}

func (e *Evaluator) emit(m progress.Marker) {
	if e.Progress != nil {
		e.Progress.Emit(m)
	}
}

// scoreFile formats a single example file against the already-materialized
// workspace configuration and computes its edit distance and deleted-line
// count, consulting and populating the memoization cache around the
// subprocess spawns.
func (e *Evaluator) scoreFile(ctx context.Context, workspace, sourcePath string, configBytes []byte) (FileScore, error) {
	key := cacheKey(e.Command, sourcePath, configBytes)
	if e.Cache != nil {
		if score, ok := e.Cache.Get(key); ok {
			return score, nil
		}
	}

	original, err := os.ReadFile(sourcePath)
	if err != nil {
		return FileScore{}, fmt.Errorf("fitness: failed to read example %s: %w", sourcePath, err)
	}

	if e.SpawnLimit != nil {
		e.SpawnLimit.Take()
	}

	formatted, failed, hard, err := e.runFormatter(ctx, workspace, sourcePath, original)
	if err != nil {
		return FileScore{}, err
	}

	var score FileScore
	if failed {
		score = FileScore{Failed: true, Hard: hard}
	} else {
		deleted, err := e.countDeletedLines(ctx, sourcePath, formatted)
		if err != nil {
			return FileScore{}, err
		}
		score = FileScore{
			EditDistance: levenshtein.ComputeDistance(string(original), string(formatted)),
			DeletedLines: deleted,
		}
	}

	if e.Cache != nil {
		e.Cache.Put(key, score)
	}
	return score, nil
}

// runFormatter spawns the backend formatter with source on stdin and the
// materialized config file in its working directory, classifying the exit
// status per spec.md §4.4: nonzero-without-signal is a soft failure,
// signal termination is a hard failure, either aborts scoring for the file
// without reporting partial fitness.
func (e *Evaluator) runFormatter(ctx context.Context, workspace, sourcePath string, source []byte) (formatted []byte, failed, hard bool, err error) {
	args := e.Backend.FormatArgs(e.Command, sourcePath)
	cmd := exec.CommandContext(ctx, e.Command, args...)
	cmd.Dir = workspace
	cmd.Stdin = bytes.NewReader(source)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	runErr := cmd.Run()
	if runErr == nil {
		return stdout.Bytes(), false, false, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return nil, true, true, nil
		}
		return nil, true, false, nil
	}
	return nil, false, false, fmt.Errorf("fitness: failed to spawn formatter for %s: %w", sourcePath, runErr)
}

// countDeletedLines invokes the real diff(1) binary with the exact argv
// from spec.md §6 and counts the newlines in its output, each of which
// corresponds to one deleted line.
func (e *Evaluator) countDeletedLines(ctx context.Context, sourcePath string, formatted []byte) (int, error) {
	cmd := exec.CommandContext(ctx, "diff",
		"--changed-group-format=%<",
		"--unchanged-group-format=",
		sourcePath, "-",
	)
	cmd.Stdin = bytes.NewReader(formatted)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, fmt.Errorf("fitness: failed to spawn diff for %s: %w", sourcePath, err)
		}
		// diff exits 1 when inputs differ; that is expected, not an error.
	}
	return bytes.Count(stdout.Bytes(), []byte{'\n'}), nil
}
