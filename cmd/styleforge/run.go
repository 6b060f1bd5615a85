package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"sync"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/ratelimit"

	internalerrors "github.com/kestrelcode/styleforge/internal/errors"
	"github.com/kestrelcode/styleforge/internal/fsutil"
	"github.com/kestrelcode/styleforge/internal/progress"
	"github.com/kestrelcode/styleforge/pkg/backend"
	"github.com/kestrelcode/styleforge/pkg/backend/clangformat"
	"github.com/kestrelcode/styleforge/pkg/backend/uncrustify"
	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/fitness"
	"github.com/kestrelcode/styleforge/pkg/genetic"
)

// stageCanceler lets the signal-handling goroutine cancel whichever run
// context is currently active without racing its creation, adapted from
// the teacher's discover_commands.go interrupt handling.
type stageCanceler struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (sc *stageCanceler) Set(cancel context.CancelFunc) {
	sc.mu.Lock()
	sc.cancel = cancel
	sc.mu.Unlock()
}

func (sc *stageCanceler) Cancel() {
	sc.mu.Lock()
	cancel := sc.cancel
	sc.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func runCommand(ctx context.Context, cmd *cli.Command) error {
	patterns := cmd.Args().Slice()
	if len(patterns) == 0 {
		return internalerrors.New(internalerrors.CodeSeedFailure, "at least one example file glob pattern is required")
	}

	examples, err := expandGlobs(patterns)
	if err != nil {
		return err
	}
	if len(examples) == 0 {
		return internalerrors.New(internalerrors.CodeSeedFailure, "no example source files matched the given glob patterns")
	}

	useUncrustify := cmd.Bool("uncrustify")
	command := cmd.String("command")

	var be backend.Backend
	if useUncrustify {
		probeCommand := command
		if probeCommand == "" {
			probeCommand = (&uncrustify.Backend{}).DefaultCommand()
		}
		be, err = uncrustify.New(ctx, probeCommand)
		if err != nil {
			return internalerrors.Wrap(internalerrors.CodeSeedFailure, "failed to introspect uncrustify schema", err)
		}
	} else {
		be = clangformat.New()
	}
	if command == "" {
		command = be.DefaultCommand()
	}

	seeds, err := loadSeeds(ctx, be, command, cmd.String("initial"), cmd.IsSet("initial"), cmd.String("root"))
	if err != nil {
		return err
	}

	lockedKeys := map[string]struct{}{}
	for _, key := range cmd.StringSlice("lock") {
		lockedKeys[key] = struct{}{}
	}

	var cache fitness.ScoreCache = fitness.NewLRUCache(fitness.DefaultCacheCapacity)
	if dbPath := cmd.String("cache-db"); dbPath != "" {
		sqliteCache, err := fitness.OpenSQLiteCache(dbPath)
		if err != nil {
			return err
		}
		defer sqliteCache.Close()
		cache = &fitness.TieredCache{Primary: fitness.NewLRUCache(fitness.DefaultCacheCapacity), Secondary: sqliteCache}
	}

	var spawnLimit ratelimit.Limiter
	if rate := int(cmd.Int("spawn-rate")); rate > 0 {
		spawnLimit = ratelimit.New(rate)
	}

	progressStream := progress.NewStream(os.Stderr, !cmd.Bool("no-color"))

	evaluator := &fitness.Evaluator{
		Backend:    be,
		Command:    command,
		Examples:   examples,
		Cache:      cache,
		SpawnLimit: spawnLimit,
		Progress:   progressStream,
	}
	pool := &fitness.Pool{Evaluator: evaluator, Workers: int(cmd.Int("jobs"))}

	root := cmd.String("root")
	verbose := cmd.Bool("verbose")

	controller := &genetic.Controller{
		Evaluator:         pool,
		Schema:            be.MutationRules(),
		LockedKeys:        lockedKeys,
		Sanitize:          be.Sanitize,
		PopulationSize:    int(cmd.Int("population")),
		GenerationCeiling: int(cmd.Int("generations")),
		MutationRate:      cmd.Float64("mutation"),
		Present:           presenter(be, root),
		OnProgress:        progressLogger(verbose),
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	var canceler stageCanceler
	canceler.Set(cancelRun)

	interrupts := make(chan os.Signal, 2)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\nstyleforge: interrupt received; stopping the in-flight generation...")
		canceler.Cancel()
		<-interrupts
		fmt.Fprintln(os.Stderr, "\nstyleforge: second interrupt received; exiting immediately.")
		os.Exit(130)
	}()

	result, err := controller.Run(runCtx, seeds)
	if err != nil {
		return err
	}

	if result.Terminated == genetic.TerminatedPerfectMatch {
		fmt.Fprintln(os.Stderr, "Matching configuration file found.")
	}

	if root == "" {
		out, err := be.Encode(result.Elite.Config)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}

	return nil
}

// presenter persists a new elite when --root is set; with no root, the
// final configuration is printed to standard output once after Run
// returns instead, per spec.md §6's output rules.
func presenter(be backend.Backend, root string) func(config.Configuration) error {
	if root == "" {
		return nil
	}
	path := filepath.Join(root, be.DefaultConfigFilename())
	return func(cfg config.Configuration) error {
		out, err := be.Encode(cfg)
		if err != nil {
			return err
		}
		if err := fsutil.EnsureDirectory(root); err != nil {
			return err
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("failed to write configuration to %s: %w", path, err)
		}
		return nil
	}
}

func progressLogger(verbose bool) func(genetic.ProgressEvent) {
	if !verbose {
		return nil
	}
	return func(ev genetic.ProgressEvent) {
		fmt.Fprintf(os.Stderr, "\ngeneration %d: best=%s worst=%s rate=%.4f regime=%s stall=%d\n",
			ev.Generation, ev.Best, ev.Worst, ev.MutationRate, ev.Regime, ev.GenerationsSinceProgress)
	}
}

// loadSeeds resolves the initial population source, per spec.md §4.6's
// three options in priority order: (a) an explicit --initial file; (b) a
// configuration already sitting in --root (the project's own config file,
// if any); (c) the backend's own default styles. Option (b) is grounded on
// the original implementation's make_initial_configs
// (_examples/original_source/config.py:23-30): "elif args.initial is None
// and args.root: ... except FileNotFoundError: pass" — a missing root
// config silently falls through to the defaults, but any other read or
// decode failure is reported rather than swallowed.
//
// initialSet distinguishes "--initial was not passed at all" from
// "--initial ''" (cmd.IsSet("initial")): only the former is eligible for
// the root-config fallback, since an explicit empty string is still an
// explicit choice — it selects the backend's own default styles directly.
func loadSeeds(ctx context.Context, be backend.Backend, command, initialPath string, initialSet bool, root string) ([]config.Configuration, error) {
	if initialSet && initialPath != "" {
		return loadSeedFile(be, initialPath)
	}

	if !initialSet && root != "" {
		rootConfigPath := filepath.Join(root, be.DefaultConfigFilename())
		if _, err := os.Stat(rootConfigPath); err == nil {
			return loadSeedFile(be, rootConfigPath)
		} else if !os.IsNotExist(err) {
			return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, "failed to check for a project-root configuration", err)
		}
	}

	configs, err := be.DefaultConfigs(ctx, command)
	if err != nil {
		return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, "failed to obtain default seed configurations", err)
	}
	return configs, nil
}

// loadSeedFile decodes a single configuration file as the run's sole seed.
func loadSeedFile(be backend.Backend, path string) ([]config.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, "failed to read initial configuration", err)
	}
	cfg, err := be.Decode(data)
	if err != nil {
		return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, "failed to decode initial configuration", err)
	}
	return []config.Configuration{cfg}, nil
}

// expandGlobs resolves every pattern to a sorted, deduplicated list of
// absolute example file paths.
func expandGlobs(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var examples []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, fmt.Sprintf("invalid glob pattern %q", pattern), err)
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, internalerrors.Wrap(internalerrors.CodeSeedFailure, fmt.Sprintf("failed to resolve path %q", m), err)
			}
			if _, ok := seen[abs]; ok {
				continue
			}
			seen[abs] = struct{}{}
			examples = append(examples, abs)
		}
	}
	sort.Strings(examples)
	return examples, nil
}
