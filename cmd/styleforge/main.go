// Command styleforge evolves a formatter configuration file against an
// example source corpus, minimizing how much the formatter edits the
// corpus when re-run with the derived configuration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "styleforge",
		Usage: "evolve a code-formatter configuration that preserves an example corpus's style",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "command",
				Aliases: []string{"c"},
				Usage:   "formatter executable to invoke (defaults to the backend's own default command)",
			},
			&cli.IntFlag{
				Name:    "generations",
				Aliases: []string{"g"},
				Value:   25,
				Usage:   "stall cap: generations without progress before giving up",
			},
			&cli.StringFlag{
				Name:    "initial",
				Aliases: []string{"i"},
				Usage:   "path to an initial configuration file; empty means use the backend's own default styles",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   1,
				Usage:   "number of parallel fitness-evaluation workers",
			},
			&cli.Float64Flag{
				Name:    "mutation",
				Aliases: []string{"m"},
				Value:   0.1,
				Usage:   "initial per-key mutation rate",
			},
			&cli.IntFlag{
				Name:    "population",
				Aliases: []string{"p"},
				Value:   16,
				Usage:   "population size",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "project root to write the derived configuration into; empty prints the result to standard output",
			},
			&cli.StringSliceFlag{
				Name:    "lock",
				Aliases: []string{"l"},
				Usage:   "lock a configuration key from mutation (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "cf",
				Value: true,
				Usage: "use the clang-format backend (default)",
			},
			&cli.BoolFlag{
				Name:  "uncrustify",
				Usage: "use the uncrustify backend",
			},
			&cli.StringFlag{
				Name:  "cache-db",
				Usage: "enable the optional SQLite memoization tier at this path",
			},
			&cli.IntFlag{
				Name:  "spawn-rate",
				Usage: "cap formatter subprocess spawns per second (0 = unlimited)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized progress markers",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print one line per generation to standard error",
			},
		},
		Action: runCommand,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "styleforge: %v\n", err)
		os.Exit(1)
	}
}
