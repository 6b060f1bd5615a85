// Package backend defines the capability interface that isolates all
// knowledge of one specific third-party formatter: how to spawn it, how to
// encode/decode its configuration, its default seed configurations, and the
// per-key mutation schema that drives the genetic search.
package backend

import (
	"context"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// Backend adapts one formatter to the genetic search. Construct concrete
// implementations (clangformat.New, uncrustify.New) with dependency
// injection of their mutation schema rather than global state, per the
// design note in the system specification.
type Backend interface {
	// Name identifies the backend for CLI selection and log messages.
	Name() string

	// DefaultCommand is the executable name to invoke when the user does
	// not override it with --command.
	DefaultCommand() string

	// DefaultConfigFilename is the filename the formatter expects in its
	// working directory.
	DefaultConfigFilename() string

	// Decode parses a configuration file's bytes. It may fail with a parse
	// error on malformed input.
	Decode(data []byte) (config.Configuration, error)

	// Encode serializes a configuration to the backend's on-disk syntax.
	// Total: it never fails for a well-formed Configuration.
	Encode(cfg config.Configuration) ([]byte, error)

	// DefaultConfigs returns one or more seed configurations, typically by
	// shelling out to the formatter to dump its built-in styles.
	DefaultConfigs(ctx context.Context, command string) ([]config.Configuration, error)

	// FormatArgs constructs the argv used to format one file, reading
	// source from standard input.
	FormatArgs(command, sourceFilename string) []string

	// MutationRules returns the mutation schema, built once at construction
	// time (may itself have required introspecting the formatter binary).
	MutationRules() mutation.Schema

	// Sanitize fixes up, in place, any invariant the formatter imposes that
	// the mutation engine cannot express on its own (e.g. forcing one key
	// to a fixed value because it conflicts with another).
	Sanitize(cfg config.Configuration)
}
