// Package uncrustify adapts the uncrustify formatter to the Backend
// interface: flat "key = value" configuration round-trip, a mutation
// schema built from parsing "--show-config"'s type annotations, and a
// single seed configuration dumped from the formatter's own defaults.
package uncrustify

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// Backend implements backend.Backend for uncrustify.
type Backend struct {
	schema mutation.Schema
}

// New constructs an uncrustify Backend, introspecting the given command
// for its option schema via "--show-config". command is the same
// executable the caller will later use for formatting; uncrustify reports
// a different set of options depending on build configuration, so the
// schema must come from the binary actually in use.
func New(ctx context.Context, command string) (*Backend, error) {
	cmd := exec.CommandContext(ctx, command, "--show-config")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("uncrustify: failed to introspect schema via --show-config: %w (%s)", err, stderr.String())
	}
	return &Backend{schema: buildSchemaFromShowConfig(stdout.Bytes())}, nil
}

func (*Backend) Name() string { return "uncrustify" }

func (*Backend) DefaultCommand() string { return "uncrustify" }

func (*Backend) DefaultConfigFilename() string { return "uncrustify.cfg" }

func (*Backend) Decode(data []byte) (config.Configuration, error) {
	return decode(data)
}

func (*Backend) Encode(cfg config.Configuration) ([]byte, error) {
	return encode(cfg)
}

// DefaultConfigs dumps the formatter's own built-in defaults as the single
// seed configuration. Unlike clang-format, uncrustify exposes no named
// built-in style family to enumerate, so there is exactly one seed.
func (*Backend) DefaultConfigs(ctx context.Context, command string) ([]config.Configuration, error) {
	cmd := exec.CommandContext(ctx, command, "--update-config")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("uncrustify: failed to dump default configuration: %w (%s)", err, stderr.String())
	}
	cfg, err := decode(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("uncrustify: failed to decode default configuration: %w", err)
	}
	return []config.Configuration{cfg}, nil
}

// FormatArgs builds the argv to format one file with source on stdin. -l
// tells uncrustify the source language explicitly since it cannot infer
// it from a pipe; the language name is derived here from sourceFilename's
// extension (languageFromFilename), the role clang-format's
// -assume-filename plays for that backend.
func (*Backend) FormatArgs(_, sourceFilename string) []string {
	return []string{"-c", "uncrustify.cfg", "-l", languageFromFilename(sourceFilename)}
}

func (b *Backend) MutationRules() mutation.Schema {
	return b.schema
}

// Sanitize applies the one fixup the uncrustify backend needs: whenever
// nl_max is present it is pinned to "0". Every uncrustify value is a
// string (see decode), so the fixup writes the string "0", not an integer.
func (*Backend) Sanitize(cfg config.Configuration) {
	if _, ok := cfg["nl_max"]; ok {
		cfg["nl_max"] = config.String("0")
	}
}

func languageFromFilename(name string) string {
	switch ext(name) {
	case "c":
		return "C"
	case "h":
		return "C"
	case "cc", "cpp", "cxx", "hpp", "hh":
		return "CPP"
	case "m":
		return "OC"
	case "mm":
		return "OC+"
	case "cs":
		return "CS"
	case "java":
		return "JAVA"
	case "d":
		return "D"
	case "pawn":
		return "PAWN"
	case "vala":
		return "VALA"
	default:
		return "CPP"
	}
}

func ext(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
		if name[i] == '/' {
			break
		}
	}
	return ""
}
