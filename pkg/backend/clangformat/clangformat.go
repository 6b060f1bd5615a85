// Package clangformat adapts the clang-format formatter to the Backend
// interface: YAML-style configuration round-trip via gopkg.in/yaml.v3, seed
// styles dumped via "-dump-config -style=<name>", and a mutation schema
// covering clang-format's documented enum, boolean, and bounded-integer
// options.
package clangformat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/kestrelcode/styleforge/pkg/config"
	"github.com/kestrelcode/styleforge/pkg/mutation"
)

// seedStyles are the built-in styles clang-format can dump a configuration
// for via -dump-config -style=<name>.
var seedStyles = []string{"LLVM", "Google", "Chromium", "Mozilla", "WebKit"}

// Backend implements backend.Backend for clang-format.
type Backend struct {
	schema mutation.Schema
}

// New constructs a clang-format Backend with its static mutation schema.
func New() *Backend {
	return &Backend{schema: buildSchema()}
}

func (*Backend) Name() string { return "clang-format" }

func (*Backend) DefaultCommand() string { return "clang-format" }

func (*Backend) DefaultConfigFilename() string { return ".clang-format" }

func (*Backend) Decode(data []byte) (config.Configuration, error) {
	return decode(data)
}

func (*Backend) Encode(cfg config.Configuration) ([]byte, error) {
	return encode(cfg)
}

// DefaultConfigs shells out to the formatter once per built-in style and
// decodes each dumped configuration, giving the controller a multi-member
// seed population when the user supplies no initial configuration.
func (*Backend) DefaultConfigs(ctx context.Context, command string) ([]config.Configuration, error) {
	configs := make([]config.Configuration, 0, len(seedStyles))
	for _, style := range seedStyles {
		cmd := exec.CommandContext(ctx, command, "-dump-config", "-style="+style)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("clangformat: failed to dump style %s: %w (%s)", style, err, stderr.String())
		}
		cfg, err := decode(stdout.Bytes())
		if err != nil {
			return nil, fmt.Errorf("clangformat: failed to decode dumped style %s: %w", style, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// FormatArgs builds the argv to format one file with source on stdin.
// -assume-filename lets clang-format infer the language from the real
// source extension even though the bytes arrive over a pipe.
func (*Backend) FormatArgs(_, sourceFilename string) []string {
	return []string{"-style=file", "-assume-filename=" + sourceFilename}
}

func (b *Backend) MutationRules() mutation.Schema {
	return b.schema
}

// Sanitize enforces the one cross-key invariant clang-format itself depends
// on that the per-key mutation rules cannot express: IndentWidth must not
// exceed a positive ColumnLimit, or every indented line overflows the limit
// and the formatter's own wrapping heuristics degrade into churn that is not
// representative of the house style being searched for.
func (*Backend) Sanitize(cfg config.Configuration) {
	limit, hasLimit := cfg["ColumnLimit"]
	indent, hasIndent := cfg["IndentWidth"]
	if !hasLimit || !hasIndent || limit.Kind != config.KindInt || indent.Kind != config.KindInt {
		return
	}
	if limit.Int > 0 && indent.Int > limit.Int {
		cfg["IndentWidth"] = config.Int(limit.Int)
	}
}
