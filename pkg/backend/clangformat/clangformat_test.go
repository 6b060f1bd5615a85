package clangformat

import (
	"context"
	"testing"

	"github.com/kestrelcode/styleforge/pkg/config"
)

func TestNewPopulatesSchema(t *testing.T) {
	b := New()
	schema := b.MutationRules()
	for _, key := range []string{"ColumnLimit", "BasedOnStyle", "PenaltyBreakComment", "CommentPragmas"} {
		if _, ok := schema[key]; !ok {
			t.Fatalf("schema missing expected key %q", key)
		}
	}
}

func TestNameAndDefaults(t *testing.T) {
	b := New()
	if b.Name() != "clang-format" {
		t.Fatalf("Name() = %q, want clang-format", b.Name())
	}
	if b.DefaultCommand() != "clang-format" {
		t.Fatalf("DefaultCommand() = %q, want clang-format", b.DefaultCommand())
	}
	if b.DefaultConfigFilename() != ".clang-format" {
		t.Fatalf("DefaultConfigFilename() = %q, want .clang-format", b.DefaultConfigFilename())
	}
}

func TestFormatArgs(t *testing.T) {
	b := New()
	args := b.FormatArgs("clang-format", "foo.cpp")
	want := []string{"-style=file", "-assume-filename=foo.cpp"}
	if len(args) != len(want) {
		t.Fatalf("FormatArgs returned %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("FormatArgs()[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestSanitizeClampsIndentWidth(t *testing.T) {
	b := New()
	cfg := config.Configuration{
		"ColumnLimit": config.Int(40),
		"IndentWidth": config.Int(80),
	}
	b.Sanitize(cfg)
	if cfg["IndentWidth"].Int != 40 {
		t.Fatalf("IndentWidth = %d, want clamped to 40", cfg["IndentWidth"].Int)
	}
}

func TestSanitizeLeavesConsistentConfigUntouched(t *testing.T) {
	b := New()
	cfg := config.Configuration{
		"ColumnLimit": config.Int(100),
		"IndentWidth": config.Int(4),
	}
	b.Sanitize(cfg)
	if cfg["IndentWidth"].Int != 4 {
		t.Fatalf("IndentWidth = %d, want unchanged 4", cfg["IndentWidth"].Int)
	}
}

func TestSanitizeIgnoresMissingOrWrongKindKeys(t *testing.T) {
	b := New()
	cfg := config.Configuration{
		"IndentWidth": config.Int(4),
	}
	b.Sanitize(cfg)
	if cfg["IndentWidth"].Int != 4 {
		t.Fatalf("Sanitize mutated IndentWidth with no ColumnLimit present")
	}

	cfg2 := config.Configuration{
		"ColumnLimit": config.String("file"),
		"IndentWidth": config.Int(4),
	}
	b.Sanitize(cfg2)
	if cfg2["IndentWidth"].Int != 4 {
		t.Fatalf("Sanitize mutated IndentWidth when ColumnLimit has wrong kind")
	}
}

func TestDefaultConfigsPropagatesSpawnError(t *testing.T) {
	b := New()
	_, err := b.DefaultConfigs(context.Background(), "styleforge-test-nonexistent-binary")
	if err == nil {
		t.Fatalf("expected error spawning a nonexistent formatter binary")
	}
}
