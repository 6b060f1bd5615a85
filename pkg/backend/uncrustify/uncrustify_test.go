package uncrustify

import (
	"context"
	"testing"
)

func TestNameAndDefaults(t *testing.T) {
	b := &Backend{}
	if b.Name() != "uncrustify" {
		t.Fatalf("Name() = %q, want uncrustify", b.Name())
	}
	if b.DefaultCommand() != "uncrustify" {
		t.Fatalf("DefaultCommand() = %q, want uncrustify", b.DefaultCommand())
	}
	if b.DefaultConfigFilename() != "uncrustify.cfg" {
		t.Fatalf("DefaultConfigFilename() = %q, want uncrustify.cfg", b.DefaultConfigFilename())
	}
}

func TestFormatArgs(t *testing.T) {
	b := &Backend{}
	args := b.FormatArgs("uncrustify", "foo.cpp")
	want := []string{"-c", "uncrustify.cfg", "-l", "CPP"}
	if len(args) != len(want) {
		t.Fatalf("FormatArgs returned %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("FormatArgs()[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestFormatArgsLanguageFallback(t *testing.T) {
	b := &Backend{}
	args := b.FormatArgs("uncrustify", "foo.java")
	if args[len(args)-1] != "JAVA" {
		t.Fatalf("FormatArgs language = %q, want JAVA", args[len(args)-1])
	}
	args = b.FormatArgs("uncrustify", "foo.unknownext")
	if args[len(args)-1] != "CPP" {
		t.Fatalf("FormatArgs language fallback = %q, want CPP", args[len(args)-1])
	}
}

func TestNewPropagatesSpawnError(t *testing.T) {
	_, err := New(context.Background(), "styleforge-test-nonexistent-binary")
	if err == nil {
		t.Fatalf("expected error introspecting a nonexistent formatter binary")
	}
}

func TestDefaultConfigsPropagatesSpawnError(t *testing.T) {
	b := &Backend{}
	_, err := b.DefaultConfigs(context.Background(), "styleforge-test-nonexistent-binary")
	if err == nil {
		t.Fatalf("expected error spawning a nonexistent formatter binary")
	}
}
