package uncrustify

import (
	"testing"

	"github.com/kestrelcode/styleforge/pkg/config"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	input := []byte(`
# a comment
indent_columns = 4
nl_max = 0

sp_before_semi = remove
`)

	cfg, err := decode(input)
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}

	if got := cfg["indent_columns"]; got.Kind != config.KindString || got.Str != "4" {
		t.Fatalf("indent_columns = %v, want string 4", got)
	}
	if got := cfg["nl_max"]; got.Kind != config.KindString || got.Str != "0" {
		t.Fatalf("nl_max = %v, want string 0", got)
	}

	out, err := encode(cfg)
	if err != nil {
		t.Fatalf("encode returned error: %v", err)
	}

	roundTripped, err := decode(out)
	if err != nil {
		t.Fatalf("decode of re-encoded output failed: %v", err)
	}
	if !cfg.Equal(roundTripped) {
		t.Fatalf("round trip mismatch:\noriginal: %v\nroundTripped: %v", cfg, roundTripped)
	}
}

func TestDecodeMalformedLineErrors(t *testing.T) {
	if _, err := decode([]byte("this line has no equals sign")); err == nil {
		t.Fatalf("expected error for a line missing '='")
	}
}

func TestEncodeRejectsNonStringValue(t *testing.T) {
	cfg := config.Configuration{"indent_columns": config.Int(4)}
	if _, err := encode(cfg); err == nil {
		t.Fatalf("expected error encoding a non-string value")
	}
}
