package errors

import (
	"errors"
	"testing"
)

func TestCodedErrorUnwrapAndHasCode(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(CodeFormatterSoftFailure, "formatter exited non-zero", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find wrapped cause")
	}
	if !HasCode(err, CodeFormatterSoftFailure) {
		t.Fatalf("expected HasCode to match %s", CodeFormatterSoftFailure)
	}
	if HasCode(err, CodeSchemaInconsistency) {
		t.Fatalf("HasCode should not match a different code")
	}
}

func TestNewWithoutCause(t *testing.T) {
	err := New(CodeSeedFailure, "no example files matched the glob patterns")
	if err.Error() != "no example files matched the glob patterns" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if errors.Unwrap(err) != nil {
		t.Fatalf("expected nil cause")
	}
}
