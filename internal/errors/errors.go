package errors

import goerrors "errors"

// Stable error codes for the error kinds enumerated by the system's error
// handling design: seed failure, formatter soft/hard failure, a generation
// producing no scored candidate, a crossover schema inconsistency, and
// graceful interrupt.
const (
	CodeSeedFailure             = "seed_failure"
	CodeFormatterSoftFailure    = "formatter_soft_failure"
	CodeFormatterCrash          = "formatter_crash"
	CodeGenerationScoringFailed = "generation_scoring_failure"
	CodeSchemaInconsistency     = "schema_inconsistency"
	CodeInterrupted             = "interrupted"
)

// CodedError represents an error with a stable machine-readable code and a
// human-readable message. The code lets callers (tests, the CLI's exit-code
// mapping) branch on error kind without string matching.
type CodedError struct {
	Code    string
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// New creates a new CodedError with the given code and message.
func New(code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// Wrap creates a new CodedError with the given code, message, and cause.
func Wrap(code, message string, err error) *CodedError {
	return &CodedError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err is (or wraps) a CodedError with the given code.
func HasCode(err error, code string) bool {
	var coded *CodedError
	if goerrors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}
