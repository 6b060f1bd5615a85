// Package progress renders the single-character progress markers the
// fitness evaluator emits per example file, colorized via
// mitchellh/colorstring so a run's terminal output reads at a glance:
// green for success, yellow for a soft failure, red for a crash.
package progress

import (
	"io"

	"github.com/mitchellh/colorstring"
)

// Marker is one outcome character the fitness evaluator reports.
type Marker int

const (
	MarkerSuccess Marker = iota
	MarkerSoftFailure
	MarkerHardFailure
)

func (m Marker) symbol() string {
	switch m {
	case MarkerSoftFailure:
		return "?"
	case MarkerHardFailure:
		return "!"
	default:
		return "."
	}
}

func (m Marker) colorTag() string {
	switch m {
	case MarkerSoftFailure:
		return "yellow"
	case MarkerHardFailure:
		return "red"
	default:
		return "green"
	}
}

// Stream writes colorized markers to an underlying writer. A disabled
// Stream still renders plain, uncolored symbols so piping a run's output to
// a file or log aggregator never embeds escape codes. A nil Stream, or one
// with a nil writer, writes nothing.
type Stream struct {
	w       io.Writer
	enabled bool
}

// NewStream constructs a Stream. color=false disables colorization (e.g. when
// the user passes --no-color or stderr is not a terminal) while still
// emitting the bare marker characters.
func NewStream(w io.Writer, color bool) *Stream {
	return &Stream{w: w, enabled: color}
}

// Emit writes one marker's symbol, colorized according to its kind.
func (s *Stream) Emit(m Marker) {
	if s == nil || s.w == nil {
		return
	}
	if !s.enabled {
		_, _ = io.WriteString(s.w, m.symbol())
		return
	}
	_, _ = io.WriteString(s.w, colorstring.Color("["+m.colorTag()+"]"+m.symbol()+"[reset]"))
}
