// Package config defines the Configuration data model: an unordered mapping
// from string keys to typed values, used to represent a formatter's
// configuration file in memory independent of any one backend's on-disk
// syntax.
package config

import "fmt"

// Kind tags the payload carried by a Value.
type Kind int

const (
	// KindBool carries a boolean.
	KindBool Kind = iota
	// KindInt carries an integer (bounded range or free-form).
	KindInt
	// KindString carries a string, typically an enumeration member name or
	// an opaque pass-through value such as a regex.
	KindString
	// KindList carries a list of nested Configurations.
	KindList
	// KindConfig carries a single nested Configuration (a structured
	// sub-record).
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Value is the sum type for a configuration entry: a boolean, an integer, a
// string, a list of configurations, or a nested configuration. Exactly one
// of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Str    string
	List   []Configuration
	Nested Configuration
}

// Bool wraps a boolean as a Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int wraps an integer as a Value.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// String wraps a string as a Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// List wraps a list of nested configurations as a Value.
func List(items []Configuration) Value { return Value{Kind: KindList, List: items} }

// Nested wraps a single nested configuration as a Value.
func Nested(c Configuration) Value { return Value{Kind: KindConfig, Nested: c} }

// SameType reports whether v and other carry the same Kind. Crossover
// uses this to detect a backend schema bug: the same key
// appearing with incompatible value types across two configurations.
func (v Value) SameType(other Value) bool {
	return v.Kind == other.Kind
}

// Equal reports deep equality between two values.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int
	case KindString:
		return v.Str == other.Str
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindConfig:
		return v.Nested.Equal(other.Nested)
	default:
		return false
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindList:
		cloned := make([]Configuration, len(v.List))
		for i, c := range v.List {
			cloned[i] = c.Clone()
		}
		return Value{Kind: KindList, List: cloned}
	case KindConfig:
		return Value{Kind: KindConfig, Nested: v.Nested.Clone()}
	default:
		return v
	}
}

// String renders a human-readable, non-round-trippable summary of the value
// (for logging and progress output, not encoding).
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindString:
		return v.Str
	case KindList:
		return fmt.Sprintf("[%d items]", len(v.List))
	case KindConfig:
		return fmt.Sprintf("{%d keys}", len(v.Nested))
	default:
		return "<invalid>"
	}
}
