package config

import "sort"

// Configuration is an unordered mapping from string keys to typed values.
// It is the in-memory representation of a formatter's configuration file,
// independent of whatever on-disk syntax a particular Backend uses.
type Configuration map[string]Value

// Keys returns the configuration's keys in sorted order, for deterministic
// encoding and iteration in tests.
func (c Configuration) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	cloned := make(Configuration, len(c))
	for k, v := range c {
		cloned[k] = v.Clone()
	}
	return cloned
}

// Equal reports whether c and other have the same keys with equal values.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}
	for k, v := range c {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// UnknownKeys returns, in sorted order, the keys present in c for which
// known reports false (for example, keys with no entry in a mutation
// schema).
func (c Configuration) UnknownKeys(known func(key string) bool) []string {
	var unknown []string
	for _, k := range c.Keys() {
		if !known(k) {
			unknown = append(unknown, k)
		}
	}
	return unknown
}
