package uncrustify

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/kestrelcode/styleforge/pkg/config"
)

// decode parses an uncrustify "key = value" configuration. Every value is
// decoded as a string: the file format itself carries no type information,
// so classification into numbers, booleans, or enumerations is left to the
// schema built from "--show-config" rather than to the codec. For the
// same reason Backend.Sanitize writes nl_max back as a string.
func decode(data []byte) (config.Configuration, error) {
	cfg := config.Configuration{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, fmt.Errorf("uncrustify: malformed line %d: %q", lineNo, line)
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			return nil, fmt.Errorf("uncrustify: empty key on line %d", lineNo)
		}
		cfg[key] = config.String(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("uncrustify: failed to scan configuration: %w", err)
	}
	return cfg, nil
}

// encode serializes a Configuration back to "key = value" lines, sorted by
// key so output is stable across runs.
func encode(cfg config.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	for _, key := range cfg.Keys() {
		v := cfg[key]
		if v.Kind != config.KindString {
			return nil, fmt.Errorf("uncrustify: key %q has non-string value %v; uncrustify configuration is flat key=value text", key, v)
		}
		fmt.Fprintf(&buf, "%s = %s\n", key, v.Str)
	}
	return buf.Bytes(), nil
}
