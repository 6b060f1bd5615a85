package clangformat

import (
	"fmt"

	"github.com/kestrelcode/styleforge/pkg/config"
	"gopkg.in/yaml.v3"
)

// decode parses a clang-format YAML style file into a Configuration.
func decode(data []byte) (config.Configuration, error) {
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("clangformat: failed to parse YAML: %w", err)
	}
	return fromYAML(generic), nil
}

// encode serializes a Configuration back into clang-format YAML syntax.
func encode(cfg config.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(toYAML(cfg))
	if err != nil {
		return nil, fmt.Errorf("clangformat: failed to encode YAML: %w", err)
	}
	return data, nil
}

// fromYAML converts a generically-decoded YAML mapping into a Configuration,
// classifying each value into the sum type's three leaf kinds plus the two
// structured kinds (nested mapping, list of mappings).
func fromYAML(generic map[string]any) config.Configuration {
	cfg := make(config.Configuration, len(generic))
	for key, raw := range generic {
		cfg[key] = valueFromYAML(raw)
	}
	return cfg
}

func valueFromYAML(raw any) config.Value {
	switch v := raw.(type) {
	case bool:
		return config.Bool(v)
	case int:
		return config.Int(int64(v))
	case int64:
		return config.Int(v)
	case string:
		return config.String(v)
	case map[string]any:
		return config.Nested(fromYAML(v))
	case []any:
		items := make([]config.Configuration, 0, len(v))
		for _, elem := range v {
			if m, ok := elem.(map[string]any); ok {
				items = append(items, fromYAML(m))
			}
		}
		return config.List(items)
	default:
		// Unrecognized scalar (e.g. a float or null): preserve as string so
		// it round-trips even though the mutation engine will not touch it.
		return config.String(fmt.Sprintf("%v", v))
	}
}

func toYAML(cfg config.Configuration) map[string]any {
	generic := make(map[string]any, len(cfg))
	for _, key := range cfg.Keys() {
		generic[key] = yamlFromValue(cfg[key])
	}
	return generic
}

func yamlFromValue(v config.Value) any {
	switch v.Kind {
	case config.KindBool:
		return v.Bool
	case config.KindInt:
		return v.Int
	case config.KindString:
		return v.Str
	case config.KindConfig:
		return toYAML(v.Nested)
	case config.KindList:
		items := make([]any, len(v.List))
		for i, c := range v.List {
			items[i] = toYAML(c)
		}
		return items
	default:
		return nil
	}
}
