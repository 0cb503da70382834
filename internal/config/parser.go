package config

import (
	"fmt"
	"strings"
)

// Parse turns config lines into a key/value map. Blank lines and lines
// starting with '#' are skipped, a " #" starts an inline comment, and values
// may be wrapped in double quotes. Later keys override earlier ones.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = cleanValue(value)
	}

	return cfg, nil
}

func cleanValue(value string) string {
	if idx := strings.Index(value, " #"); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimSpace(value)

	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return value
}
