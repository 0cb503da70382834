package config

import "github.com/shadeworks/shade/internal/domain"

// Defaults holds values computed at runtime instead of taken from the key
// registry. None are needed today; the map stays so tests can override.
var Defaults = map[string]func() string{}

// DefaultValue returns the in-code default for a key, or "" if it has none.
func DefaultValue(key string) string {
	if fn, ok := Defaults[key]; ok {
		return fn()
	}
	value, _ := domain.GetDefaultValue(key)
	return value
}

func hasDefault(key string) bool {
	if _, ok := Defaults[key]; ok {
		return true
	}
	return domain.IsValidConfigKey(key)
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if cfg, err := readParsed(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if hasDefault(key) {
		return DefaultValue(key), true
	}
	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// A broken file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for _, key := range domain.ConfigKeys {
		result[key.Name] = DefaultValue(key.Name)
	}
	for name, fn := range Defaults {
		result[name] = fn()
	}

	cfg, err := readParsed()
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func readParsed() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
