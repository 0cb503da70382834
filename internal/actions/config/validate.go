package config

import (
	"strconv"
	"strings"

	"github.com/shadeworks/shade/internal/themesource"
	"github.com/shadeworks/shade/internal/usage"
)

// validateValue rejects values the reader of key would ignore or misread.
// Keys with free-form values (pager) accept anything.
func validateValue(key, value string) error {
	v := strings.TrimSpace(value)

	switch {
	case key == themesource.ConfigKey:
		if !themesource.ValidPreference(v) {
			return usage.InvalidValue(key, value, "light", "dark", themesource.PreferenceSystem)
		}
	case key == "enable_log":
		if v != "true" && v != "false" {
			return usage.InvalidValue(key, value, "true", "false")
		}
	case key == "log_level":
		switch strings.ToLower(v) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return usage.InvalidValue(key, value, "debug", "info", "warn", "error")
		}
	case key == "display_time":
		if v != "12h" && v != "24h" {
			return usage.InvalidValue(key, value, "12h", "24h")
		}
	case key == "history_limit":
		if n, err := strconv.Atoi(v); err != nil || n <= 0 {
			return usage.InvalidValue(key, value, "a positive number")
		}
	case strings.HasPrefix(key, "color_"):
		if key == "color_header" && v == "bold" {
			return nil
		}
		if n, err := strconv.Atoi(v); err != nil || n < 0 || n > 255 {
			return usage.InvalidValue(key, value, "an ANSI color 0-255")
		}
	}
	return nil
}
