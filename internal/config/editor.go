package config

import "strings"

// Set assigns key in lines, keeping comments, blank lines and any inline
// comment on the edited line. It reports whether an existing key was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}

	for i, line := range lines {
		name, rest, ok := splitAssignment(line)
		if !ok || name != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset removes every assignment of key. It reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if name, _, ok := splitAssignment(line); ok && name == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitAssignment returns the key and raw value of a key=value line.
// Comments and blank lines are not assignments.
func splitAssignment(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	name, rest, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(name), rest, true
}
