package usage

import (
	"fmt"
	"strings"
)

// InvalidValue is returned when an argument or flag value is not accepted.
// allowed may be empty when the valid values cannot be listed.
func InvalidValue(name, value string, allowed ...string) *Error {
	msg := fmt.Sprintf("shade: invalid value '%s' for %s", value, name)
	if len(allowed) > 0 {
		msg += " (expected " + strings.Join(allowed, ", ") + ")"
	}
	return &Error{Kind: ErrInvalidValue, Message: msg}
}

// InvalidConfigKey is returned for keys shade does not know.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("shade: unknown config key '%s'. See 'shade config list'.", key),
	}
}

// NotInteractive is returned when an interactive command has no terminal.
func NotInteractive(command string) *Error {
	return &Error{
		Kind:    ErrNotInteractive,
		Message: fmt.Sprintf("shade: '%s' needs an interactive terminal", command),
	}
}
