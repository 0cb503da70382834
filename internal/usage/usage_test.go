package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantMsg  string
		wantCode int
	}{
		{"invalid flag", InvalidFlag("--bogus"), "shade: invalid flag '--bogus'", 2},
		{"missing argument", MissingArgument("key"), "shade: missing required argument 'key'", 2},
		{"unknown command", UnknownCommand("thme"), "shade: 'thme' is not a shade command. See 'shade --help'.", 1},
		{"unknown command one suggestion", UnknownCommand("thme", "theme"), "shade: 'thme' is not a shade command. See 'shade --help'.\n\nThe most similar command is\n\ttheme", 1},
		{"unknown command suggestions", UnknownCommand("st", "set", "show"), "shade: 'st' is not a shade command. See 'shade --help'.\n\nThe most similar commands are\n\tset\n\tshow", 1},
		{"invalid value", InvalidValue("theme", "blue", "light", "dark"), "shade: invalid value 'blue' for theme (expected light, dark)", 2},
		{"invalid value no list", InvalidValue("--limit", "x"), "shade: invalid value 'x' for --limit", 2},
		{"invalid config key", InvalidConfigKey("colour"), "shade: unknown config key 'colour'. See 'shade config list'.", 1},
		{"not interactive", NotInteractive("theme demo"), "shade: 'theme demo' needs an interactive terminal", 1},
		{"unknown kind", &Error{Kind: ErrorKind(99), Message: "x"}, "x", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantMsg, tt.err.Error())
			require.Equal(t, tt.wantCode, tt.err.GetExitCode())
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", MissingArgument("value"))

	var ue *Error
	require.True(t, errors.As(wrapped, &ue))
	require.Equal(t, ErrMissingArgument, ue.Kind)
}
