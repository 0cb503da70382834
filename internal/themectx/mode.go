package themectx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a string does not name a theme mode.
var ErrInvalidMode = errors.New("themectx: invalid theme mode")

// Mode is the current theme. Only Light and Dark exist; the zero value is Light.
type Mode struct {
	dark bool
}

var (
	Light = Mode{}
	Dark  = Mode{dark: true}
)

// Modes lists every mode in display order.
var Modes = []Mode{Light, Dark}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m.dark
}

// Toggle returns the complementary mode.
func (m Mode) Toggle() Mode {
	return Mode{dark: !m.dark}
}

func (m Mode) String() string {
	if m.dark {
		return "dark"
	}
	return "light"
}

// ParseMode converts "light" or "dark" (case insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
