package dispatchers

import (
	"slices"
	"strconv"
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	return slices.Contains(f.Raw(), name)
}

// String returns the value of a --flag=value flag, or defaultVal if absent.
// The last occurrence wins.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	value, found := defaultVal, false
	for _, flag := range f.Raw() {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			value, found = v, true
		}
	}
	if !found {
		return defaultVal
	}
	return value
}

// Lookup reports the value of name and whether it was given at all.
func (f *ParsedFlags) Lookup(name string) (string, bool) {
	const unset = "\x00"
	v := f.String(name, unset)
	if v == unset {
		return "", false
	}
	return v, true
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
