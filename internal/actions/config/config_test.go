package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shadeworks/shade/internal/config"
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/ui/style"
	"github.com/shadeworks/shade/internal/usage"
)

type output struct {
	lines []string
}

func (o *output) printf(format string, a ...any) (int, error) {
	o.lines = append(o.lines, fmt.Sprintf(format, a...))
	return 0, nil
}

func (o *output) println(a ...any) (int, error) {
	o.lines = append(o.lines, fmt.Sprintln(a...))
	return 0, nil
}

func (o *output) String() string {
	return strings.Join(o.lines, "")
}

var errUnlockedWrite = errors.New("config written without the lock")

func noLock(fn func() error) error {
	return fn()
}

// fileDeps backs Deps with an in-memory file and the real line editor. Writes
// made outside Lock fail.
func fileDeps(lines []string, out *output) (Deps, *[]string) {
	file := lines
	held := false
	return Deps{
		ReadLines: func() ([]string, error) {
			return append([]string(nil), file...), nil
		},
		WriteLines: func(l []string) error {
			if !held {
				return errUnlockedWrite
			}
			file = l
			return nil
		},
		Lock: func(fn func() error) error {
			held = true
			defer func() { held = false }()
			return fn()
		},
		Set:     config.Set,
		Unset:   config.Unset,
		Style:   style.NopStyler{},
		Printf:  out.printf,
		Println: out.println,
	}, &file
}

func requireUsage(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, kind, ue.Kind)
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags([]string{})
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var out output
	deps := Deps{
		Get: func(key string) (string, bool) {
			if key == "theme" {
				return "dark", true
			}
			return "", false
		},
		Println: out.println,
	}

	err := get([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "dark\n", out.String())
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrMissingArgument)
	require.Contains(t, err.Error(), "key")
}

func TestGet_UnknownKey(t *testing.T) {
	err := get([]string{"nonexistent"}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrInvalidConfigKey)
	require.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnsetOptionalKeyPrintsNothing(t *testing.T) {
	var out output
	deps := Deps{
		Get:     func(string) (string, bool) { return "", true },
		Println: out.println,
	}

	require.NoError(t, get([]string{"color_info"}, noFlags(), deps))
	require.Empty(t, out.lines)
}

// =========== SET TESTS ===========

func TestSet_AddNew(t *testing.T) {
	var out output
	deps, file := fileDeps(nil, &out)

	err := set([]string{"theme", "dark"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "added theme=dark\n", out.String())
	require.Equal(t, []string{"theme=dark"}, *file)
}

func TestSet_UpdateExisting(t *testing.T) {
	var out output
	deps, file := fileDeps([]string{"# shade", "theme=light"}, &out)

	err := set([]string{"theme", "dark"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "updated theme=dark\n", out.String())
	require.Equal(t, []string{"# shade", "theme=dark"}, *file)
}

func TestSet_MissingArguments(t *testing.T) {
	err := set([]string{"theme"}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrMissingArgument)
}

func TestSet_UnknownKey(t *testing.T) {
	err := set([]string{"colour", "red"}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrInvalidConfigKey)
}

func TestSet_ValidatesValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
		ok    bool
	}{
		{"theme", "light", true},
		{"theme", "System", true},
		{"theme", "sepia", false},
		{"enable_log", "false", true},
		{"enable_log", "yes", false},
		{"log_level", "DEBUG", true},
		{"log_level", "trace", false},
		{"history_limit", "50", true},
		{"history_limit", "0", false},
		{"history_limit", "many", false},
		{"color_success", "34", true},
		{"color_success", "256", false},
		{"color_header", "bold", true},
		{"color_info", "bold", false},
		{"pager", "less -R", true},
		{"display_time", "12h", true},
		{"display_time", "noon", false},
		{"display_date", "2006.01.02", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			var out output
			deps, _ := fileDeps(nil, &out)

			err := set([]string{tt.key, tt.value}, noFlags(), deps)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			requireUsage(t, err, usage.ErrInvalidValue)
			require.Empty(t, out.lines)
		})
	}
}

func TestSet_ReadLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return nil, errors.New("read error")
		},
		Lock: noLock,
	}

	err := set([]string{"theme", "dark"}, noFlags(), deps)

	require.ErrorContains(t, err, "read error")
}

func TestSet_WriteLinesError(t *testing.T) {
	var out output
	deps, _ := fileDeps(nil, &out)
	deps.WriteLines = func([]string) error {
		return errors.New("write error")
	}

	err := set([]string{"theme", "dark"}, noFlags(), deps)

	require.ErrorContains(t, err, "write error")
	require.Empty(t, out.lines)
}

// =========== UNSET TESTS ===========

func TestUnset_Success(t *testing.T) {
	var out output
	deps, file := fileDeps([]string{"theme=dark", "pager=cat"}, &out)

	err := unset([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "unset theme\n", out.String())
	require.Equal(t, []string{"pager=cat"}, *file)
}

func TestUnset_NotSet(t *testing.T) {
	var out output
	deps, file := fileDeps([]string{"pager=cat"}, &out)

	err := unset([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "theme is not set\n", out.String())
	require.Equal(t, []string{"pager=cat"}, *file)
}

func TestUnset_UnknownKey(t *testing.T) {
	err := unset([]string{"nonexistent"}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrInvalidConfigKey)
}

func TestUnset_MissingKey(t *testing.T) {
	err := unset([]string{}, noFlags(), Deps{})

	requireUsage(t, err, usage.ErrMissingArgument)
}

func TestUnset_AllFlag(t *testing.T) {
	var out output
	deps, file := fileDeps([]string{"theme=dark", "pager=cat"}, &out)

	err := unset(nil, dispatchers.NewParsedFlags([]string{"--all"}), deps)

	require.NoError(t, err)
	require.Empty(t, *file)
	require.Equal(t, "all config entries removed\n", out.String())
}

func TestUnset_AllFlagWithArgs(t *testing.T) {
	err := unset([]string{"theme"}, dispatchers.NewParsedFlags([]string{"--all"}), Deps{})

	requireUsage(t, err, usage.ErrInvalidFlag)
}

func TestUnset_AllFlagWriteError(t *testing.T) {
	deps := Deps{
		WriteLines: func([]string) error {
			return errors.New("write error")
		},
		Lock: noLock,
	}

	err := unset(nil, dispatchers.NewParsedFlags([]string{"--all"}), deps)

	require.ErrorContains(t, err, "write error")
}

func TestUnset_ReadLinesError(t *testing.T) {
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return nil, errors.New("read error")
		},
		Lock: noLock,
	}

	err := unset([]string{"theme"}, noFlags(), deps)

	require.ErrorContains(t, err, "read error")
}

func TestUnset_WriteLinesError(t *testing.T) {
	var out output
	deps, _ := fileDeps([]string{"theme=dark"}, &out)
	deps.WriteLines = func([]string) error {
		return errors.New("write error")
	}

	err := unset([]string{"theme"}, noFlags(), deps)

	require.ErrorContains(t, err, "write error")
}

func TestWrites_HoldConfigLock(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags *dispatchers.ParsedFlags
		run   func([]string, *dispatchers.ParsedFlags, Deps) error
	}{
		{name: "set", args: []string{"pager", "cat"}, flags: noFlags(), run: set},
		{name: "unset", args: []string{"theme"}, flags: noFlags(), run: unset},
		{name: "unset all", flags: dispatchers.NewParsedFlags([]string{"--all"}), run: unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out output
			deps, _ := fileDeps([]string{"theme=dark"}, &out)
			locks := 0
			lock := deps.Lock
			deps.Lock = func(fn func() error) error {
				locks++
				return lock(fn)
			}

			require.NoError(t, tt.run(tt.args, tt.flags, deps))
			require.Equal(t, 1, locks)
		})
	}
}

func TestWrites_LockError(t *testing.T) {
	var out output
	deps, file := fileDeps([]string{"theme=dark"}, &out)
	deps.Lock = func(func() error) error { return config.ErrLockTimeout }

	err := set([]string{"theme", "light"}, noFlags(), deps)

	require.ErrorIs(t, err, config.ErrLockTimeout)
	require.Equal(t, []string{"theme=dark"}, *file)
	require.Empty(t, out.lines)
}

// =========== LIST TESTS ===========

func defaults() map[string]string {
	return map[string]string{
		"theme":         "system",
		"pager":         "less -FRSX",
		"enable_log":    "true",
		"log_level":     "info",
		"history_limit": "20",
		"color_success": "",
		"color_warning": "",
		"color_error":   "",
		"color_info":    "",
		"color_muted":   "",
		"color_header":  "",
	}
}

func TestList_GroupsBySection(t *testing.T) {
	var out output
	deps := Deps{
		GetAll:  func() (map[string]string, error) { return defaults(), nil },
		Style:   style.NopStyler{},
		Printf:  out.printf,
		Println: out.println,
	}

	err := list(nil, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"Display",
		"theme=system",
		"pager=less -FRSX",
		"",
		"Logging",
		"enable_log=true",
		"log_level=info",
		"",
		"History",
		"history_limit=20",
		"",
	}, "\n"), out.String())
}

func TestList_ShowsColorOverridesWhenSet(t *testing.T) {
	var out output
	values := defaults()
	values["color_success"] = "34"
	deps := Deps{
		GetAll:  func() (map[string]string, error) { return values, nil },
		Style:   style.NopStyler{},
		Printf:  out.printf,
		Println: out.println,
	}

	err := list(nil, noFlags(), deps)

	require.NoError(t, err)
	require.Contains(t, out.String(), "Color Overrides\ncolor_success=34\n")
	require.NotContains(t, out.String(), "color_info")
}

func TestList_GetAllError(t *testing.T) {
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return nil, errors.New("read error")
		},
	}

	err := list(nil, noFlags(), deps)

	require.ErrorContains(t, err, "read error")
}
