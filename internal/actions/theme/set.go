package theme

import (
	"fmt"
	"strings"

	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/themesource"
	"github.com/shadeworks/shade/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("mode")
	}

	pref := strings.ToLower(strings.TrimSpace(args[0]))
	if !themesource.ValidPreference(pref) {
		return usage.InvalidValue("theme", args[0], "light", "dark", themesource.PreferenceSystem)
	}

	s := mount(deps)
	defer s.close()

	err := deps.Lock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, themesource.ConfigKey, pref)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	// The provider and the history pick the new value up as an external change.
	s.source.Reload()

	if pref == themesource.PreferenceSystem {
		_, _ = deps.Printf("theme set to %s (following the terminal: %s)\n", deps.Style.Success(pref), s.source.Theme())
	} else {
		_, _ = deps.Printf("theme set to %s\n", deps.Style.Success(pref))
	}

	if env, ok := s.source.EnvOverride(); ok {
		_, _ = deps.Printf("%s\n", deps.Style.Warning(fmt.Sprintf(
			"note: %s=%s overrides the stored preference, the current theme is %s",
			themesource.EnvKey, env, s.source.Theme())))
	}
	return nil
}
