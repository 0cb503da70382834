package config

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	var updated bool
	err := deps.Lock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)

	return nil
}
