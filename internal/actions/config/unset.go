package config

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Has("--all") {
		if len(args) > 0 {
			return usage.InvalidFlag("--all does not take arguments")
		}

		err := deps.Lock(func() error {
			return deps.WriteLines([]string{})
		})
		if err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	var removed bool
	err := deps.Lock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}
	if !removed {
		_, _ = deps.Printf("%s is not set\n", key)
		return nil
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
