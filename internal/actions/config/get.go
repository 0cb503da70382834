package config

import (
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	// Optional keys that are not set print nothing, like git config.
	value, found := deps.Get(key)
	if !found || value == "" {
		return nil
	}

	_, _ = deps.Println(value)
	return nil
}
