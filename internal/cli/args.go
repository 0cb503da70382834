package cli

import "github.com/shadeworks/shade/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeModeArg = []dispatchers.ArgSpec{
		{
			Name:        "mode",
			Description: "light, dark, or system (follow the terminal background)",
			Required:    true,
		},
	}
)
