package cli

import "github.com/shadeworks/shade/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	HistoryFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Show at most n changes (default: history_limit)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--session"},
			ValueHint:   "<id>",
			Description: "Only show changes made by one session",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
