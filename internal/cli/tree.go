package cli

import (
	"github.com/shadeworks/shade/internal/actions"
	configactions "github.com/shadeworks/shade/internal/actions/config"
	themeactions "github.com/shadeworks/shade/internal/actions/theme"
	"github.com/shadeworks/shade/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "shade",
		Summary: "Light and dark theme state for terminal UIs",
		Usage:   "shade <command> [flags]",
		Flags:   RootFlags,
	})

	addThemeCommands(root)
	addConfigCommands(root)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show shade version",
		Usage:    "shade version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "Show help for a command",
		Usage:    "shade help [command]",
		Category: dispatchers.CategoryInfo,
	})

	return root
}

func addThemeCommands(root *dispatchers.DispatchNode) {
	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Show and change the light/dark theme",
		Description: `The theme is read once when a command starts and shared by everything
that command draws. The "theme" config key holds light, dark, or system;
system follows the terminal background. SHADE_THEME overrides the key.`,
		Usage: "shade theme <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "show",
		Parent:   theme,
		Summary:  "Show the current theme",
		Usage:    "shade theme show",
		Action:   themeactions.Show,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "toggle",
		Parent:      theme,
		Summary:     "Switch between light and dark",
		Description: "Stores the resulting mode, so a \"system\" preference becomes explicit.",
		Usage:       "shade theme toggle",
		Action:      themeactions.Toggle,
		Category:    dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Set the theme preference",
		Usage:    "shade theme set <light|dark|system>",
		Args:     ThemeModeArg,
		Action:   themeactions.Set,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   theme,
		Summary:  "List theme modes with a color preview",
		Usage:    "shade theme list",
		Action:   themeactions.List,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "demo",
		Parent:  theme,
		Summary: "Try the theme in an interactive UI",
		Description: `Opens a small UI whose labels follow the theme of their provider.
A nested panel has its own provider and toggles independently.`,
		Usage:    "shade theme demo",
		Action:   themeactions.Demo,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "history",
		Parent:   theme,
		Summary:  "Show recent theme changes",
		Usage:    "shade theme history [--limit=<n>] [--session=<id>]",
		Flags:    HistoryFlags,
		Action:   themeactions.History,
		Category: dispatchers.CategoryTheme,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "shade config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "shade config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "shade config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "shade config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List config values",
		Usage:    "shade config list",
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})
}
