package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatUsage(t *testing.T) {
	require.Equal(t, "shade version", formatUsage("shade version"))
	require.Equal(t, "shade config set <key> <value>", formatUsage("shade config set <key> <value>"))
	require.Equal(t, "shade theme history [--limit=N]", formatUsage("shade theme history [--limit=N]"))
}

func TestCollectLeafCommands(t *testing.T) {
	var leaves []*DispatchNode
	collectLeafCommands(createTestTree(), &leaves)
	require.Len(t, leaves, 6)
}

func TestHelpAction_Root(t *testing.T) {
	root := createTestTree()
	out := captureHelp(t)

	require.NoError(t, HelpAction(root, root)(nil, nil))
	text := out.String()

	require.Contains(t, text, "shade - Test CLI")
	require.Contains(t, text, "USAGE\n   shade <command> [flags]")
	require.Contains(t, text, CategoryTheme.String())
	require.Contains(t, text, CategoryConfig.String())
	require.Contains(t, text, "GLOBAL FLAGS")
	require.Contains(t, text, "--help, -h")

	// Theme commands follow the explicit display order.
	show := strings.Index(text, "theme show")
	set := strings.Index(text, "theme set")
	history := strings.Index(text, "theme history")
	require.True(t, show < set && set < history, text)

	// Categories follow categoryOrder.
	require.Less(t, strings.Index(text, CategoryTheme.String()), strings.Index(text, CategoryInfo.String()))
}

func TestHelpAction_Group(t *testing.T) {
	root := createTestTree()
	out := captureHelp(t)

	require.NoError(t, HelpAction(root.Children["theme"], root)(nil, nil))
	text := out.String()

	require.Contains(t, text, "shade theme - Theme commands")
	require.Contains(t, text, "COMMANDS")
	require.Contains(t, text, "show")
	require.Contains(t, text, "See 'shade help <command>'")
}

func TestHelpAction_CommandWithArgsAndFlags(t *testing.T) {
	root := createTestTree()
	theme := root.Children["theme"]
	out := captureHelp(t)

	require.NoError(t, HelpAction(theme.Children["set"], root)(nil, nil))
	require.Contains(t, out.String(), "ARGUMENTS")
	require.Contains(t, out.String(), "<mode>")

	out.Reset()
	require.NoError(t, HelpAction(theme.Children["history"], root)(nil, nil))
	require.Contains(t, out.String(), "FLAGS")
	require.Contains(t, out.String(), "--limit=N")
}
