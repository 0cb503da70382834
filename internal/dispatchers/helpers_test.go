package dispatchers

import (
	"bytes"
	"fmt"
	"testing"
)

func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

// createTestTree builds:
//
//	shade [--help|-h] [--no-color]
//	  version
//	  theme
//	    show
//	    set <mode>
//	    history [--limit=N]
//	  config
//	    get <key>
//	    set <key> <value>
func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "shade",
		Summary: "Test CLI",
		Usage:   "shade <command> [flags]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--no-color"}, Description: "Disable color"},
		},
	})

	Command(CommandSpec{Name: "version", Parent: root, Summary: "Show version", Action: mockAction, Category: CategoryInfo})

	theme := Group(GroupSpec{Name: "theme", Parent: root, Summary: "Theme commands", Usage: "shade theme <command>"})
	Command(CommandSpec{Name: "show", Parent: theme, Summary: "Show theme", Action: mockAction, Category: CategoryTheme})
	Command(CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Set theme",
		Usage:    "shade theme set <mode>",
		Args:     []ArgSpec{{Name: "mode", Description: "light, dark or system", Required: true}},
		Action:   mockAction,
		Category: CategoryTheme,
	})
	Command(CommandSpec{
		Name:     "history",
		Parent:   theme,
		Summary:  "Show history",
		Flags:    []FlagDescriptor{{Names: []string{"--limit"}, ValueHint: "N", Description: "Rows", Scope: FlagScopeLocal}},
		Action:   mockAction,
		Category: CategoryTheme,
	})

	config := Group(GroupSpec{Name: "config", Parent: root, Summary: "Config commands"})
	Command(CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get value",
		Args:     []ArgSpec{{Name: "key", Required: true}},
		Action:   mockAction,
		Category: CategoryConfig,
	})
	Command(CommandSpec{
		Name:   "set",
		Parent: config,
		Args: []ArgSpec{
			{Name: "key", Required: true},
			{Name: "value", Required: true},
		},
		Summary:  "Set value",
		Action:   mockAction,
		Category: CategoryConfig,
	})

	return root
}

// bufferOutput captures help output for the duration of a test.
type bufferOutput struct {
	bytes.Buffer
}

func (b *bufferOutput) Printf(format string, args ...any) (int, error) {
	return b.WriteString(fmt.Sprintf(format, args...))
}

func (b *bufferOutput) Println(args ...any) (int, error) {
	return b.WriteString(fmt.Sprintln(args...))
}

func (b *bufferOutput) Pager(content string) {
	b.WriteString(content)
}

func captureHelp(t *testing.T) *bufferOutput {
	t.Helper()
	out := &bufferOutput{}
	prev := getHelpOutput()
	SetHelpOutput(out)
	t.Cleanup(func() { SetHelpOutput(prev) })
	return out
}
