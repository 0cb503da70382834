package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/ui"
	"github.com/shadeworks/shade/internal/ui/style"
)

var (
	helpOutputMu sync.RWMutex
	helpOutput   domain.OutputWriter = ui.NewWriter()
)

// SetHelpOutput sets where help is written. main installs the configured
// writer so help honours --no-pager.
func SetHelpOutput(w domain.OutputWriter) {
	helpOutputMu.Lock()
	defer helpOutputMu.Unlock()
	helpOutput = w
}

func getHelpOutput() domain.OutputWriter {
	helpOutputMu.RLock()
	defer helpOutputMu.RUnlock()
	return helpOutput
}

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"theme show":    1,
	"theme toggle":  2,
	"theme set":     3,
	"theme list":    4,
	"theme demo":    5,
	"theme history": 6,
	"config get":    1,
	"config set":    2,
	"config unset":  3,
	"config list":   4,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(strings.TrimSpace(usage))
	}
	return style.Info(strings.TrimSpace(usage[:cmdEnd])) + " " + style.Muted(usage[cmdEnd:])
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func displayName(node *DispatchNode) string {
	return strings.Join(node.Path[1:], " ")
}

// sortForDisplay orders nodes by commandDisplayOrder, then alphabetically.
func sortForDisplay(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI, nameJ := displayName(nodes[i]), displayName(nodes[j])
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		switch {
		case hasI && hasJ:
			return orderI < orderJ
		case hasI:
			return true
		case hasJ:
			return false
		}
		return nameI < nameJ
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		var text string
		if node == root {
			text = rootHelp(root)
		} else {
			text = nodeHelp(node, root)
		}
		getHelpOutput().Pager(text)
		return nil
	}
}

func rootHelp(root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(root.Name + " - " + root.Summary + "\n\n")
	out.WriteString("USAGE\n   " + formatUsage(root.Usage) + "\n\n")

	var leaves []*DispatchNode
	for _, child := range root.Children {
		collectLeafCommands(child, &leaves)
	}

	grouped := make(map[CommandCategory][]*DispatchNode)
	for _, cmd := range leaves {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(cat.String() + "\n")
		sortForDisplay(cmds)
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName(cmd))), cmd.Summary)
		}
		out.WriteString("\n")
	}

	if len(root.Flags) > 0 {
		out.WriteString("GLOBAL FLAGS\n")
		writeFlags(&out, root.Flags)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
	return out.String()
}

func nodeHelp(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - " + node.Summary)
	}
	out.WriteString("\n\n")

	if node.Usage != "" {
		out.WriteString("USAGE\n   " + formatUsage(node.Usage) + "\n\n")
	}

	if node.Description != "" {
		out.WriteString(node.Description + "\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		out.WriteString("FLAGS\n")
		writeFlags(&out, node.Flags)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name += "=" + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
}
