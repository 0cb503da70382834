package dispatchers

import (
	"slices"
	"strings"

	"github.com/shadeworks/shade/internal/usage"
)

const suggestionLimit = 3

// Dispatch resolves tokens against the command tree rooted at root.
//
// Tokens are consumed while they name subcommands; whatever follows is passed
// to the command as positional arguments. "help" anywhere in tokens, or
// --help/-h in flags, turns the resolution into the help page of the command
// it names.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if flags == nil {
		flags = NewParsedFlags(nil)
	}

	if i := slices.Index(tokens, "help"); i >= 0 {
		return dispatchHelp(root, helpTopic(tokens, i), flags)
	}

	node, args, err := descend(root, tokens)
	if err != nil {
		return Resolution{}, err
	}

	if flags.Has("--help") || flags.Has("-h") {
		return helpResolution(node, root, flags, 0), nil
	}

	if err := checkFlags(flags, root, node); err != nil {
		return Resolution{}, err
	}

	if node.Action == nil {
		// A bare "shade" prints help but still fails, so scripts notice.
		code := 0
		if node == root && len(tokens) == 0 {
			code = 1
		}
		return helpResolution(node, root, flags, code), nil
	}

	for i, arg := range node.Args {
		if arg.Required && i >= len(args) {
			return Resolution{}, usage.MissingArgument(arg.Name)
		}
	}

	return Resolution{Node: node, Args: args, Flags: flags, Execute: node.Action}, nil
}

// helpTopic returns the command path "help" at index i refers to: the tokens
// after it ("shade help theme set") or, when there are none, the tokens before
// it ("shade theme set help").
func helpTopic(tokens []string, i int) []string {
	if after := tokens[i+1:]; len(after) > 0 {
		return after
	}
	return tokens[:i]
}

func dispatchHelp(root *DispatchNode, topic []string, flags *ParsedFlags) (Resolution, error) {
	node, rest := walk(root, topic)
	if len(rest) > 0 {
		return Resolution{}, usage.UnknownCommand(strings.Join(topic, " "),
			FindSimilarCommands(rest[0], node, suggestionLimit)...)
	}
	return helpResolution(node, root, flags, 0), nil
}

func helpResolution(node, root *DispatchNode, flags *ParsedFlags, code int) Resolution {
	return Resolution{Node: node, Flags: flags, Execute: HelpAction(node, root), ExitCode: code}
}

// descend walks tokens down from root. A token that matches nothing below a
// group is a mistyped subcommand; below a command it starts the arguments.
func descend(root *DispatchNode, tokens []string) (*DispatchNode, []string, error) {
	node, rest := walk(root, tokens)
	if len(rest) == 0 || node.Action != nil || len(node.Children) == 0 {
		return node, rest, nil
	}

	typed := append(slices.Clone(node.Path[1:]), rest[0])
	return nil, nil, usage.UnknownCommand(strings.Join(typed, " "),
		FindSimilarCommands(rest[0], node, suggestionLimit)...)
}

// walk follows path as far as the tree goes and returns the last node reached
// with the tokens it could not match.
func walk(root *DispatchNode, path []string) (*DispatchNode, []string) {
	node := root
	for i, name := range path {
		child, ok := node.Children[name]
		if !ok {
			return node, path[i:]
		}
		node = child
	}
	return node, nil
}

// checkFlags rejects any flag that neither the root nor node declares.
func checkFlags(flags *ParsedFlags, root, node *DispatchNode) error {
	known := make(map[string]bool)
	for _, f := range slices.Concat(root.Flags, node.Flags) {
		for _, name := range f.Names {
			known[name] = true
		}
	}

	for _, raw := range flags.Raw() {
		name, _, _ := strings.Cut(raw, "=")
		if !known[name] {
			return usage.InvalidFlag(raw)
		}
	}
	return nil
}
