package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/shadeworks/shade/internal/actions"
	"github.com/shadeworks/shade/internal/app"
	"github.com/shadeworks/shade/internal/cli"
	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/usage"
)

// valueFlags take their value from the next argument when not given as
// --flag=value.
var valueFlags = map[string]string{
	"--limit":   "--limit",
	"-n":        "--limit",
	"--session": "--session",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	opts := app.DefaultOptions()
	opts.PagerDisabled = flags.Has("--no-pager")
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")

	application, err := app.New(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	defer func() { _ = app.Close(application) }()

	dispatchers.SetHelpOutput(application.Output)
	application.Logger.Debug("shade %s (theme %s)", strings.Join(args, " "), application.Theme)

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		if err := actions.ShowVersion(nil, flags); err != nil {
			return report(stderr, err)
		}
		return 0
	}

	res, err := dispatchers.Dispatch(cli.BuildTree(), commands, flags)
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		application.Logger.Error("shade %s: %v", strings.Join(commands, " "), err)
		return report(stderr, err)
	}

	// Non-zero when help stood in for a missing command (bare "shade").
	return res.ExitCode
}

func report(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags and command tokens.
// "--limit 5", "-n 5" and "-5" all become "--limit=5".
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "" || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if n, err := strconv.Atoi(a[1:]); err == nil && n > 0 && !strings.HasPrefix(a, "--") {
			flags = append(flags, "--limit="+strconv.Itoa(n))
			continue
		}

		if name, ok := valueFlags[a]; ok && i+1 < len(args) {
			flags = append(flags, name+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
