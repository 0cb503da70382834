package actions

import "github.com/shadeworks/shade/internal/dispatchers"

// ShowVersion prints the build version followed by the Go toolchain and platform.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultVersionDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps versionDeps) error {
	_, _ = deps.Printf("shade %v (%s)\n", deps.Version(), deps.Platform())
	return nil
}
