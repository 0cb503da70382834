package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/usage"
)

const defaultHistoryLimit = 20

func History(args []string, flags *dispatchers.ParsedFlags) error {
	return history(args, flags, DefaultDeps())
}

func history(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	limit := historyLimit(deps)
	if v, ok := flags.Lookup("--limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return usage.InvalidValue("--limit", v)
		}
		limit = n
	}

	s, err := deps.OpenStore()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = s.Close() }()

	events, err := s.List(domain.ThemeEventFilter{
		Session: flags.String("--session", ""),
		Limit:   limit,
	})
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(events) == 0 {
		_, _ = deps.Println("no theme changes recorded")
		return nil
	}

	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "%s  %-5s -> %-5s  %-8s  %s\n",
			deps.Style.Muted(deps.FormatTime(e.At.Local())),
			e.From,
			e.To,
			e.Origin,
			deps.Style.Info(shortSession(e.Session)),
		)
	}
	deps.Pager(b.String())
	return nil
}

func historyLimit(deps Deps) int {
	v, ok := deps.Get("history_limit")
	if !ok {
		return defaultHistoryLimit
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return defaultHistoryLimit
	}
	return n
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
