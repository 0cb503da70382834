package theme

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadeworks/shade/internal/dispatchers"
	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/themesource"
	"github.com/shadeworks/shade/internal/ui/themed"
	"github.com/shadeworks/shade/internal/usage"
)

func Demo(args []string, flags *dispatchers.ParsedFlags) error {
	return demo(args, flags, DefaultDeps())
}

func demo(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if !deps.IsTerminal() {
		return usage.NotInteractive("theme demo")
	}

	root := buildDemo(deps)
	defer root.close()

	return deps.RunProgram(root.provider)
}

type demoTree struct {
	provider *themed.Provider
	rec      *themesource.Recording
	history  domain.ThemeEventStore
}

// buildDemo mounts the persisted source at the root and an in-memory source,
// starting on the other mode, in a nested provider. Toggles in the nested
// panel never reach the root.
func buildDemo(deps Deps) *demoTree {
	src := deps.NewSource()
	history := openHistory(deps)
	rec := themesource.NewRecording(src, history, themesource.WithRecordingLogger(deps.Logger))

	nested := themesource.NewMemory(src.Theme().Toggle())

	provider := themed.NewProvider(context.Background(), rec, func(ctx context.Context) []tea.Model {
		return []tea.Model{
			themed.NewLabel(ctx, "theme"),
			themed.NewToggleButton(ctx),
			themed.NewStatic("This line does not read the theme."),
			themed.NewProvider(ctx, nested, func(inner context.Context) []tea.Model {
				return []tea.Model{
					themed.NewLabel(inner, "nested"),
					themed.NewToggleButton(inner),
				}
			}, themed.WithTitle("nested provider (not persisted)"),
				themed.WithThemeOptions(themectx.WithLogger(deps.Logger))),
		}
	},
		themed.WithTitle("shade"),
		themed.WithThemeOptions(themectx.WithLogger(deps.Logger), themectx.WithID(rec.Session())),
	)

	return &demoTree{provider: provider, rec: rec, history: history}
}

func (t *demoTree) close() {
	t.provider.Close()
	t.rec.Close()
	closeHistory(t.history)
}
