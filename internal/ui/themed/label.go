package themed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/ui/style"
)

// Label shows the current theme. It is a consumer: it reads the theme and
// re-renders when the provider reports a change.
type Label struct {
	consumer
	prefix  string
	renders int
}

// NewLabel builds a Label from a context below a Provider.
// It panics when ctx has none.
func NewLabel(ctx context.Context, prefix string) *Label {
	if prefix == "" {
		prefix = "theme"
	}
	return &Label{consumer: newConsumer(ctx), prefix: prefix}
}

// Mode returns the theme the label currently shows.
func (l *Label) Mode() themectx.Mode {
	return l.mode
}

// Renders counts the theme changes the label has applied.
func (l *Label) Renders() int {
	return l.renders
}

func (l *Label) Init() tea.Cmd {
	return l.wait()
}

func (l *Label) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m, ok := msg.(ChangedMsg); ok && l.Accepts(m) {
		l.mode = m.Mode
		l.renders++
		return l, l.wait()
	}
	return l, nil
}

func (l *Label) View() string {
	s := style.For(l.mode)
	return s.Surface.Padding(0, 1).Render(l.prefix + ": " + l.mode.String())
}
