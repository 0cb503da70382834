package themed

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadeworks/shade/internal/ui/style"
)

// ToggleButton flips the theme of its provider when activated.
type ToggleButton struct {
	consumer
	keys    KeyMap
	focused bool
}

// NewToggleButton builds a button from a context below a Provider.
// It panics when ctx has none.
func NewToggleButton(ctx context.Context) *ToggleButton {
	return &ToggleButton{consumer: newConsumer(ctx), keys: DefaultKeyMap()}
}

func (b *ToggleButton) Focus()        { b.focused = true }
func (b *ToggleButton) Blur()         { b.focused = false }
func (b *ToggleButton) Focused() bool { return b.focused }

func (b *ToggleButton) Init() tea.Cmd {
	return b.wait()
}

func (b *ToggleButton) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.focused && key.Matches(msg, b.keys.Toggle) {
			b.state.ToggleTheme()
		}
	case ChangedMsg:
		if b.Accepts(msg) {
			b.mode = msg.Mode
			return b, b.wait()
		}
	}
	return b, nil
}

func (b *ToggleButton) View() string {
	s := style.For(b.mode)
	text := "[ switch to " + b.mode.Toggle().String() + " ]"
	if b.focused {
		return s.Accent.Bold(true).Render("> " + text)
	}
	return s.Muted.Render("  " + text)
}
