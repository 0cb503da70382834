package themed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadeworks/shade/internal/themectx"
)

// ChangedMsg carries a theme change to the consumer owning subscription Sub
// of provider Provider.
type ChangedMsg struct {
	Provider string
	Sub      uint64
	Mode     themectx.Mode
}

// Acceptor is implemented by models that take ChangedMsg. A provider only
// forwards a ChangedMsg to children that accept it.
type Acceptor interface {
	Accepts(msg ChangedMsg) bool
}

// Focusable is implemented by models that react to keys when focused.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// consumer holds the access and subscription shared by Label and ToggleButton.
type consumer struct {
	state *themectx.State
	sub   *themectx.Subscription
	mode  themectx.Mode
}

// newConsumer panics when ctx has no provider, like any render path that
// reads the theme outside a Provider.
func newConsumer(ctx context.Context) consumer {
	state := themectx.MustAccess(ctx)
	return consumer{
		state: state,
		sub:   state.Subscribe(),
		mode:  state.Theme(),
	}
}

func (c *consumer) Accepts(msg ChangedMsg) bool {
	return msg.Provider == c.state.ID() && msg.Sub == c.sub.ID()
}

// wait blocks until the next change. A closed subscription ends the loop.
func (c *consumer) wait() tea.Cmd {
	providerID := c.state.ID()
	sub := c.sub
	return func() tea.Msg {
		mode, ok := <-sub.C()
		if !ok {
			return nil
		}
		return ChangedMsg{Provider: providerID, Sub: sub.ID(), Mode: mode}
	}
}
