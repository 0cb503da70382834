package themed

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/ui/style"
)

// Provider is a bubbletea model that owns a themectx provider and the
// children built below it.
type Provider struct {
	ctx     context.Context
	state   *themectx.State
	unmount func()

	children []tea.Model
	focus    int

	title   string
	keys    KeyMap
	help    help.Model
	root    bool
	ctxOpts []themectx.Option
	closed  bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithTitle sets the heading shown above the children.
func WithTitle(title string) Option {
	return func(p *Provider) { p.title = title }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(p *Provider) { p.keys = keys }
}

// WithThemeOptions passes options to themectx.Provide.
func WithThemeOptions(opts ...themectx.Option) Option {
	return func(p *Provider) { p.ctxOpts = append(p.ctxOpts, opts...) }
}

// NewProvider mounts a theme provider over src below parent and builds the
// children from the scoped context. A provider with no provider above it is
// the root: it handles tab and quit keys and renders the help footer.
func NewProvider(parent context.Context, src themectx.Source, build func(ctx context.Context) []tea.Model, opts ...Option) *Provider {
	p := &Provider{
		keys:  DefaultKeyMap(),
		help:  help.New(),
		focus: -1,
	}
	for _, opt := range opts {
		opt(p)
	}

	_, err := themectx.Access(parent)
	p.root = err != nil

	p.ctx, p.unmount = themectx.Provide(parent, src, p.ctxOpts...)
	p.state = themectx.MustAccess(p.ctx)

	if build != nil {
		p.children = build(p.ctx)
	}
	if p.root {
		p.focusFirst()
	}
	return p
}

// Context returns the context children were built from.
func (p *Provider) Context() context.Context {
	return p.ctx
}

// State returns the theme state this provider publishes.
func (p *Provider) State() *themectx.State {
	return p.state
}

// Children returns the child models.
func (p *Provider) Children() []tea.Model {
	return p.children
}

// Close unmounts this provider and any nested ones. Pending subscriptions are
// closed, which ends their wait commands.
func (p *Provider) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, child := range p.children {
		if nested, ok := child.(*Provider); ok {
			nested.Close()
		}
	}
	p.unmount()
}

// Accepts reports whether a child of p, at any depth, owns msg's subscription.
func (p *Provider) Accepts(msg ChangedMsg) bool {
	for _, child := range p.children {
		if a, ok := child.(Acceptor); ok && a.Accepts(msg) {
			return true
		}
	}
	return false
}

func (p *Provider) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(p.children))
	for _, child := range p.children {
		cmds = append(cmds, child.Init())
	}
	return tea.Batch(cmds...)
}

func (p *Provider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChangedMsg:
		return p, p.route(msg)

	case tea.KeyMsg:
		if p.root {
			switch {
			case key.Matches(msg, p.keys.Quit):
				return p, tea.Quit
			case key.Matches(msg, p.keys.Next):
				if !p.advance() {
					p.focusFirst()
				}
				return p, nil
			}
		}
		if p.focus < 0 {
			return p, nil
		}
		return p, p.updateChild(p.focus, msg)

	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
	}

	cmds := make([]tea.Cmd, 0, len(p.children))
	for i := range p.children {
		cmds = append(cmds, p.updateChild(i, msg))
	}
	return p, tea.Batch(cmds...)
}

// route hands msg to the one child that owns the subscription.
func (p *Provider) route(msg ChangedMsg) tea.Cmd {
	for i, child := range p.children {
		if a, ok := child.(Acceptor); ok && a.Accepts(msg) {
			return p.updateChild(i, msg)
		}
	}
	return nil
}

func (p *Provider) updateChild(i int, msg tea.Msg) tea.Cmd {
	model, cmd := p.children[i].Update(msg)
	p.children[i] = model
	return cmd
}

func (p *Provider) View() string {
	s := style.For(p.state.Theme())

	var b strings.Builder
	if p.title != "" {
		b.WriteString(s.Header.Render(p.title))
		b.WriteString("\n\n")
	}
	for i, child := range p.children {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(child.View())
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Palette.Muted)).
		Padding(0, 1)
	out := frame.Render(b.String())

	if p.root {
		out += "\n" + p.help.View(p.keys)
	}
	return out
}

// Focus, Blur and Focused make a nested provider focusable as a whole.

func (p *Provider) Focus() {
	if p.focus < 0 {
		p.focusFirst()
	}
}

func (p *Provider) Blur() {
	p.setFocus(-1)
}

func (p *Provider) Focused() bool {
	return p.focus >= 0
}

func (p *Provider) hasFocusable() bool {
	for _, child := range p.children {
		if isFocusable(child) {
			return true
		}
	}
	return false
}

func isFocusable(m tea.Model) bool {
	if nested, ok := m.(*Provider); ok {
		return nested.hasFocusable()
	}
	_, ok := m.(Focusable)
	return ok
}

func (p *Provider) focusFirst() {
	p.setFocus(-1)
	for i, child := range p.children {
		if isFocusable(child) {
			p.setFocus(i)
			return
		}
	}
}

// advance moves focus to the next focusable child, descending into nested
// providers first. It returns false once focus runs past the last child.
func (p *Provider) advance() bool {
	if p.focus >= 0 {
		if nested, ok := p.children[p.focus].(*Provider); ok && nested.advance() {
			return true
		}
	}
	for i := p.focus + 1; i < len(p.children); i++ {
		if isFocusable(p.children[i]) {
			p.setFocus(i)
			return true
		}
	}
	return false
}

func (p *Provider) setFocus(i int) {
	if p.focus >= 0 {
		if f, ok := p.children[p.focus].(Focusable); ok {
			f.Blur()
		}
	}
	p.focus = i
	if i >= 0 {
		if f, ok := p.children[i].(Focusable); ok {
			f.Focus()
		}
	}
}

var (
	_ tea.Model = (*Provider)(nil)
	_ tea.Model = (*Label)(nil)
	_ tea.Model = (*ToggleButton)(nil)
	_ tea.Model = (*Static)(nil)
	_ Acceptor  = (*Provider)(nil)
	_ Acceptor  = (*Label)(nil)
	_ Acceptor  = (*ToggleButton)(nil)
	_ Focusable = (*ToggleButton)(nil)
	_ Focusable = (*Provider)(nil)
)
