package themectx

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMissingProvider is returned by Access when the context has no mounted
// provider in its ancestry. It signals a wiring mistake in the caller.
var ErrMissingProvider = errors.New("themectx: no theme provider in context")

type ctxKey struct{}

// Option configures a provider at mount time.
type Option func(*State)

// WithLogger sets the logger used for mount, unmount and toggle events.
func WithLogger(l Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID overrides the generated mount ID.
func WithID(id string) Option {
	return func(s *State) {
		if id != "" {
			s.id = id
		}
	}
}

// Provide mounts a theme provider below parent and returns the context its
// consumers must be built from, together with the func that unmounts it.
//
// The source is asked for its theme exactly once here. Later values come from
// ToggleTheme or, when src implements Notifier, from its notifications.
// Providers nest: Access resolves to the innermost one.
func Provide(parent context.Context, src Source, opts ...Option) (context.Context, func()) {
	if parent == nil {
		panic("themectx: nil parent context")
	}
	if src == nil {
		panic("themectx: nil theme source")
	}

	s := &State{
		id:      uuid.NewString(),
		src:     src,
		logger:  nopLogger{},
		mounted: true,
		subs:    make(map[uint64]*Subscription),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mode = src.Theme()
	if n, ok := src.(Notifier); ok {
		s.stopSource = n.Subscribe(func(Mode) { s.refresh() })
	}

	s.logger.Debug("themectx: mounted provider %s (theme=%s)", s.id, s.mode)

	return context.WithValue(parent, ctxKey{}, s), s.unmount
}

// Access returns the state published by the nearest enclosing Provide.
func Access(ctx context.Context) (*State, error) {
	if ctx == nil {
		return nil, ErrMissingProvider
	}
	s, ok := ctx.Value(ctxKey{}).(*State)
	if !ok || s == nil || !s.Mounted() {
		return nil, ErrMissingProvider
	}
	return s, nil
}

// MustAccess is like Access but panics when no provider is mounted.
func MustAccess(ctx context.Context) *State {
	s, err := Access(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
