package themesource

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/log"
	"github.com/shadeworks/shade/internal/themectx"
)

// Recording wraps a source and writes every change to the history store.
// Store failures are logged; they never stop a toggle.
type Recording struct {
	inner   themectx.Source
	store   domain.ThemeEventStore
	logger  domain.Logger
	session string
	now     func() time.Time

	toggleMu sync.Mutex

	mu       sync.Mutex
	last     themectx.Mode
	toggling bool
	stop     func()
}

// RecordingOption configures a Recording source.
type RecordingOption func(*Recording)

// WithSession sets the session ID written with each event.
func WithSession(id string) RecordingOption {
	return func(r *Recording) {
		if id != "" {
			r.session = id
		}
	}
}

// WithRecordingLogger sets the logger used for store failures.
func WithRecordingLogger(l domain.Logger) RecordingOption {
	return func(r *Recording) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) RecordingOption {
	return func(r *Recording) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecording wraps inner. When inner is a themectx.Notifier, changes it makes
// on its own are recorded as external.
func NewRecording(inner themectx.Source, store domain.ThemeEventStore, opts ...RecordingOption) *Recording {
	r := &Recording{
		inner:   inner,
		store:   store,
		logger:  log.NopLogger{},
		session: uuid.NewString(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.last = inner.Theme()
	if n, ok := inner.(themectx.Notifier); ok {
		r.stop = n.Subscribe(r.observe)
	}
	return r
}

// Session returns the session ID written with each event.
func (r *Recording) Session() string {
	return r.session
}

// Theme implements themectx.Source.
func (r *Recording) Theme() themectx.Mode {
	return r.inner.Theme()
}

// ToggleTheme implements themectx.Source.
func (r *Recording) ToggleTheme() {
	r.toggleMu.Lock()
	defer r.toggleMu.Unlock()

	r.mu.Lock()
	from := r.last
	r.toggling = true
	r.mu.Unlock()

	r.inner.ToggleTheme()
	to := r.inner.Theme()

	r.mu.Lock()
	r.toggling = false
	r.last = to
	r.mu.Unlock()

	r.record(from, to, domain.OriginToggle)
}

// Subscribe implements themectx.Notifier by forwarding to the inner source.
func (r *Recording) Subscribe(fn func(themectx.Mode)) func() {
	if n, ok := r.inner.(themectx.Notifier); ok {
		return n.Subscribe(fn)
	}
	return func() {}
}

// Close stops observing the inner source.
func (r *Recording) Close() {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// observe records changes the inner source makes outside ToggleTheme.
func (r *Recording) observe(mode themectx.Mode) {
	r.mu.Lock()
	if r.toggling || mode == r.last {
		r.mu.Unlock()
		return
	}
	from := r.last
	r.last = mode
	r.mu.Unlock()

	r.record(from, mode, domain.OriginExternal)
}

func (r *Recording) record(from, to themectx.Mode, origin domain.Origin) {
	if r.store == nil {
		return
	}
	_, err := r.store.Insert(domain.ThemeEvent{
		Session: r.session,
		From:    from,
		To:      to,
		Origin:  origin,
		At:      r.now().UTC(),
	})
	if err != nil {
		r.logger.Warn("themesource: could not record theme change %s -> %s: %v", from, to, err)
	}
}

var (
	_ themectx.Source   = (*Recording)(nil)
	_ themectx.Notifier = (*Recording)(nil)
)
