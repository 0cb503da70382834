package theme

import (
	"context"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/themectx"
	"github.com/shadeworks/shade/internal/themesource"
)

// openHistory opens the history store. Commands that change the theme keep
// working without it, so a failure is only logged.
func openHistory(deps Deps) domain.ThemeEventStore {
	if deps.OpenStore == nil {
		return nil
	}
	s, err := deps.OpenStore()
	if err != nil {
		deps.Logger.Warn("theme: history unavailable: %v", err)
		return nil
	}
	return s
}

func closeHistory(s domain.ThemeEventStore) {
	if s != nil {
		_ = s.Close()
	}
}

// session is one command's view of the theme: the persisted source wrapped
// for history, mounted below a provider.
type session struct {
	source  *themesource.Config
	rec     *themesource.Recording
	history domain.ThemeEventStore
	ctx     context.Context
	unmount func()
}

func mount(deps Deps) *session {
	s := &session{
		source:  deps.NewSource(),
		history: openHistory(deps),
	}
	s.rec = themesource.NewRecording(s.source, s.history, themesource.WithRecordingLogger(deps.Logger))
	s.ctx, s.unmount = themectx.Provide(
		context.Background(),
		s.rec,
		themectx.WithLogger(deps.Logger),
		themectx.WithID(s.rec.Session()),
	)
	return s
}

func (s *session) close() {
	s.unmount()
	s.rec.Close()
	closeHistory(s.history)
}
