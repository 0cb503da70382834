package themesource_test

import (
	"bytes"
	"errors"
	"sync"

	"github.com/shadeworks/shade/internal/domain"
	"github.com/shadeworks/shade/internal/log"
)

type fakeConfig struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
	sets   int
}

func newFakeConfig(values map[string]string) *fakeConfig {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeConfig{values: values}
}

func (f *fakeConfig) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

type fakeStore struct {
	mu        sync.Mutex
	events    []domain.ThemeEvent
	insertErr error
}

func (f *fakeStore) Insert(event domain.ThemeEvent) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event.ID, nil
}

func (f *fakeStore) List(domain.ThemeEventFilter) ([]domain.ThemeEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ThemeEvent(nil), f.events...), nil
}

func (f *fakeStore) CountBySession(session string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, e := range f.events {
		if e.Session == session {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Close() error { return nil }

var errBoom = errors.New("boom")

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWriter(&buf, log.LevelDebug), &buf
}

func noEnv(string) string { return "" }
