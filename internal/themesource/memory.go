package themesource

import (
	"sync"

	"github.com/shadeworks/shade/internal/themectx"
)

// Memory keeps the theme in memory only. Set simulates a change made outside
// the UI, such as the OS switching to dark mode.
type Memory struct {
	mu        sync.Mutex
	mode      themectx.Mode
	listeners listeners
}

// NewMemory returns a source starting at initial.
func NewMemory(initial themectx.Mode) *Memory {
	return &Memory{mode: initial}
}

// Theme implements themectx.Source.
func (m *Memory) Theme() themectx.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// ToggleTheme implements themectx.Source.
func (m *Memory) ToggleTheme() {
	m.mu.Lock()
	m.mode = m.mode.Toggle()
	mode := m.mode
	m.mu.Unlock()

	m.listeners.notify(mode)
}

// Set replaces the mode and notifies subscribers if it changed.
func (m *Memory) Set(mode themectx.Mode) {
	m.mu.Lock()
	if m.mode == mode {
		m.mu.Unlock()
		return
	}
	m.mode = mode
	m.mu.Unlock()

	m.listeners.notify(mode)
}

// Subscribe implements themectx.Notifier.
func (m *Memory) Subscribe(fn func(themectx.Mode)) func() {
	return m.listeners.add(fn)
}

var (
	_ themectx.Source   = (*Memory)(nil)
	_ themectx.Notifier = (*Memory)(nil)
)
