package themesource

import (
	"sync"

	"github.com/shadeworks/shade/internal/themectx"
)

// listeners fans a mode change out to subscribed callbacks.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(themectx.Mode)
}

func (l *listeners) add(fn func(themectx.Mode)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(themectx.Mode))
	}
	l.next++
	id := l.next
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// notify calls every callback outside the lock so callbacks may subscribe or
// cancel without deadlocking.
func (l *listeners) notify(mode themectx.Mode) {
	l.mu.Lock()
	fns := make([]func(themectx.Mode), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
}
