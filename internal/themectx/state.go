package themectx

import "sync"

// State is the theme shared by every consumer below one provider. Consumers
// hold a non-owning reference: they may read it and call ToggleTheme, but only
// the provider (through its source) ever assigns the mode.
type State struct {
	id     string
	src    Source
	logger Logger

	// toggleMu serializes ToggleTheme so two toggles never interleave with the
	// source. refreshMu serializes reading the source and publishing what it
	// read. mu guards the fields below and is never held while calling src.
	toggleMu  sync.Mutex
	refreshMu sync.Mutex

	mu         sync.Mutex
	mode       Mode
	mounted    bool
	nextSubID  uint64
	subs       map[uint64]*Subscription
	stopSource func()
	unmountOne sync.Once
}

// ID identifies this mount.
func (s *State) ID() string {
	return s.id
}

// Theme returns the current mode.
func (s *State) Theme() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Mounted reports whether the provider that owns s is still mounted.
func (s *State) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// ToggleTheme asks the source to flip the theme, then publishes the value the
// source reports. It does nothing once the provider has been unmounted.
func (s *State) ToggleTheme() {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	if !s.Mounted() {
		s.logger.Debug("themectx: toggle ignored, provider %s unmounted", s.id)
		return
	}

	from := s.Theme()
	s.src.ToggleTheme()
	s.refresh()

	s.logger.Debug("themectx: provider %s toggled %s -> %s", s.id, from, s.Theme())
}

// Subscribe registers a consumer for change notifications. A subscription
// taken after unmount is already closed.
func (s *State) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	sub := newSubscription(s.nextSubID, s)
	if !s.mounted {
		sub.close()
		return sub
	}
	s.subs[sub.id] = sub
	return sub
}

// Subscribers returns the number of open subscriptions.
func (s *State) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// refresh publishes the value the source holds now. Notifications may arrive
// out of order, so their payload is ignored: the last refresh to run always
// reads the latest value.
func (s *State) refresh() {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	s.set(s.src.Theme())
}

// set stores mode and notifies subscribers when it changed.
func (s *State) set(mode Mode) {
	s.mu.Lock()
	if !s.mounted || mode == s.mode {
		s.mu.Unlock()
		return
	}
	s.mode = mode
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(mode)
	}
}

func (s *State) unsubscribe(id uint64) {
	s.mu.Lock()
	delete(s.subs, id)
	s.mu.Unlock()
}

func (s *State) unmount() {
	s.unmountOne.Do(func() {
		s.mu.Lock()
		s.mounted = false
		subs := s.subs
		s.subs = make(map[uint64]*Subscription)
		stop := s.stopSource
		s.stopSource = nil
		s.mu.Unlock()

		for _, sub := range subs {
			sub.close()
		}
		if stop != nil {
			stop()
		}

		s.logger.Debug("themectx: unmounted provider %s", s.id)
	})
}
