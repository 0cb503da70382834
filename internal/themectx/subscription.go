package themectx

import "sync"

// Subscription delivers theme changes to one consumer. Only the latest value
// is kept: a change that has not been received yet is replaced by a newer one,
// so the provider never blocks on a slow consumer.
type Subscription struct {
	id    uint64
	state *State
	ch    chan Mode

	mu     sync.Mutex
	closed bool
}

func newSubscription(id uint64, state *State) *Subscription {
	return &Subscription{
		id:    id,
		state: state,
		ch:    make(chan Mode, 1),
	}
}

// ID is unique among the subscriptions of one provider.
func (sub *Subscription) ID() uint64 {
	return sub.id
}

// C receives every published change. It is closed on Close or unmount.
func (sub *Subscription) C() <-chan Mode {
	return sub.ch
}

// Close stops delivery. It is safe to call more than once.
func (sub *Subscription) Close() {
	sub.state.unsubscribe(sub.id)
	sub.close()
}

func (sub *Subscription) deliver(mode Mode) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}
	// Senders hold mu, so after the drain there is always room.
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- mode
}

func (sub *Subscription) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.ch)
}
