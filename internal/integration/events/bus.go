// Package events implements the change-notification bus that lets
// observers react to store mutations without polling.
package events

import (
	"sync"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// Bus is an in-process publish/subscribe channel keyed by entity kind.
// Publish never blocks on observer execution; each subscriber receives
// events in commit order through its own queue, at least once per
// mutation.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
}

type subscriber struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []adapter.ChangeKind
	done  bool
	ch    chan adapter.ChangeKind
}

// NewBus creates a new change-notification bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]*subscriber),
	}
}

// Publish delivers the kind to every current subscriber. It only
// appends to per-subscriber queues, so a slow observer never stalls the
// mutating caller.
func (b *Bus) Publish(kind adapter.ChangeKind) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.mu.Lock()
		if !s.done {
			s.queue = append(s.queue, kind)
			s.cond.Signal()
		}
		s.mu.Unlock()
	}
}

// Subscribe registers an observer and returns its event channel along
// with an unsubscribe function. The channel is closed on unsubscribe or
// bus close.
func (b *Bus) Subscribe() (<-chan adapter.ChangeKind, func()) {
	s := &subscriber{
		ch: make(chan adapter.ChangeKind),
	}
	s.cond = sync.NewCond(&s.mu)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = s
	b.mu.Unlock()

	go s.forward()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			s.stop()
		})
	}
	return s.ch, cancel
}

// Close shuts the bus down and releases every subscriber.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := make([]*subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.subs = make(map[int]*subscriber)
	b.mu.Unlock()

	for _, s := range subs {
		s.stop()
	}
}

// forward drains the queue into the subscriber channel in FIFO order.
// The blocking send only ever blocks this goroutine, not publishers.
func (s *subscriber) forward() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.done {
			s.cond.Wait()
		}
		if s.done && len(s.queue) == 0 {
			s.mu.Unlock()
			close(s.ch)
			return
		}
		kind := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		s.ch <- kind
	}
}

func (s *subscriber) stop() {
	s.mu.Lock()
	s.done = true
	s.queue = nil
	s.cond.Signal()
	s.mu.Unlock()

	// Drain so the forwarding goroutine can observe done even while
	// blocked on a send nobody is reading.
	go func() {
		for range s.ch {
		}
	}()
}
