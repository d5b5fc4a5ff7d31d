package core

import "sync"

// ResizeSignal fans a resize notification out to its subscribers.
// Notifications are delivered synchronously, in subscription order.
type ResizeSignal struct {
	mu     sync.Mutex
	nextID int
	subs   []resizeSub
}

type resizeSub struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
func (s *ResizeSignal) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, resizeSub{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *ResizeSignal) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Notify calls every subscriber once.
func (s *ResizeSignal) Notify() {
	s.mu.Lock()
	subs := make([]resizeSub, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Len returns the number of live subscriptions.
func (s *ResizeSignal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
