// Package modal holds process-wide open/closed state for the client's
// overlay dialogs, so unrelated features can raise a dialog without
// owning any rendering concerns. The store has no notion of which
// dialogs exclude each other; flows that need a close-then-open pair
// perform it explicitly.
package modal

import "sync"

// ID names a dialog. The set is fixed at construction.
type ID string

const (
	ForgotPassword        ID = "forgotPassword"
	ForgotPasswordSuccess ID = "forgotPasswordSuccess"
	ProfileImage          ID = "profileImage"
	ProfileInterests      ID = "profileInterests"
)

// Known lists every dialog id the store tracks.
func Known() []ID {
	return []ID{ForgotPassword, ForgotPasswordSuccess, ProfileImage, ProfileInterests}
}

// Subscriber receives the full open/closed snapshot after a change.
type Subscriber func(map[ID]bool)

type subscription struct {
	id int
	fn Subscriber
}

// Store tracks dialog visibility. All entries exist from construction,
// start closed, and live until process teardown.
type Store struct {
	mu      sync.Mutex
	open    map[ID]bool
	subs    []subscription
	nextSub int
}

func New() *Store {
	open := make(map[ID]bool, len(Known()))
	for _, id := range Known() {
		open[id] = false
	}
	return &Store{open: open}
}

// Open marks id open. Opening an already-open dialog, or an id the
// store does not track, is a no-op. No other dialog is touched.
func (s *Store) Open(id ID) {
	s.set(id, true)
}

// Close marks id closed. Idempotent like Open.
func (s *Store) Close(id ID) {
	s.set(id, false)
}

// Toggle flips id.
func (s *Store) Toggle(id ID) {
	s.mu.Lock()
	cur, ok := s.open[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.open[id] = !cur
	snap, subs := s.changedLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

// IsOpen reports whether id is currently open.
func (s *Store) IsOpen(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open[id]
}

// Snapshot returns a copy of the full visibility map.
func (s *Store) Snapshot() map[ID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for change notifications and returns its
// unsubscribe function. Notifications run in subscription order, after
// the mutation is applied.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) set(id ID, open bool) {
	s.mu.Lock()
	cur, ok := s.open[id]
	if !ok || cur == open {
		s.mu.Unlock()
		return
	}
	s.open[id] = open
	snap, subs := s.changedLocked()
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) snapshotLocked() map[ID]bool {
	snap := make(map[ID]bool, len(s.open))
	for id, open := range s.open {
		snap[id] = open
	}
	return snap
}

func (s *Store) changedLocked() (map[ID]bool, []subscription) {
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	return s.snapshotLocked(), subs
}

func notify(subs []subscription, snap map[ID]bool) {
	for _, sub := range subs {
		sub.fn(snap)
	}
}
