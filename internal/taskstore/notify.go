package taskstore

import "github.com/acetasks/ace/internal/domain"

// ChangeKind identifies the operation that produced a Change.
type ChangeKind int

const (
	ChangeLoaded  ChangeKind = iota // Initialize hydrated the collection
	ChangeAdded                     // A task was appended
	ChangeToggled                   // A task's completion flag flipped
	ChangeEdited                    // A task's text was replaced
	ChangeDeleted                   // A task was removed
)

// String returns the string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeLoaded:
		return "loaded"
	case ChangeAdded:
		return "added"
	case ChangeToggled:
		return "toggled"
	case ChangeEdited:
		return "edited"
	case ChangeDeleted:
		return "deleted"
	}
	return "unknown"
}

// Change is the "collection changed" notification delivered to subscribers.
// Fields are ordered to minimize memory padding.
type Change struct {
	PersistErr error         // Non-nil if the write-through failed
	Tasks      []domain.Task // Read-only copy of the collection after the change
	TaskID     int64         // Affected task (0 for ChangeLoaded)
	Kind       ChangeKind
	Transition domain.Transition // Set for ChangeToggled
}

type listener struct {
	fn func(Change)
	id int
}

// Subscribe registers fn to be called synchronously after every mutation and
// after Initialize. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.nextListen++
	id := s.nextListen
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	if len(s.listeners) == 0 {
		return
	}
	// Snapshot the listener list so a callback may unsubscribe itself.
	ls := make([]listener, len(s.listeners))
	copy(ls, s.listeners)
	for _, l := range ls {
		c.Tasks = s.Tasks()
		l.fn(c)
	}
}
