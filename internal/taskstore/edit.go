package taskstore

import "fmt"

// editSession is the per-row edit state machine. At most one row is in the
// Editing state at a time; the zero value is Viewing.
type editSession struct {
	workingCopy string
	taskID      int64
	active      bool
}

// BeginEdit moves the task with the given id into the Editing state, using its
// current text as the working copy. Any other uncommitted session is abandoned.
// Returns false (and leaves the state unchanged) if the id is unknown.
func (s *Store) BeginEdit(id int64) bool {
	task, ok := s.Get(id)
	if !ok {
		return false
	}
	if s.edit.active && s.edit.taskID != id {
		s.logger.Debug(logCategory, fmt.Sprintf("abandoned edit of task %d", s.edit.taskID))
	}
	s.edit = editSession{
		taskID:      id,
		workingCopy: task.Text,
		active:      true,
	}
	return true
}

// SetWorkingCopy replaces the in-progress text of the open session.
// Intermediate values may be empty. No-op when nothing is being edited.
func (s *Store) SetWorkingCopy(text string) {
	if !s.edit.active {
		return
	}
	s.edit.workingCopy = text
}

// WorkingCopy returns the in-progress text of the open session.
func (s *Store) WorkingCopy() string {
	return s.edit.workingCopy
}

// Editing returns the id of the task being edited, if any.
func (s *Store) Editing() (int64, bool) {
	return s.edit.taskID, s.edit.active
}

// CommitEdit applies the working copy to the task being edited and returns to
// Viewing. An empty working copy is rejected: the task keeps its text and the
// session stays open. Returns true if the text was applied.
func (s *Store) CommitEdit() bool {
	if !s.edit.active {
		return false
	}
	if !s.Edit(s.edit.taskID, s.edit.workingCopy) {
		return false
	}
	s.edit = editSession{}
	return true
}

// CancelEdit discards the working copy and returns to Viewing.
func (s *Store) CancelEdit() {
	s.edit = editSession{}
}
