// Package taskstore owns the in-memory task collection and keeps a
// persistent key-value snapshot of it in sync.
//
// A Store is created once per process and passed to whatever layer needs it.
// It is not safe for concurrent use: every call is expected to run on the
// same logical thread (the TUI update loop or a single CLI command).
package taskstore

import (
	"errors"
	"fmt"
	"math"

	"github.com/acetasks/ace/internal/domain"
)

const logCategory = "store"

// Store is the authoritative owner of the task collection.
// Fields are ordered to minimize memory padding.
type Store struct {
	kv          domain.KVStore
	logger      domain.Logger
	persistErr  error
	tasks       []domain.Task
	listeners   []listener
	edit        editSession
	lastID      int64
	nextListen  int
	initialized bool
}

// New creates a Store backed by kv. The collection is empty until Initialize is called.
func New(kv domain.KVStore, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		kv:     kv,
		logger: logger,
		tasks:  []domain.Task{},
	}
}

// Initialize reads the persisted snapshot and hydrates the collection.
// A missing or malformed snapshot yields an empty collection; it is never an error.
func (s *Store) Initialize() []domain.Task {
	s.tasks = s.load()
	s.lastID = domain.MaxID(s.tasks)
	s.edit = editSession{}
	s.initialized = true

	s.logger.Info(logCategory, fmt.Sprintf("hydrated %d task(s)", len(s.tasks)))
	s.notify(Change{Kind: ChangeLoaded})
	return s.Tasks()
}

func (s *Store) load() []domain.Task {
	data, err := s.kv.Get(domain.TasksKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Debug(logCategory, "no persisted snapshot, starting empty")
		} else {
			s.logger.Warn(logCategory, fmt.Sprintf("read snapshot: %v; starting empty", err))
		}
		return []domain.Task{}
	}

	tasks, err := domain.DecodeSnapshot(data)
	if err != nil {
		s.logger.Warn(logCategory, fmt.Sprintf("%v; starting empty", err))
		return []domain.Task{}
	}
	return tasks
}

// Initialized reports whether Initialize has run.
func (s *Store) Initialized() bool {
	return s.initialized
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []domain.Task {
	return domain.CloneTasks(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (domain.Task, bool) {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Add appends a new task built from rawText.
// Whitespace-only input is ignored: nothing is mutated, written or notified.
// Add also refuses once the id space is exhausted.
func (s *Store) Add(rawText string) (domain.Task, bool) {
	text, ok := domain.NormalizeText(rawText)
	if !ok {
		return domain.Task{}, false
	}

	id, ok := s.mintID()
	if !ok {
		s.logger.Warn(logCategory, fmt.Sprintf("no task id left after %d; task not added", s.lastID))
		return domain.Task{}, false
	}

	task := domain.Task{
		ID:   id,
		Text: text,
	}
	s.tasks = append(s.tasks, task)

	s.logger.Info(logCategory, fmt.Sprintf("added task %d: %q", task.ID, task.Text))
	s.commit(Change{Kind: ChangeAdded, TaskID: task.ID})
	return task, true
}

// mintID returns a fresh id, strictly greater than every id handed out before.
// It reports false instead of wrapping past math.MaxInt64.
func (s *Store) mintID() (int64, bool) {
	if s.lastID == math.MaxInt64 {
		return 0, false
	}
	s.lastID++
	return s.lastID, true
}

// Toggle flips the completion flag of the task with the given id and
// reports the direction. Unknown ids return TransitionNone and change nothing.
// An open edit session on the task is left untouched.
func (s *Store) Toggle(id int64) domain.Transition {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return domain.TransitionNone
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	transition := domain.TransitionReopened
	if s.tasks[i].Completed {
		transition = domain.TransitionCompleted
	}

	s.logger.Info(logCategory, fmt.Sprintf("task %d %s", id, transition))
	s.commit(Change{Kind: ChangeToggled, TaskID: id, Transition: transition})
	return transition
}

// Edit replaces the text of the task with the given id.
// Empty text (after trimming) and unknown ids are rejected and return false.
func (s *Store) Edit(id int64, newText string) bool {
	text, ok := domain.NormalizeText(newText)
	if !ok {
		s.logger.Debug(logCategory, fmt.Sprintf("rejected empty text for task %d", id))
		return false
	}
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return false
	}

	s.tasks[i].Text = text

	s.logger.Info(logCategory, fmt.Sprintf("edited task %d: %q", id, text))
	s.commit(Change{Kind: ChangeEdited, TaskID: id})
	return true
}

// Delete removes the task with the given id, keeping the order of the rest.
// Deleting the task being edited also ends that edit session.
func (s *Store) Delete(id int64) bool {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.edit.active && s.edit.taskID == id {
		s.edit = editSession{}
	}

	s.logger.Info(logCategory, fmt.Sprintf("deleted task %d", id))
	s.commit(Change{Kind: ChangeDeleted, TaskID: id})
	return true
}

// LastPersistError returns the most recent write failure, or nil if the
// latest write succeeded.
func (s *Store) LastPersistError() error {
	return s.persistErr
}

// commit writes the collection through to the backing store and notifies
// listeners. Write failures are recorded and logged; the in-memory state
// stays authoritative.
func (s *Store) commit(c Change) {
	c.PersistErr = s.persist()
	s.notify(c)
}

func (s *Store) persist() error {
	data, err := domain.EncodeSnapshot(s.tasks)
	if err == nil {
		err = s.kv.Set(domain.TasksKey, data)
	}
	if err != nil {
		s.persistErr = fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		s.logger.Error(logCategory, s.persistErr.Error())
		return s.persistErr
	}
	s.persistErr = nil
	return nil
}

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)
