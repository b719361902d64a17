package todo

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

// Store owns the ordered task list and its backing document.
type Store struct {
	backend jsonstore.Backend
	logger  *log.Logger
	tasks   []model.Task
}

// Open loads the task list from b. A missing or malformed document starts an
// empty list; only a failed read is returned as an error (KindIO).
func Open(b jsonstore.Backend, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tasks, err := jsonstore.Load(b)
	switch {
	case errors.Is(err, jsonstore.ErrInvalidDocument):
		logger.Debug("store document unreadable, starting empty", "err", err)
	case err != nil:
		return nil, &Error{Op: "load", Kind: KindIO, Err: err}
	}
	logger.Debug("loaded tasks", "count", len(tasks))
	return &Store{backend: b, logger: logger, tasks: tasks}, nil
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

// Len reports the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Add appends an uncompleted task and persists the list.
func (s *Store) Add(description string) (model.Task, error) {
	t := model.Task{Description: description}
	s.tasks = append(s.tasks, t)
	if err := s.persist("add"); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// CompleteResult describes the outcome of Complete.
type CompleteResult struct {
	Task model.Task
	// AlreadyCompleted is true when the call was a no-op.
	AlreadyCompleted bool
}

// Complete marks the task at 1-based index as completed and persists the list.
// Completing a completed task changes nothing and writes nothing.
func (s *Store) Complete(index int) (CompleteResult, error) {
	i := index - 1
	if i < 0 || i >= len(s.tasks) {
		return CompleteResult{}, &Error{
			Op:     "complete",
			Kind:   KindOutOfBounds,
			Detail: fmt.Sprintf("have %d, got %d", len(s.tasks), index),
		}
	}
	if s.tasks[i].Completed {
		s.logger.Debug("task already completed", "index", index)
		return CompleteResult{Task: s.tasks[i], AlreadyCompleted: true}, nil
	}
	s.tasks[i].Completed = true
	if err := s.persist("complete"); err != nil {
		return CompleteResult{}, err
	}
	return CompleteResult{Task: s.tasks[i]}, nil
}

// DeleteCompleted removes every completed task, keeping the order of the rest,
// and returns how many were removed. It fails with KindNothingToDelete when
// the list has no completed task.
func (s *Store) DeleteCompleted() (int, error) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool { return t.Completed })
	removed := before - len(s.tasks)
	if removed == 0 {
		return 0, &Error{Op: "delete_completed", Kind: KindNothingToDelete}
	}
	if err := s.persist("delete_completed"); err != nil {
		return 0, err
	}
	return removed, nil
}

// List groups the current tasks without touching the backend.
func (s *Store) List() Listing {
	return Group(s.tasks)
}

func (s *Store) persist(op string) error {
	if err := jsonstore.Save(s.backend, s.tasks); err != nil {
		return &Error{Op: op, Kind: KindIO, Err: err}
	}
	s.logger.Debug("saved tasks", "op", op, "count", len(s.tasks))
	return nil
}
