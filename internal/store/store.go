// Package store manages the ordered task list and its JSON persistence.
// Single file, human-readable, portable. No locking; fine for a local
// single-user CLI.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Keegan-JunBugg/tasks/internal/task"
)

// Store owns an ordered sequence of tasks. Insertion order is meaningful:
// it is the default display order and the basis for index addressing.
type Store struct {
	tasks []task.Task
}

func New() *Store {
	return &Store{}
}

// Add appends t to the end of the list.
func (s *Store) Add(t task.Task) {
	s.tasks = append(s.tasks, t)
}

// Len reports the number of tasks, done or not.
func (s *Store) Len() int { return len(s.tasks) }

// RemoveAt deletes the task at index i in the full list.
// Returns false, leaving the store unchanged, when i is out of range.
func (s *Store) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// SetDone flips the completion flag on the task at index i in the full list.
func (s *Store) SetDone(i int, done bool) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	if done {
		s.tasks[i].MarkDone()
	} else {
		s.tasks[i].MarkUndone()
	}
	return true
}

// Edit names the fields of a task that should change. Nil means keep.
type Edit struct {
	Title    *string
	Note     *string
	Priority *int
	Assignee *string
}

// EditAt overwrites the non-nil fields of e on the task at index i.
// Priority is re-clamped on write. Returns false when i is out of range.
func (s *Store) EditAt(i int, e Edit) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	t := &s.tasks[i]
	if e.Title != nil {
		t.Title = *e.Title
	}
	if e.Note != nil {
		t.Note = *e.Note
	}
	if e.Priority != nil {
		t.Priority = task.Clamp(*e.Priority)
	}
	if e.Assignee != nil {
		t.Assignee = *e.Assignee
	}
	return true
}

// Tasks returns a copy of the list. With includeCompleted false, only
// pending tasks are returned, relative order preserved. Indexes into the
// filtered result are view-local; callers acting on the full list must
// translate them back themselves.
func (s *Store) Tasks(includeCompleted bool) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if includeCompleted || !t.Done {
			out = append(out, t)
		}
	}
	return out
}

// Save writes the full list to path as an indented JSON array, replacing
// whatever was there.
func (s *Store) Save(path string) error {
	b, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Load replaces the list with the contents of path. A missing file is not
// an error: the store resets to empty. Any other read or decode failure is
// returned and the store keeps its previous contents, so a malformed file
// never leaves it half-populated.
func (s *Store) Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.tasks = nil
			return nil
		}
		return fmt.Errorf("read file: %w", err)
	}
	var loaded []task.Task
	if err := json.Unmarshal(b, &loaded); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	s.tasks = loaded
	return nil
}
