// Package task holds the domain model for a single to-do entry.
package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Priority bounds. 1 is highest, 3 is lowest.
const (
	PriorityHigh = 1
	PriorityMed  = 2
	PriorityLow  = 3
)

// DefaultAssignee is used when no assignee is given.
const DefaultAssignee = "Unassigned"

// ErrMissingTitle is returned when a stored record has no "title" key.
var ErrMissingTitle = errors.New("record missing required field: title")

// Now is the clock used to stamp new tasks. Tests may swap it out.
var Now = time.Now

// Task is one to-do item.
// CreatedAt is an RFC 3339 string, set once at construction and stored
// verbatim across save/load.
type Task struct {
	Title     string `json:"title"`
	Note      string `json:"note"`
	Priority  int    `json:"priority"`
	Assignee  string `json:"assignee"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

// New builds a task with a clamped priority and a fresh timestamp.
// An empty assignee falls back to DefaultAssignee.
func New(title, note string, priority int, assignee string) Task {
	if assignee == "" {
		assignee = DefaultAssignee
	}
	return Task{
		Title:     title,
		Note:      note,
		Priority:  Clamp(priority),
		Assignee:  assignee,
		CreatedAt: Now().Format(time.RFC3339),
	}
}

// Clamp saturates p to the valid priority range [1,3].
func Clamp(p int) int {
	if p < PriorityHigh {
		return PriorityHigh
	}
	if p > PriorityLow {
		return PriorityLow
	}
	return p
}

// MarkDone marks the task complete. Idempotent.
func (t *Task) MarkDone() { t.Done = true }

// MarkUndone marks the task not complete. Idempotent.
func (t *Task) MarkUndone() { t.Done = false }

// PriorityLabel maps the numeric priority to its display name.
func (t Task) PriorityLabel() string {
	switch t.Priority {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Med"
	}
}

// Display renders the one-line plain summary, e.g.
// "[ ] Buy milk (Priority: Med, Assignee: Unassigned)".
func (t Task) Display() string {
	status := " "
	if t.Done {
		status = "✓"
	}
	return fmt.Sprintf("[%s] %s (Priority: %s, Assignee: %s)", status, t.Title, t.PriorityLabel(), t.Assignee)
}

// UnmarshalJSON decodes a stored record, filling defaults for absent
// optional keys. A record without a "title" key fails with ErrMissingTitle;
// every other field is defaulted, and priority is re-clamped.
func (t *Task) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title     *string `json:"title"`
		Note      *string `json:"note"`
		Priority  *int    `json:"priority"`
		Assignee  *string `json:"assignee"`
		Done      *bool   `json:"done"`
		CreatedAt *string `json:"created_at"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Title == nil {
		return ErrMissingTitle
	}

	out := Task{
		Title:    *raw.Title,
		Priority: PriorityMed,
		Assignee: DefaultAssignee,
	}
	if raw.Note != nil {
		out.Note = *raw.Note
	}
	if raw.Priority != nil {
		out.Priority = Clamp(*raw.Priority)
	}
	if raw.Assignee != nil {
		out.Assignee = *raw.Assignee
	}
	if raw.Done != nil {
		out.Done = *raw.Done
	}
	if raw.CreatedAt != nil {
		out.CreatedAt = *raw.CreatedAt
	} else {
		out.CreatedAt = Now().Format(time.RFC3339)
	}
	*t = out
	return nil
}
