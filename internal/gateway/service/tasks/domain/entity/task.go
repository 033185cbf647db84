package entity

import (
	"time"
)

// TitleMaxLen is the maximum task title length in characters, counted after
// trimming surrounding whitespace.
const TitleMaxLen = 500

// Task is a single todo item. A task is owned exclusively by the user that
// created it; no operation may observe a task owned by someone else.
type Task struct {
	// ID is the unique task identifier (UUID).
	ID string `json:"id"`

	// UserID is the verified identity of the owning user.
	UserID string `json:"user_id"`

	// Title is the task text (1-500 characters, trimmed).
	Title string `json:"title"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Output maps the task to the tool result contract. The owner identity is
// deliberately not part of the contract.
func (t *Task) Output() map[string]any {
	return map[string]any{
		"id":         t.ID,
		"title":      t.Title,
		"completed":  t.Completed,
		"created_at": t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
