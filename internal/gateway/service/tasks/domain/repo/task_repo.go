package repo

import (
	"context"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
)

// TaskRepository defines the persistence interface for Task entities.
//
// Every read and mutation is scoped by the owning user: a task that exists
// but belongs to someone else is indistinguishable from a missing one, and
// both surface as errno.ErrTaskNotFound.
type TaskRepository interface {
	// Create stores a new task.
	Create(ctx context.Context, task *entity.Task) error
	// Get retrieves a task by ID for the given owner.
	Get(ctx context.Context, id, userID string) (*entity.Task, error)
	// ListByUser returns the owner's tasks, newest first. A non-nil completed
	// filters by completion status.
	ListByUser(ctx context.Context, userID string, completed *bool) ([]*entity.Task, error)
	// Update persists changes to an existing task, scoped by ID and owner.
	Update(ctx context.Context, task *entity.Task) error
	// Delete removes a task permanently, scoped by ID and owner.
	Delete(ctx context.Context, id, userID string) error
}
