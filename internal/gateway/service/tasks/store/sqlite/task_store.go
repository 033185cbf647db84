package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
)

// TaskStore implements the TaskRepository interface on SQLite. Every method
// is one self-contained statement or transaction; no connection state is
// held between calls.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore creates a new TaskStore instance.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db.SQL()}
}

func (s *TaskStore) Create(ctx context.Context, task *entity.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, user_id, title, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		task.ID, task.UserID, task.Title, task.Completed, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *TaskStore) Get(ctx context.Context, id, userID string) (*entity.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, completed, created_at, updated_at FROM tasks WHERE id = ? AND user_id = ?`,
		id, userID,
	)

	var task entity.Task
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Completed, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errno.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %q: %w", id, err)
	}
	return &task, nil
}

func (s *TaskStore) ListByUser(ctx context.Context, userID string, completed *bool) ([]*entity.Task, error) {
	query := `SELECT id, user_id, title, completed, created_at, updated_at FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if completed != nil {
		query += ` AND completed = ?`
		args = append(args, *completed)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		var task entity.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) Update(ctx context.Context, task *entity.Task) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, completed = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		task.Title, task.Completed, task.UpdatedAt, task.ID, task.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task %q: %w", task.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return errno.ErrTaskNotFound
	}
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return errno.ErrTaskNotFound
	}
	return nil
}
