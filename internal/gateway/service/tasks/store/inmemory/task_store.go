package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
)

// TaskStore is an in-memory implementation of the TaskRepository interface.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*entity.Task
}

// NewTaskStore creates a new instance of the TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*entity.Task),
	}
}

func (s *TaskStore) Create(_ context.Context, task *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

func (s *TaskStore) Get(_ context.Context, id, userID string) (*entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, errno.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

func (s *TaskStore) ListByUser(_ context.Context, userID string, completed *bool) ([]*entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var tasks []*entity.Task
	for _, task := range s.tasks {
		if task.UserID != userID {
			continue
		}
		if completed != nil && task.Completed != *completed {
			continue
		}
		cp := *task
		tasks = append(tasks, &cp)
	}
	// Newest first, matching the SQLite store's ordering.
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (s *TaskStore) Update(_ context.Context, task *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return errno.ErrTaskNotFound
	}
	cp := *task
	s.tasks[task.ID] = &cp
	return nil
}

func (s *TaskStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[id]
	if !ok || existing.UserID != userID {
		return errno.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
