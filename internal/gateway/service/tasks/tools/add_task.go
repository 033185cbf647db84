package tools

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// AddTaskHandler creates a new task owned by the caller.
func AddTaskHandler(tasks repo.TaskRepository) toolcall.Handler {
	return func(ctx context.Context, args map[string]any) *toolcall.Result {
		userID, fail := identityArg(args)
		if fail != nil {
			return fail
		}

		rawTitle, err := stringArg(args, "title")
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}
		title, err := validateTitle(rawTitle)
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}

		now := time.Now().UTC()
		task := &entity.Task{
			ID:        uuid.New().String(),
			UserID:    userID,
			Title:     title,
			Completed: false,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tasks.Create(ctx, task); err != nil {
			logger.Error("[add_task] create failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to create task")
		}

		logger.Info("[add_task] task %s created for user %s", task.ID, userID)
		return toolcall.OK(map[string]any{"task": task.Output()})
	}
}
