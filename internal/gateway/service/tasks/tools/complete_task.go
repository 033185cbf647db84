package tools

import (
	"context"
	"errors"
	"time"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// CompleteTaskHandler marks a task as done. The operation is idempotent:
// completing an already-completed task succeeds with the current state and
// does not touch UpdatedAt.
func CompleteTaskHandler(tasks repo.TaskRepository) toolcall.Handler {
	return func(ctx context.Context, args map[string]any) *toolcall.Result {
		userID, fail := identityArg(args)
		if fail != nil {
			return fail
		}

		taskID, err := stringArg(args, "task_id")
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}

		task, err := tasks.Get(ctx, taskID, userID)
		if errors.Is(err, errno.ErrTaskNotFound) {
			return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to complete it")
		}
		if err != nil {
			logger.Error("[complete_task] get failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to complete task")
		}

		if !task.Completed {
			task.Completed = true
			task.UpdatedAt = time.Now().UTC()
			if err := tasks.Update(ctx, task); err != nil {
				if errors.Is(err, errno.ErrTaskNotFound) {
					return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to complete it")
				}
				logger.Error("[complete_task] update failed for user %s: %v", userID, err)
				return toolcall.Fail(toolcall.CodeDatabaseError, "failed to complete task")
			}
			logger.Info("[complete_task] task %s completed for user %s", task.ID, userID)
		}

		return toolcall.OK(map[string]any{"task": task.Output()})
	}
}
