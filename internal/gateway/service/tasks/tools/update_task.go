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

// UpdateTaskHandler changes a task's title. A task that is missing or owned
// by someone else reports NOT_FOUND; the two cases are deliberately
// indistinguishable.
func UpdateTaskHandler(tasks repo.TaskRepository) toolcall.Handler {
	return func(ctx context.Context, args map[string]any) *toolcall.Result {
		userID, fail := identityArg(args)
		if fail != nil {
			return fail
		}

		taskID, err := stringArg(args, "task_id")
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}
		rawTitle, err := stringArg(args, "title")
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}
		title, err := validateTitle(rawTitle)
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}

		task, err := tasks.Get(ctx, taskID, userID)
		if errors.Is(err, errno.ErrTaskNotFound) {
			return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to update it")
		}
		if err != nil {
			logger.Error("[update_task] get failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to update task")
		}

		task.Title = title
		task.UpdatedAt = time.Now().UTC()
		if err := tasks.Update(ctx, task); err != nil {
			if errors.Is(err, errno.ErrTaskNotFound) {
				return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to update it")
			}
			logger.Error("[update_task] update failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to update task")
		}

		logger.Info("[update_task] task %s updated for user %s", task.ID, userID)
		return toolcall.OK(map[string]any{"task": task.Output()})
	}
}
