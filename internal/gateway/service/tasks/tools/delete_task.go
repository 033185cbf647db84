package tools

import (
	"context"
	"errors"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// DeleteTaskHandler removes a task permanently. The success payload carries
// the deleted title so the agent can confirm what was removed.
func DeleteTaskHandler(tasks repo.TaskRepository) toolcall.Handler {
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
			return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to delete it")
		}
		if err != nil {
			logger.Error("[delete_task] get failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to delete task")
		}

		if err := tasks.Delete(ctx, taskID, userID); err != nil {
			if errors.Is(err, errno.ErrTaskNotFound) {
				return toolcall.Fail(toolcall.CodeNotFound, "Task not found or you don't have permission to delete it")
			}
			logger.Error("[delete_task] delete failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to delete task")
		}

		logger.Info("[delete_task] task %s deleted for user %s", taskID, userID)
		return toolcall.OK(map[string]any{
			"task_id": taskID,
			"title":   task.Title,
		})
	}
}
