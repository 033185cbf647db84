package tools

import (
	"context"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// ListTasksHandler returns the caller's tasks, newest first, optionally
// filtered by completion status. The query is scoped to the caller, so there
// is no separate authorization step.
func ListTasksHandler(tasks repo.TaskRepository) toolcall.Handler {
	return func(ctx context.Context, args map[string]any) *toolcall.Result {
		userID, fail := identityArg(args)
		if fail != nil {
			return fail
		}

		completed, err := boolArg(args, "completed")
		if err != nil {
			return toolcall.Fail(toolcall.CodeValidationError, err.Error())
		}

		list, err := tasks.ListByUser(ctx, userID, completed)
		if err != nil {
			logger.Error("[list_tasks] list failed for user %s: %v", userID, err)
			return toolcall.Fail(toolcall.CodeDatabaseError, "failed to list tasks")
		}

		out := make([]map[string]any, 0, len(list))
		for _, task := range list {
			out = append(out, task.Output())
		}

		return toolcall.OK(map[string]any{
			"tasks": out,
			"count": len(out),
		})
	}
}
