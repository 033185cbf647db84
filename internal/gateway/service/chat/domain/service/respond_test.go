package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

func TestRenderTaskList(t *testing.T) {
	data := map[string]any{
		"tasks": []map[string]any{
			{"title": "Buy milk", "completed": false},
			{"title": "Walk the dog", "completed": true},
		},
		"count": 2,
	}

	assert.Equal(t, "You have 2 tasks:\n\n○ Buy milk\n✓ Walk the dog", renderTaskList(data))
}

func TestRenderTaskListSingular(t *testing.T) {
	data := map[string]any{
		"tasks": []map[string]any{
			{"title": "Buy milk", "completed": false},
		},
		"count": 1,
	}

	assert.Equal(t, "You have 1 task:\n\n○ Buy milk", renderTaskList(data))
}

func TestRenderToolResultFailures(t *testing.T) {
	cases := map[string]struct {
		result *toolcall.Result
		want   string
	}{
		"not found": {
			toolcall.Fail(toolcall.CodeNotFound, "Task not found"),
			"I couldn't find that task. It may have already been deleted.",
		},
		"validation": {
			toolcall.Fail(toolcall.CodeValidationError, "task title cannot be empty or whitespace-only"),
			"I couldn't process that: task title cannot be empty or whitespace-only",
		},
		"database": {
			toolcall.Fail(toolcall.CodeDatabaseError, "failed to create task"),
			"I'm having trouble accessing your tasks right now. Please try again in a moment.",
		},
		"execution": {
			toolcall.Fail(toolcall.CodeToolExecutionError, "boom"),
			"I encountered an error while processing your request. Please try again.",
		},
	}

	for name, tc := range cases {
		assert.Equal(t, tc.want, renderToolResult("add_task", tc.result), name)
	}
}

func TestRenderToolResultConfirmations(t *testing.T) {
	taskData := map[string]any{"task": map[string]any{"title": "Buy milk"}}

	assert.Equal(t, "I've added 'Buy milk' to your todo list.", renderToolResult("add_task", toolcall.OK(taskData)))
	assert.Equal(t, "I've marked 'Buy milk' as complete. Great job!", renderToolResult("complete_task", toolcall.OK(taskData)))
	assert.Equal(t, "I've updated the task to 'Buy milk'.", renderToolResult("update_task", toolcall.OK(taskData)))

	deleteData := map[string]any{"task_id": "id-1", "title": "Buy milk"}
	assert.Equal(t, "I've deleted 'Buy milk' from your list.", renderToolResult("delete_task", toolcall.OK(deleteData)))
}
