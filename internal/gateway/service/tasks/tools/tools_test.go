package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/store/inmemory"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

func callAs(t *testing.T, handler toolcall.Handler, userID string, args map[string]any) *toolcall.Result {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	args[toolcall.IdentityParam] = userID
	result := handler(context.Background(), args)
	require.NotNil(t, result)
	return result
}

func taskFromResult(t *testing.T, result *toolcall.Result) map[string]any {
	t.Helper()
	require.True(t, result.Success, "expected success, got %+v", result.Error)
	task, ok := result.Data["task"].(map[string]any)
	require.True(t, ok, "result data missing task object")
	return task
}

func addTask(t *testing.T, store *inmemory.TaskStore, userID, title string) string {
	t.Helper()
	result := callAs(t, AddTaskHandler(store), userID, map[string]any{"title": title})
	task := taskFromResult(t, result)
	id, ok := task["id"].(string)
	require.True(t, ok)
	return id
}

func TestAddTask(t *testing.T) {
	store := inmemory.NewTaskStore()

	result := callAs(t, AddTaskHandler(store), "alice", map[string]any{"title": "Buy milk"})
	task := taskFromResult(t, result)

	assert.Equal(t, "Buy milk", task["title"])
	assert.Equal(t, false, task["completed"])
	assert.NotEmpty(t, task["id"])
	assert.NotEmpty(t, task["created_at"])
	// The owner never appears in tool output.
	assert.NotContains(t, task, "user_id")
}

func TestAddTaskTrimsWhitespace(t *testing.T) {
	store := inmemory.NewTaskStore()

	result := callAs(t, AddTaskHandler(store), "alice", map[string]any{"title": "  Buy milk  "})
	task := taskFromResult(t, result)
	assert.Equal(t, "Buy milk", task["title"])
}

func TestAddTaskValidation(t *testing.T) {
	store := inmemory.NewTaskStore()
	handler := AddTaskHandler(store)

	for name, args := range map[string]map[string]any{
		"missing title":    {},
		"empty title":      {"title": ""},
		"whitespace title": {"title": "   "},
		"non-string title": {"title": 42},
		"too long title":   {"title": strings.Repeat("a", entity.TitleMaxLen+1)},
	} {
		result := callAs(t, handler, "alice", args)
		assert.False(t, result.Success, "%s should fail", name)
		assert.Equal(t, toolcall.CodeValidationError, result.ErrorCode(), name)
	}

	// Exactly at the bound is accepted.
	result := callAs(t, handler, "alice", map[string]any{"title": strings.Repeat("a", entity.TitleMaxLen)})
	assert.True(t, result.Success)
}

func TestListTasks(t *testing.T) {
	store := inmemory.NewTaskStore()

	idA := addTask(t, store, "alice", "first")
	time.Sleep(2 * time.Millisecond)
	idB := addTask(t, store, "alice", "second")
	addTask(t, store, "bob", "not alice's")

	result := callAs(t, ListTasksHandler(store), "alice", nil)
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])

	listed, ok := result.Data["tasks"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, listed, 2)

	// Newest first.
	assert.Equal(t, idB, listed[0]["id"])
	assert.Equal(t, idA, listed[1]["id"])
}

func TestListTasksCompletedFilter(t *testing.T) {
	store := inmemory.NewTaskStore()

	idDone := addTask(t, store, "alice", "done")
	idOpen := addTask(t, store, "alice", "open")
	callAs(t, CompleteTaskHandler(store), "alice", map[string]any{"task_id": idDone})

	result := callAs(t, ListTasksHandler(store), "alice", map[string]any{"completed": true})
	require.True(t, result.Success)
	listed := result.Data["tasks"].([]map[string]any)
	require.Len(t, listed, 1)
	assert.Equal(t, idDone, listed[0]["id"])

	result = callAs(t, ListTasksHandler(store), "alice", map[string]any{"completed": false})
	require.True(t, result.Success)
	listed = result.Data["tasks"].([]map[string]any)
	require.Len(t, listed, 1)
	assert.Equal(t, idOpen, listed[0]["id"])
}

func TestListTasksEmpty(t *testing.T) {
	store := inmemory.NewTaskStore()

	result := callAs(t, ListTasksHandler(store), "alice", nil)
	require.True(t, result.Success)
	assert.Equal(t, 0, result.Data["count"])
}

func TestUpdateTask(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "old title")

	result := callAs(t, UpdateTaskHandler(store), "alice", map[string]any{"task_id": id, "title": "new title"})
	task := taskFromResult(t, result)
	assert.Equal(t, "new title", task["title"])
}

func TestUpdateTaskCrossUser(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "private")

	// Another user's task id behaves exactly like a nonexistent one.
	result := callAs(t, UpdateTaskHandler(store), "bob", map[string]any{"task_id": id, "title": "hijacked"})
	assert.False(t, result.Success)
	assert.Equal(t, toolcall.CodeNotFound, result.ErrorCode())

	result = callAs(t, ListTasksHandler(store), "alice", nil)
	listed := result.Data["tasks"].([]map[string]any)
	assert.Equal(t, "private", listed[0]["title"])
}

func TestUpdateTaskNotFound(t *testing.T) {
	store := inmemory.NewTaskStore()

	result := callAs(t, UpdateTaskHandler(store), "alice", map[string]any{"task_id": "missing", "title": "x"})
	assert.False(t, result.Success)
	assert.Equal(t, toolcall.CodeNotFound, result.ErrorCode())
}

func TestCompleteTask(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "finish me")

	result := callAs(t, CompleteTaskHandler(store), "alice", map[string]any{"task_id": id})
	task := taskFromResult(t, result)
	assert.Equal(t, true, task["completed"])
}

func TestCompleteTaskIdempotent(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "finish me")

	callAs(t, CompleteTaskHandler(store), "alice", map[string]any{"task_id": id})
	first, err := store.Get(context.Background(), id, "alice")
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	result := callAs(t, CompleteTaskHandler(store), "alice", map[string]any{"task_id": id})
	task := taskFromResult(t, result)
	assert.Equal(t, true, task["completed"])

	// The second completion is a no-op and leaves UpdatedAt alone.
	second, err := store.Get(context.Background(), id, "alice")
	require.NoError(t, err)
	assert.True(t, second.UpdatedAt.Equal(first.UpdatedAt))
}

func TestCompleteTaskCrossUser(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "private")

	result := callAs(t, CompleteTaskHandler(store), "bob", map[string]any{"task_id": id})
	assert.False(t, result.Success)
	assert.Equal(t, toolcall.CodeNotFound, result.ErrorCode())
}

func TestDeleteTask(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "remove me")

	result := callAs(t, DeleteTaskHandler(store), "alice", map[string]any{"task_id": id})
	require.True(t, result.Success)
	assert.Equal(t, id, result.Data["task_id"])
	assert.Equal(t, "remove me", result.Data["title"])

	list := callAs(t, ListTasksHandler(store), "alice", nil)
	assert.Equal(t, 0, list.Data["count"])
}

func TestDeleteTaskCrossUser(t *testing.T) {
	store := inmemory.NewTaskStore()
	id := addTask(t, store, "alice", "private")

	result := callAs(t, DeleteTaskHandler(store), "bob", map[string]any{"task_id": id})
	assert.False(t, result.Success)
	assert.Equal(t, toolcall.CodeNotFound, result.ErrorCode())

	list := callAs(t, ListTasksHandler(store), "alice", nil)
	assert.Equal(t, 1, list.Data["count"])
}

func TestMissingIdentityIsExecutionError(t *testing.T) {
	store := inmemory.NewTaskStore()

	result := AddTaskHandler(store)(context.Background(), map[string]any{"title": "x"})
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, toolcall.CodeToolExecutionError, result.ErrorCode())
}
