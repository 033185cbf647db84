package tools

import (
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

// identityParamInfo is the schema entry for the injected caller identity.
// It is part of every tool's input schema but stripped from the model-facing
// catalog by the registry.
func identityParamInfo() *schema.ParameterInfo {
	return &schema.ParameterInfo{
		Type:     schema.String,
		Desc:     "Authenticated user ID (injected by the dispatcher, never supplied by the model)",
		Required: true,
	}
}

// Register wires the five task tools into the registry. Called once at
// startup, before the registry is shared.
func Register(registry *toolcall.Registry, tasks repo.TaskRepository) error {
	defs := []*toolcall.Definition{
		{
			Name:        "add_task",
			Description: "Create a new task for the user. Use this when the user wants to add something to their todo list.",
			Params: map[string]*schema.ParameterInfo{
				"title": {
					Type:     schema.String,
					Desc:     "The task title or description (1-500 characters)",
					Required: true,
				},
				toolcall.IdentityParam: identityParamInfo(),
			},
			Handler: AddTaskHandler(tasks),
		},
		{
			Name:        "list_tasks",
			Description: "Retrieve all tasks for the user. Can optionally filter by completion status. Use this when the user asks to see their tasks, todo list, or what they need to do.",
			Params: map[string]*schema.ParameterInfo{
				"completed": {
					Type: schema.Boolean,
					Desc: "Filter by completion status: true for completed tasks, false for incomplete tasks, omit for all tasks",
				},
				toolcall.IdentityParam: identityParamInfo(),
			},
			Handler: ListTasksHandler(tasks),
		},
		{
			Name:        "update_task",
			Description: "Update a task's title. Use this when the user wants to change, edit, or rename a task.",
			Params: map[string]*schema.ParameterInfo{
				"task_id": {
					Type:     schema.String,
					Desc:     "The unique ID (UUID) of the task to update",
					Required: true,
				},
				"title": {
					Type:     schema.String,
					Desc:     "The new task title (1-500 characters)",
					Required: true,
				},
				toolcall.IdentityParam: identityParamInfo(),
			},
			Handler: UpdateTaskHandler(tasks),
		},
		{
			Name:        "complete_task",
			Description: "Mark a task as completed. Use this when the user indicates they finished a task or want to mark it as done.",
			Params: map[string]*schema.ParameterInfo{
				"task_id": {
					Type:     schema.String,
					Desc:     "The unique ID (UUID) of the task to complete",
					Required: true,
				},
				toolcall.IdentityParam: identityParamInfo(),
			},
			Handler: CompleteTaskHandler(tasks),
		},
		{
			Name:        "delete_task",
			Description: "Permanently delete a task. Use this when the user wants to remove a task from their list. Always confirm with the user before calling this.",
			Params: map[string]*schema.ParameterInfo{
				"task_id": {
					Type:     schema.String,
					Desc:     "The unique ID (UUID) of the task to delete",
					Required: true,
				},
				toolcall.IdentityParam: identityParamInfo(),
			},
			Handler: DeleteTaskHandler(tasks),
		},
	}

	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return fmt.Errorf("failed to register tool %q: %w", def.Name, err)
		}
	}
	return nil
}
