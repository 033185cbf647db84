package service

import (
	"fmt"
	"strings"

	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

// Fixed user-facing strings. Task data in confirmations always comes from the
// tool result, never from the model.
const (
	msgFallback  = "I'm here to help with your todo list. What would you like to do?"
	msgApology   = "I'm having trouble processing your request right now. Please try again in a moment."
	msgEmptyList = "You don't have any tasks yet. Would you like to add one?"
)

// renderToolResult translates a tool result into a user-facing sentence.
// Failures are translated from error codes into friendly prose; raw codes
// never reach the user.
func renderToolResult(toolName string, result *toolcall.Result) string {
	if !result.Success {
		switch result.ErrorCode() {
		case toolcall.CodeNotFound:
			return "I couldn't find that task. It may have already been deleted."
		case toolcall.CodeValidationError:
			return fmt.Sprintf("I couldn't process that: %s", result.Error.Message)
		case toolcall.CodeDatabaseError:
			return "I'm having trouble accessing your tasks right now. Please try again in a moment."
		default:
			return "I encountered an error while processing your request. Please try again."
		}
	}

	switch toolName {
	case "add_task":
		return fmt.Sprintf("I've added '%s' to your todo list.", taskTitle(result.Data, "a new task"))
	case "list_tasks":
		return renderTaskList(result.Data)
	case "complete_task":
		return fmt.Sprintf("I've marked '%s' as complete. Great job!", taskTitle(result.Data, "the task"))
	case "update_task":
		return fmt.Sprintf("I've updated the task to '%s'.", taskTitle(result.Data, "the task"))
	case "delete_task":
		title, _ := result.Data["title"].(string)
		if title == "" {
			title = "the task"
		}
		return fmt.Sprintf("I've deleted '%s' from your list.", title)
	default:
		return "Done!"
	}
}

// renderTaskList itemizes the caller's tasks with a checkbox glyph per task.
func renderTaskList(data map[string]any) string {
	tasks, _ := data["tasks"].([]map[string]any)
	if len(tasks) == 0 {
		return msgEmptyList
	}

	var sb strings.Builder
	for i, task := range tasks {
		glyph := "○"
		if completed, _ := task["completed"].(bool); completed {
			glyph = "✓"
		}
		title, _ := task["title"].(string)
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(glyph)
		sb.WriteString(" ")
		sb.WriteString(title)
	}

	count := len(tasks)
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("You have %d task%s:\n\n%s", count, plural, sb.String())
}

// taskTitle pulls the title out of a {"task": {...}} payload.
func taskTitle(data map[string]any, fallback string) string {
	task, _ := data["task"].(map[string]any)
	if title, _ := task["title"].(string); title != "" {
		return title
	}
	return fallback
}
