package tools

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

// stringArg extracts a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%q is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string", key)
	}
	if s == "" {
		return "", fmt.Errorf("%q must not be empty", key)
	}
	return s, nil
}

// boolArg extracts an optional bool argument; nil when absent.
func boolArg(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%q must be a boolean", key)
	}
	return &b, nil
}

// identityArg extracts the injected caller identity. A missing identity is a
// dispatcher wiring fault, not a user mistake, so it maps to an execution
// error rather than a validation one.
func identityArg(args map[string]any) (string, *toolcall.Result) {
	id, ok := args[toolcall.IdentityParam].(string)
	if !ok || id == "" {
		return "", toolcall.Fail(toolcall.CodeToolExecutionError, "caller identity was not injected")
	}
	return id, nil
}

// validateTitle trims the title and enforces the 1-500 character bound.
func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("task title cannot be empty or whitespace-only")
	}
	if utf8.RuneCountInString(title) > entity.TitleMaxLen {
		return "", fmt.Errorf("task title must be at most %d characters", entity.TitleMaxLen)
	}
	return title, nil
}
