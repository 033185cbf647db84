package errno

import (
	"errors"
)

var (
	ErrInvalidToolName      = errors.New("invalid tool name")
	ErrToolNotRegistered    = errors.New("tool not registered")
	ErrTaskNotFound         = errors.New("task not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidRole          = errors.New("invalid message role")
	ErrContentTooLong       = errors.New("message content too long")
	ErrAgentNotConfigured   = errors.New("agent not configured")
)
