package service

import (
	"context"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/pkg/logger"
)

const msgNotConfigured = "The assistant is not configured yet. Please set a model API key and try again."

// ChatResult is the outcome of one user message, shaped for the transport
// layer to translate directly into a response body.
type ChatResult struct {
	// Success is false only for infrastructure faults, not for business
	// outcomes like a missing task (those arrive as normal Message text).
	Success bool `json:"success"`

	// Message is the user-facing reply.
	Message string `json:"message"`

	// ConversationID identifies the conversation this exchange belongs to,
	// created on demand for a first message.
	ConversationID string `json:"conversation_id"`

	// Error carries the technical detail for logging; empty on success.
	Error string `json:"error,omitempty"`
}

// Coordinator is the entry point for a user message: it resolves the
// conversation, loads bounded history, invokes the orchestrator, and
// persists both sides of the exchange.
type Coordinator struct {
	history      *HistoryService
	orchestrator *Orchestrator
}

// NewCoordinator wires a Coordinator over its history and orchestration
// services.
func NewCoordinator(history *HistoryService, orchestrator *Orchestrator) *Coordinator {
	return &Coordinator{history: history, orchestrator: orchestrator}
}

// HandleMessage processes one user message for the verified userID.
// conversationID may be empty, in which case a fresh conversation is created
// and its ID returned with the reply.
//
// Persistence failures after a successful model exchange are logged but do
// not fail the request: the user still gets the reply that was generated.
func (c *Coordinator) HandleMessage(ctx context.Context, userID, conversationID, message string) *ChatResult {
	if !c.orchestrator.Configured() {
		logger.Warn("[Coordinator] chat requested but no model is configured")
		return &ChatResult{
			Success:        false,
			Message:        msgNotConfigured,
			ConversationID: conversationID,
			Error:          errno.ErrAgentNotConfigured.Error(),
		}
	}

	if conversationID == "" {
		id, err := c.history.CreateConversation(ctx, userID)
		if err != nil {
			logger.Error("[Coordinator] failed to create conversation for user %s: %v", userID, err)
			return &ChatResult{
				Success: false,
				Message: msgApology,
				Error:   err.Error(),
			}
		}
		conversationID = id
	}

	// History for a conversation the caller does not own comes back empty,
	// same as a brand new conversation.
	history := c.history.FetchHistory(ctx, conversationID, userID, c.orchestrator.HistoryLimit())

	invocation := c.orchestrator.Invoke(ctx, message, history, userID)

	c.persistTurn(ctx, conversationID, entity.RoleUser, message, userID)
	c.persistTurn(ctx, conversationID, entity.RoleAssistant, invocation.Message, userID)

	return &ChatResult{
		Success:        invocation.Error == "",
		Message:        invocation.Message,
		ConversationID: conversationID,
		Error:          invocation.Error,
	}
}

func (c *Coordinator) persistTurn(ctx context.Context, conversationID string, role entity.Role, content, userID string) {
	if content == "" {
		return
	}
	if err := c.history.AppendTurn(ctx, conversationID, role, content, userID); err != nil {
		logger.Error("[Coordinator] failed to persist %s turn in conversation %s: %v", role, conversationID, err)
	}
}
