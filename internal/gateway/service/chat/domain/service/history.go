package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/repo"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// HistoryService is the ownership-enforcing layer over the conversation
// store. Reads for a conversation the caller does not own return empty
// history rather than an error, so callers cannot probe for other users'
// conversations; writes fail closed.
type HistoryService struct {
	conversations repo.ConversationRepository
}

// NewHistoryService creates a HistoryService over the given repository.
func NewHistoryService(conversations repo.ConversationRepository) *HistoryService {
	return &HistoryService{conversations: conversations}
}

// CreateConversation creates an empty conversation owned by userID and
// returns its ID.
func (h *HistoryService) CreateConversation(ctx context.Context, userID string) (string, error) {
	now := time.Now().UTC()
	conversation := &entity.Conversation{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.conversations.Create(ctx, conversation); err != nil {
		return "", fmt.Errorf("failed to create conversation: %w", err)
	}
	logger.Info("[History] created conversation %s for user %s", conversation.ID, userID)
	return conversation.ID, nil
}

// FetchHistory returns up to limit most recent turns of the conversation,
// in chronological order. A conversation that is absent, owned by another
// user, or unreadable yields empty history, never an error.
func (h *HistoryService) FetchHistory(ctx context.Context, conversationID, userID string, limit int) []*entity.Turn {
	conversation, err := h.conversations.Get(ctx, conversationID)
	if err != nil {
		logger.Warn("[History] conversation %s not readable for user %s: %v", conversationID, userID, err)
		return nil
	}
	if conversation.UserID != userID {
		logger.Warn("[History] conversation %s not owned by user %s", conversationID, userID)
		return nil
	}
	return conversation.LastTurns(limit)
}

// AppendTurn appends one turn to a conversation the caller owns. The role
// must be user or assistant and the content non-empty and bounded.
func (h *HistoryService) AppendTurn(ctx context.Context, conversationID string, role entity.Role, content, userID string) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", errno.ErrInvalidRole, role)
	}
	if content == "" {
		return fmt.Errorf("turn content cannot be empty")
	}
	if n := utf8.RuneCountInString(content); n > entity.TurnContentMaxLen {
		return fmt.Errorf("%w: %d characters", errno.ErrContentTooLong, n)
	}

	conversation, err := h.conversations.Get(ctx, conversationID)
	if err != nil {
		return err
	}
	if conversation.UserID != userID {
		// Fail closed, reported identically to a missing conversation.
		return errno.ErrConversationNotFound
	}

	conversation.AppendTurn(&entity.Turn{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})

	if err := h.conversations.Update(ctx, conversation); err != nil {
		return fmt.Errorf("failed to persist turn: %w", err)
	}
	return nil
}
