package repo

import (
	"context"

	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
)

// ConversationRepository defines the persistence interface for Conversation
// entities. Ownership checks live in the history service layered on top; the
// store itself is keyed by conversation ID only.
type ConversationRepository interface {
	// Create stores a new conversation.
	Create(ctx context.Context, conversation *entity.Conversation) error
	// Get retrieves a conversation by ID. Returns
	// errno.ErrConversationNotFound when absent.
	Get(ctx context.Context, id string) (*entity.Conversation, error)
	// Update persists changes to an existing conversation.
	Update(ctx context.Context, conversation *entity.Conversation) error
	// Delete removes a conversation by ID.
	Delete(ctx context.Context, id string) error
}
