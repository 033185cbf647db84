package inmemory

import (
	"context"
	"sync"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
)

// ConversationStore is an in-memory implementation of the
// ConversationRepository interface.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*entity.Conversation
}

// NewConversationStore creates a new instance of the ConversationStore.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*entity.Conversation),
	}
}

func (s *ConversationStore) Create(_ context.Context, conversation *entity.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversation.ID] = clone(conversation)
	return nil
}

func (s *ConversationStore) Get(_ context.Context, id string) (*entity.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conversation, ok := s.conversations[id]
	if !ok {
		return nil, errno.ErrConversationNotFound
	}
	return clone(conversation), nil
}

func (s *ConversationStore) Update(_ context.Context, conversation *entity.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[conversation.ID]; !ok {
		return errno.ErrConversationNotFound
	}
	s.conversations[conversation.ID] = clone(conversation)
	return nil
}

func (s *ConversationStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[id]; !ok {
		return errno.ErrConversationNotFound
	}
	delete(s.conversations, id)
	return nil
}

func clone(c *entity.Conversation) *entity.Conversation {
	cp := *c
	cp.Turns = make([]*entity.Turn, len(c.Turns))
	for i, turn := range c.Turns {
		t := *turn
		cp.Turns[i] = &t
	}
	return &cp
}
