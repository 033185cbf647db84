package boltdb

import (
	"context"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/pkg/utils/json"
)

// ConversationStore implements the ConversationRepository interface using BoltDB.
type ConversationStore struct {
	boltDB *bolt.DB
}

// NewConversationStore creates a new ConversationStore instance.
func NewConversationStore(boltDB *DB) *ConversationStore {
	return &ConversationStore{boltDB: boltDB.Bolt()}
}

func (s *ConversationStore) Create(_ context.Context, conversation *entity.Conversation) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConversations)
		data, err := json.Marshal(conversation)
		if err != nil {
			return fmt.Errorf("failed to marshal conversation: %w", err)
		}
		return b.Put([]byte(conversation.ID), data)
	})
}

func (s *ConversationStore) Get(_ context.Context, id string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := s.boltDB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConversations)
		data := b.Get([]byte(id))
		if data == nil {
			return errno.ErrConversationNotFound
		}
		return json.Unmarshal(data, &conversation)
	})
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (s *ConversationStore) Update(_ context.Context, conversation *entity.Conversation) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConversations)
		if b.Get([]byte(conversation.ID)) == nil {
			return errno.ErrConversationNotFound
		}
		data, err := json.Marshal(conversation)
		if err != nil {
			return fmt.Errorf("failed to marshal conversation: %w", err)
		}
		return b.Put([]byte(conversation.ID), data)
	})
}

func (s *ConversationStore) Delete(_ context.Context, id string) error {
	return s.boltDB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConversations)
		return b.Delete([]byte(id))
	})
}
