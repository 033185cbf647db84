package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
)

func newTestStore(t *testing.T) *ConversationStore {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "conversations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewConversationStore(db)
}

func testConversation(id, userID string) *entity.Conversation {
	now := time.Now().UTC()
	return &entity.Conversation{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestConversationRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	conversation := testConversation("conv-1", "alice")
	conversation.AppendTurn(&entity.Turn{Role: entity.RoleUser, Content: "add milk", CreatedAt: time.Now().UTC()})
	require.NoError(t, store.Create(ctx, conversation))

	got, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, "add milk", got.Turns[0].Content)
}

func TestConversationGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrConversationNotFound)
}

func TestConversationUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	conversation := testConversation("conv-1", "alice")
	require.NoError(t, store.Create(ctx, conversation))

	conversation.AppendTurn(&entity.Turn{Role: entity.RoleAssistant, Content: "done", CreatedAt: time.Now().UTC()})
	require.NoError(t, store.Update(ctx, conversation))

	got, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, entity.RoleAssistant, got.Turns[0].Role)
}

func TestConversationDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testConversation("conv-1", "alice")))
	require.NoError(t, store.Delete(ctx, "conv-1"))

	_, err := store.Get(ctx, "conv-1")
	assert.ErrorIs(t, err, errno.ErrConversationNotFound)
}

func TestConversationSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversations.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	store := NewConversationStore(db)
	require.NoError(t, store.Create(ctx, testConversation("conv-1", "alice")))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewConversationStore(db).Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
}
