package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/store/inmemory"
)

func newTestHistory(t *testing.T) (*HistoryService, string) {
	t.Helper()
	h := NewHistoryService(inmemory.NewConversationStore())
	id, err := h.CreateConversation(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return h, id
}

func TestAppendAndFetchHistory(t *testing.T) {
	h, id := newTestHistory(t)
	ctx := context.Background()

	require.NoError(t, h.AppendTurn(ctx, id, entity.RoleUser, "add milk", "alice"))
	require.NoError(t, h.AppendTurn(ctx, id, entity.RoleAssistant, "done", "alice"))

	turns := h.FetchHistory(ctx, id, "alice", 20)
	require.Len(t, turns, 2)
	assert.Equal(t, entity.RoleUser, turns[0].Role)
	assert.Equal(t, "add milk", turns[0].Content)
	assert.Equal(t, entity.RoleAssistant, turns[1].Role)
}

func TestFetchHistoryLimit(t *testing.T) {
	h, id := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, h.AppendTurn(ctx, id, entity.RoleUser, "turn", "alice"))
	}

	turns := h.FetchHistory(ctx, id, "alice", 20)
	assert.Len(t, turns, 20)
}

func TestFetchHistoryUnknownConversation(t *testing.T) {
	h := NewHistoryService(inmemory.NewConversationStore())

	turns := h.FetchHistory(context.Background(), "no-such-id", "alice", 20)
	assert.Empty(t, turns)
}

func TestFetchHistoryNotOwned(t *testing.T) {
	h, id := newTestHistory(t)
	ctx := context.Background()

	require.NoError(t, h.AppendTurn(ctx, id, entity.RoleUser, "secret", "alice"))

	// Someone else's conversation reads as empty, indistinguishable from a
	// conversation that does not exist.
	turns := h.FetchHistory(ctx, id, "bob", 20)
	assert.Empty(t, turns)
}

func TestAppendTurnNotOwned(t *testing.T) {
	h, id := newTestHistory(t)

	err := h.AppendTurn(context.Background(), id, entity.RoleUser, "intrusion", "bob")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrConversationNotFound)

	turns := h.FetchHistory(context.Background(), id, "alice", 20)
	assert.Empty(t, turns)
}

func TestAppendTurnValidation(t *testing.T) {
	h, id := newTestHistory(t)
	ctx := context.Background()

	err := h.AppendTurn(ctx, id, entity.Role("system"), "sneaky", "alice")
	assert.ErrorIs(t, err, errno.ErrInvalidRole)

	err = h.AppendTurn(ctx, id, entity.RoleUser, "", "alice")
	assert.Error(t, err)

	err = h.AppendTurn(ctx, id, entity.RoleUser, strings.Repeat("a", entity.TurnContentMaxLen+1), "alice")
	assert.ErrorIs(t, err, errno.ErrContentTooLong)
}

func TestAppendTurnContentBoundIsCharacters(t *testing.T) {
	h, id := newTestHistory(t)
	ctx := context.Background()

	// A max-length Cyrillic turn is twice the limit in bytes and still valid.
	require.NoError(t, h.AppendTurn(ctx, id, entity.RoleUser, strings.Repeat("д", entity.TurnContentMaxLen), "alice"))

	err := h.AppendTurn(ctx, id, entity.RoleUser, strings.Repeat("д", entity.TurnContentMaxLen+1), "alice")
	assert.ErrorIs(t, err, errno.ErrContentTooLong)
}
