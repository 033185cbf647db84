package service

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/store/inmemory"
	taskstore "github.com/kiosk404/taskmind/internal/gateway/service/tasks/store/inmemory"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/tools"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

func newTestCoordinator(t *testing.T, fake *fakeChatModel) *Coordinator {
	t.Helper()

	registry := toolcall.NewRegistry()
	require.NoError(t, tools.Register(registry, taskstore.NewTaskStore()))

	// A nil fake must become an untyped nil interface, matching a gateway
	// that starts without a configured provider.
	var chatModel model.ToolCallingChatModel
	if fake != nil {
		chatModel = fake
	}

	history := NewHistoryService(inmemory.NewConversationStore())
	orchestrator := NewOrchestrator(chatModel, registry, toolcall.NewDispatcher(registry), 20)

	return NewCoordinator(history, orchestrator)
}

func TestHandleMessageCreatesConversation(t *testing.T) {
	fake := &fakeChatModel{responses: []*schema.Message{textResponse("Hello!")}}
	coordinator := newTestCoordinator(t, fake)

	result := coordinator.HandleMessage(context.Background(), "alice", "", "hi")

	assert.True(t, result.Success)
	assert.Equal(t, "Hello!", result.Message)
	assert.NotEmpty(t, result.ConversationID)
}

func TestHandleMessagePersistsBothTurns(t *testing.T) {
	fake := &fakeChatModel{responses: []*schema.Message{
		textResponse("First reply"),
		textResponse("Second reply"),
	}}
	coordinator := newTestCoordinator(t, fake)
	ctx := context.Background()

	first := coordinator.HandleMessage(ctx, "alice", "", "first message")
	require.True(t, first.Success)

	second := coordinator.HandleMessage(ctx, "alice", first.ConversationID, "second message")
	require.True(t, second.Success)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	// The second call sees the first exchange as history.
	require.Len(t, fake.seenMessages, 4)
	assert.Equal(t, "first message", fake.seenMessages[1].Content)
	assert.Equal(t, entity.RoleAssistant, entity.Role(fake.seenMessages[2].Role))
	assert.Equal(t, "First reply", fake.seenMessages[2].Content)
	assert.Equal(t, "second message", fake.seenMessages[3].Content)
}

func TestHandleMessageNotOwnedConversation(t *testing.T) {
	fake := &fakeChatModel{responses: []*schema.Message{
		textResponse("alice reply"),
		textResponse("bob reply"),
	}}
	coordinator := newTestCoordinator(t, fake)
	ctx := context.Background()

	aliceResult := coordinator.HandleMessage(ctx, "alice", "", "my secret plans")
	require.True(t, aliceResult.Success)

	// Bob reusing alice's conversation ID gets none of her history.
	bobResult := coordinator.HandleMessage(ctx, "bob", aliceResult.ConversationID, "hello")
	require.True(t, bobResult.Success)

	for _, msg := range fake.seenMessages {
		assert.NotContains(t, msg.Content, "secret")
	}
}

func TestHandleMessageUnconfiguredAgent(t *testing.T) {
	coordinator := newTestCoordinator(t, nil)

	result := coordinator.HandleMessage(context.Background(), "alice", "", "hi")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Contains(t, result.Error, "not configured")
}

func TestHandleMessageModelFailureStillPersistsUserTurn(t *testing.T) {
	fake := &fakeChatModel{err: assert.AnError}
	registry := toolcall.NewRegistry()
	require.NoError(t, tools.Register(registry, taskstore.NewTaskStore()))
	history := NewHistoryService(inmemory.NewConversationStore())
	coordinator := NewCoordinator(history, NewOrchestrator(fake, registry, toolcall.NewDispatcher(registry), 20))
	ctx := context.Background()

	result := coordinator.HandleMessage(ctx, "alice", "", "hi")

	assert.False(t, result.Success)
	assert.Equal(t, msgApology, result.Message)

	turns := history.FetchHistory(ctx, result.ConversationID, "alice", 20)
	require.Len(t, turns, 2)
	assert.Equal(t, "hi", turns[0].Content)
	assert.Equal(t, msgApology, turns[1].Content)
}
