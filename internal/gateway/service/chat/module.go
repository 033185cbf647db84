package chat

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/service"
	boltStore "github.com/kiosk404/taskmind/internal/gateway/service/chat/store/boltdb"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/store/inmemory"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// Config holds the configuration for the Chat module.
// Follows K8S-style: Config → Complete() → New(ctx).
type Config struct {
	// StoreType selects the conversation backend: "inmemory" or "boltdb".
	// Default: "boltdb".
	StoreType string `json:"store_type,omitempty"`

	// BoltDBPath is the database file path (when StoreType="boltdb").
	// Default: "data/conversations.db".
	BoltDBPath string `json:"boltdb_path,omitempty"`

	// HistoryLimit caps the history turns included per model call.
	// Default: 20.
	HistoryLimit int `json:"history_limit,omitempty"`
}

// CompletedConfig is the validated and completed configuration.
type CompletedConfig struct {
	*Config
}

// Complete validates and fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.StoreType == "" {
		c.StoreType = "boltdb"
	}
	if c.BoltDBPath == "" {
		c.BoltDBPath = "data/conversations.db"
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 20
	}
	return CompletedConfig{c}
}

// Module is the Chat module: conversation persistence plus the coordinator
// that drives agent turns.
type Module struct {
	Coordinator *service.Coordinator
	History     *service.HistoryService

	boltDB *boltStore.DB // nil when using inmemory store
}

// Close releases resources held by the module (the BoltDB handle, if any).
func (m *Module) Close() error {
	if m.boltDB != nil {
		return m.boltDB.Close()
	}
	return nil
}

// New creates the Chat module. chatModel may be nil when no provider is
// configured; the coordinator then refuses chats with a setup hint instead
// of failing startup.
func (c CompletedConfig) New(_ context.Context, chatModel model.ToolCallingChatModel, registry *toolcall.Registry, dispatcher *toolcall.Dispatcher) (*Module, error) {
	var (
		convRepo repo.ConversationRepository
		boltDB   *boltStore.DB
	)

	switch c.StoreType {
	case "boltdb":
		var err error
		boltDB, err = boltStore.Open(c.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open boltdb at %s: %w", c.BoltDBPath, err)
		}
		convRepo = boltStore.NewConversationStore(boltDB)
		logger.Info("[Chat] using BoltDB store at %s", c.BoltDBPath)
	default:
		convRepo = inmemory.NewConversationStore()
		logger.Info("[Chat] using in-memory store")
	}

	history := service.NewHistoryService(convRepo)
	orchestrator := service.NewOrchestrator(chatModel, registry, dispatcher, c.HistoryLimit)
	coordinator := service.NewCoordinator(history, orchestrator)

	logger.Info("[Chat] Chat module initialized (store=%s, model_configured=%v)", c.StoreType, orchestrator.Configured())

	return &Module{
		Coordinator: coordinator,
		History:     history,
		boltDB:      boltDB,
	}, nil
}
