package tasks

import (
	"context"
	"fmt"

	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/domain/repo"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/store/inmemory"
	sqliteStore "github.com/kiosk404/taskmind/internal/gateway/service/tasks/store/sqlite"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks/tools"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// Config holds the configuration for the Tasks module.
// Follows K8S-style: Config → Complete() → New(ctx).
type Config struct {
	// StoreType selects the persistence backend: "inmemory" or "sqlite".
	// Default: "sqlite".
	StoreType string `json:"store_type,omitempty"`

	// SQLitePath is the database file path (when StoreType="sqlite").
	// Default: "data/taskmind.db".
	SQLitePath string `json:"sqlite_path,omitempty"`
}

// CompletedConfig is the validated and completed configuration.
type CompletedConfig struct {
	*Config
}

// Complete validates and fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.StoreType == "" {
		c.StoreType = "sqlite"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "data/taskmind.db"
	}
	return CompletedConfig{c}
}

// Module is the Tasks module: the task repository plus the five task tools
// registered into the shared tool registry.
type Module struct {
	Repo repo.TaskRepository

	sqliteDB *sqliteStore.DB // nil when using inmemory store
}

// Close releases resources held by the module (the SQLite handle, if any).
func (m *Module) Close() error {
	if m.sqliteDB != nil {
		return m.sqliteDB.Close()
	}
	return nil
}

// New creates the Tasks module and registers its tools.
func (c CompletedConfig) New(_ context.Context, registry *toolcall.Registry) (*Module, error) {
	var (
		taskRepo repo.TaskRepository
		sqliteDB *sqliteStore.DB
	)

	switch c.StoreType {
	case "sqlite":
		var err error
		sqliteDB, err = sqliteStore.Open(c.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite at %s: %w", c.SQLitePath, err)
		}
		taskRepo = sqliteStore.NewTaskStore(sqliteDB)
		logger.Info("[Tasks] using SQLite store at %s", c.SQLitePath)
	default:
		taskRepo = inmemory.NewTaskStore()
		logger.Info("[Tasks] using in-memory store")
	}

	if err := tools.Register(registry, taskRepo); err != nil {
		if sqliteDB != nil {
			sqliteDB.Close()
		}
		return nil, err
	}

	logger.Info("[Tasks] Tasks module initialized (store=%s, tools=%d)", c.StoreType, registry.Len())

	return &Module{
		Repo:     taskRepo,
		sqliteDB: sqliteDB,
	}, nil
}
