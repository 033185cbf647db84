package gateway

import (
	"context"
	"fmt"

	"github.com/kiosk404/taskmind/internal/gateway/config"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat"
	"github.com/kiosk404/taskmind/internal/gateway/service/llm"
	"github.com/kiosk404/taskmind/internal/gateway/service/tasks"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	genericapiserver "github.com/kiosk404/taskmind/internal/pkg/server"
	"github.com/kiosk404/taskmind/pkg/logger"
)

type apiServer struct {
	cfg              *config.Config
	genericAPIServer *genericapiserver.GenericAPIServer

	registry    *toolcall.Registry
	llmModule   *llm.Module
	tasksModule *tasks.Module
	chatModule  *chat.Module
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	genericConfig := genericapiserver.NewConfig()
	if err := cfg.GenericServerRunOptions.ApplyTo(genericConfig); err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	// Shared tool registry and dispatcher. Registration happens in the
	// Tasks module; dispatch happens in the Chat module.
	registry := toolcall.NewRegistry()
	dispatcher := toolcall.NewDispatcher(registry)

	llmCfg := &llm.Config{
		Model:       cfg.LLMOptions.Model,
		APIKey:      cfg.LLMOptions.ResolveAPIKey(),
		BaseURL:     cfg.LLMOptions.BaseURL,
		MaxTokens:   cfg.LLMOptions.MaxTokens,
		Temperature: cfg.LLMOptions.Temperature,
	}
	llmModule, err := llmCfg.Complete().New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM module: %w", err)
	}
	logger.Info("[Gateway] LLM module initialized successfully")

	tasksCfg := &tasks.Config{
		StoreType:  taskStoreType(cfg.StoreOptions.Type),
		SQLitePath: cfg.StoreOptions.SQLitePath,
	}
	tasksModule, err := tasksCfg.Complete().New(ctx, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Tasks module: %w", err)
	}
	logger.Info("[Gateway] Tasks module initialized successfully")

	chatCfg := &chat.Config{
		StoreType:    chatStoreType(cfg.StoreOptions.Type),
		BoltDBPath:   cfg.StoreOptions.BoltDBPath,
		HistoryLimit: cfg.StoreOptions.HistoryLimit,
	}
	chatModule, err := chatCfg.Complete().New(ctx, llmModule.ChatModel, registry, dispatcher)
	if err != nil {
		tasksModule.Close()
		return nil, fmt.Errorf("failed to initialize Chat module: %w", err)
	}
	logger.Info("[Gateway] Chat module initialized successfully")

	return &apiServer{
		cfg:              cfg,
		genericAPIServer: genericServer,
		registry:         registry,
		llmModule:        llmModule,
		tasksModule:      tasksModule,
		chatModule:       chatModule,
	}, nil
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	initRouter(s.genericAPIServer.Engine, &routerDeps{
		coordinator: s.chatModule.Coordinator,
		registry:    s.registry,
		authOptions: s.cfg.AuthOptions,
	})

	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	defer func() {
		if err := s.chatModule.Close(); err != nil {
			logger.Warn("[Gateway] failed to close Chat module: %v", err)
		}
		if err := s.tasksModule.Close(); err != nil {
			logger.Warn("[Gateway] failed to close Tasks module: %v", err)
		}
	}()

	return s.genericAPIServer.Run()
}

func taskStoreType(storeType string) string {
	if storeType == "inmemory" {
		return "inmemory"
	}
	return "sqlite"
}

func chatStoreType(storeType string) string {
	if storeType == "inmemory" {
		return "inmemory"
	}
	return "boltdb"
}
