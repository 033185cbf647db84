package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gptr"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/kiosk404/taskmind/pkg/logger"
)

// Config holds the configuration for the LLM module.
// Follows K8S-style: Config → Complete() → New(ctx).
type Config struct {
	// Model is the chat model identifier at the provider.
	// Default: "gpt-4o-mini".
	Model string `json:"model,omitempty"`

	// APIKey is the provider API key. Empty means no model is configured
	// and the agent refuses chats with a setup hint.
	APIKey string `json:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint. Any OpenAI-compatible API
	// works here. Empty uses the default OpenAI endpoint.
	BaseURL string `json:"base_url,omitempty"`

	// MaxTokens caps the completion length. Default: 4096.
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature controls sampling. Default: 0.7.
	Temperature float32 `json:"temperature,omitempty"`
}

// CompletedConfig is the validated and completed configuration.
type CompletedConfig struct {
	*Config
}

// Complete validates and fills defaults.
func (c *Config) Complete() CompletedConfig {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 4096
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.7
	}
	return CompletedConfig{c}
}

// Module is the LLM module: the tool-calling chat model shared by the chat
// service. ChatModel is nil when no API key is configured.
type Module struct {
	ChatModel model.ToolCallingChatModel
}

// New creates the LLM module. A missing API key is not an error: the gateway
// still serves health and task endpoints, and chats report that the agent is
// not configured.
func (c CompletedConfig) New(ctx context.Context) (*Module, error) {
	if c.APIKey == "" {
		logger.Warn("[LLM] no API key configured, agent responses are disabled")
		return &Module{}, nil
	}

	cfg := &einoOpenAI.ChatModelConfig{
		Model:       c.Model,
		APIKey:      c.APIKey,
		MaxTokens:   gptr.Of(c.MaxTokens),
		Temperature: gptr.Of(c.Temperature),
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}

	chatModel, err := einoOpenAI.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build chat model %s: %w", c.Model, err)
	}

	logger.Info("[LLM] chat model initialized (model=%s, base_url=%s)", c.Model, c.BaseURL)

	return &Module{ChatModel: chatModel}, nil
}
