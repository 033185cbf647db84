package options

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// LLMOptions configures the chat model provider. Any OpenAI-compatible
// endpoint works via BaseURL.
type LLMOptions struct {
	// Model is the chat model identifier at the provider.
	Model string `json:"model" mapstructure:"model"`

	// APIKey is the provider API key. Falls back to the TASKMIND_LLM_API_KEY
	// environment variable when empty. An empty effective key disables the
	// agent rather than failing startup.
	APIKey string `json:"api-key" mapstructure:"api-key"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `json:"base-url" mapstructure:"base-url"`

	// MaxTokens caps the completion length.
	MaxTokens int `json:"max-tokens" mapstructure:"max-tokens"`

	// Temperature controls sampling.
	Temperature float32 `json:"temperature" mapstructure:"temperature"`
}

// NewLLMOptions creates an LLMOptions with defaults.
func NewLLMOptions() *LLMOptions {
	return &LLMOptions{
		Model:       "gpt-4o-mini",
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// ResolveAPIKey returns the effective API key, checking the environment as
// fallback.
func (o *LLMOptions) ResolveAPIKey() string {
	if o.APIKey != "" {
		return o.APIKey
	}
	return os.Getenv("TASKMIND_LLM_API_KEY")
}

// Validate checks the LLMOptions for correctness.
func (o *LLMOptions) Validate() []error {
	var errs []error

	if o.Model == "" {
		errs = append(errs, fmt.Errorf("llm model must not be empty"))
	}
	if o.MaxTokens < 0 {
		errs = append(errs, fmt.Errorf("llm max tokens %d must not be negative", o.MaxTokens))
	}

	return errs
}

// AddFlags adds the LLMOptions flags to the given flag set.
func (o *LLMOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Model, "llm.model", o.Model, "Chat model identifier at the provider.")
	fs.StringVar(&o.APIKey, "llm.api-key", o.APIKey, "Provider API key. Empty disables agent responses.")
	fs.StringVar(&o.BaseURL, "llm.base-url", o.BaseURL, "OpenAI-compatible endpoint override.")
	fs.IntVar(&o.MaxTokens, "llm.max-tokens", o.MaxTokens, "Completion token limit.")
	fs.Float32Var(&o.Temperature, "llm.temperature", o.Temperature, "Sampling temperature.")
}
