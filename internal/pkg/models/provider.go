package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	ollamaApi "github.com/ollama/ollama/api"
)

const defaultAnthropicMaxTokens = 1024

// ProviderConfig describes which chat model to construct. ModelString uses
// the "provider:model" form, e.g. "openai:gpt-4o" or "ollama:qwen3:8b".
type ProviderConfig struct {
	ModelString      string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	OllamaBaseURL    string
	Temperature      float32
}

// NewToolCallingChatModel builds the chat model named by configuration.
// All supported providers return models that can have the tool menu bound.
func NewToolCallingChatModel(ctx context.Context, configuration *ProviderConfig) (model.ToolCallingChatModel, error) {
	parts := strings.SplitN(configuration.ModelString, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid model string %q, expected provider:model", configuration.ModelString)
	}

	provider := parts[0]
	modelName := parts[1]
	temperature := configuration.Temperature

	switch provider {
	case "openai":
		if configuration.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is not configured")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      configuration.OpenAIAPIKey,
			BaseURL:     configuration.OpenAIBaseURL,
			Model:       modelName,
			Temperature: &temperature,
		})

	case "anthropic", "claude":
		if configuration.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("Anthropic API key is not configured")
		}
		claudeConfig := &claude.Config{
			APIKey:      configuration.AnthropicAPIKey,
			Model:       modelName,
			MaxTokens:   defaultAnthropicMaxTokens,
			Temperature: &temperature,
		}
		if configuration.AnthropicBaseURL != "" {
			baseURL := configuration.AnthropicBaseURL
			claudeConfig.BaseURL = &baseURL
		}
		return claude.NewChatModel(ctx, claudeConfig)

	case "ollama":
		baseURL := configuration.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   modelName,
			Options: &ollamaApi.Options{
				Temperature: temperature,
			},
		})

	default:
		return nil, fmt.Errorf("unsupported model provider %q", provider)
	}
}
