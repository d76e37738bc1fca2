package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewToolCallingChatModelOpenAI(t *testing.T) {
	chatModel, err := NewToolCallingChatModel(context.Background(), &ProviderConfig{
		ModelString:  "openai:gpt-4o",
		OpenAIAPIKey: "test-key",
		Temperature:  0.7,
	})

	assert.NoError(t, err)
	assert.NotNil(t, chatModel)
}

func TestNewToolCallingChatModelMissingOpenAIKey(t *testing.T) {
	chatModel, err := NewToolCallingChatModel(context.Background(), &ProviderConfig{
		ModelString: "openai:gpt-4o",
	})

	assert.Error(t, err)
	assert.Nil(t, chatModel)
}

func TestNewToolCallingChatModelUnknownProvider(t *testing.T) {
	chatModel, err := NewToolCallingChatModel(context.Background(), &ProviderConfig{
		ModelString: "bogus:some-model",
	})

	assert.Error(t, err)
	assert.Nil(t, chatModel)
}

func TestNewToolCallingChatModelMalformedModelString(t *testing.T) {
	for _, modelString := range []string{"", "openai", ":gpt-4o", "openai:"} {
		chatModel, err := NewToolCallingChatModel(context.Background(), &ProviderConfig{
			ModelString: modelString,
		})

		assert.Error(t, err, modelString)
		assert.Nil(t, chatModel, modelString)
	}
}
