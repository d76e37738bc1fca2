package httpHandlers

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
)

type wireTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type converseRequest struct {
	Messages []wireTurn `json:"messages"`
}

type converseResponse struct {
	Text     string `json:"text"`
	Audio    string `json:"audio"`
	MimeType string `json:"mimeType,omitempty"`
}

type exchangeNotification struct {
	Id         string `json:"id"`
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
}

// toSchemaMessages converts the wire window to chat model messages. Tool
// turns are never accepted from callers.
func toSchemaMessages(turns []wireTurn) ([]*schema.Message, error) {
	messages := make([]*schema.Message, len(turns))
	for index, turn := range turns {
		switch turn.Role {
		case "user":
			messages[index] = schema.UserMessage(turn.Content)
		case "assistant":
			messages[index] = schema.AssistantMessage(turn.Content, nil)
		default:
			return nil, fmt.Errorf("unsupported message role %q", turn.Role)
		}
	}
	return messages, nil
}

func lastUserContent(turns []wireTurn) string {
	for index := len(turns) - 1; index >= 0; index-- {
		if turns[index].Role == "user" {
			return turns[index].Content
		}
	}
	return ""
}
