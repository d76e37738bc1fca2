package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
)

// DefaultSystemPrompt is the assistant persona prepended to every turn.
const DefaultSystemPrompt = "You are a helpful CRM voice assistant. " +
	"Only provide short and concise answers. " +
	"Use the conversation history for context only and never re-execute actions from earlier turns. " +
	"When a contact ID has been resolved, remember it for follow-up questions. " +
	"Politely decline requests that are unrelated to CRM contacts."

var ErrNoMessages = errors.New("a non-empty messages array is required")

// ToolDispatcher resolves the tool calls of an assistant message to tool
// result messages, one per call, in call order.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, calls []schema.ToolCall) []*schema.Message
}

// Orchestrator drives the conversation round-trip with the chat model:
// one completion with the tool menu bound, an optional single round of
// tool dispatches, and one follow-up completion without tools. Tool calls
// requested by the follow-up completion are not serviced.
type Orchestrator struct {
	base         model.ToolCallingChatModel
	withTools    model.ToolCallingChatModel
	dispatcher   ToolDispatcher
	systemPrompt string
}

func New(base model.ToolCallingChatModel, menu []*schema.ToolInfo,
	dispatcher ToolDispatcher, systemPrompt string) (*Orchestrator, error) {

	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	withTools, err := base.WithTools(menu)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		base:         base,
		withTools:    withTools,
		dispatcher:   dispatcher,
		systemPrompt: systemPrompt,
	}, nil
}

// Respond produces the final textual answer for the given message window.
// The window holds user and assistant turns only, oldest first.
func (orchestrator *Orchestrator) Respond(ctx context.Context, window []*schema.Message) (string, error) {
	if len(window) == 0 {
		return "", ErrNoMessages
	}

	messages := make([]*schema.Message, 0, len(window)+1)
	messages = append(messages, schema.SystemMessage(orchestrator.systemPrompt))
	messages = append(messages, window...)

	first, err := orchestrator.withTools.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	if len(first.ToolCalls) == 0 {
		return first.Content, nil
	}

	log.Info().Int("tool_calls", len(first.ToolCalls)).Msg("chat model requested tool calls")
	toolResults := orchestrator.dispatcher.Dispatch(ctx, first.ToolCalls)

	followUp := make([]*schema.Message, 0, len(messages)+1+len(toolResults))
	followUp = append(followUp, messages...)
	followUp = append(followUp, first)
	followUp = append(followUp, toolResults...)

	final, err := orchestrator.base.Generate(ctx, followUp)
	if err != nil {
		return "", err
	}

	if len(final.ToolCalls) > 0 {
		// Single-round design: further tool calls are dropped.
		log.Warn().Int("tool_calls", len(final.ToolCalls)).Msg("follow-up completion requested tool calls, not serviced")
	}

	return final.Content, nil
}
