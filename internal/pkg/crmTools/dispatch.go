package crmTools

import (
	"context"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
)

// RPCClient executes one named action against the CRM data store.
type RPCClient interface {
	Execute(ctx context.Context, action string, payload map[string]string) ([]byte, error)
}

type toolArguments struct {
	ContactID    string `json:"contactId"`
	MobileNumber string `json:"mobileNumber"`
}

type rpcBinding struct {
	action  string
	payload func(arguments toolArguments) map[string]string
}

// One exhaustive table; adding an operation means one entry here plus its
// menu declaration.
var rpcBindings = map[string]rpcBinding{
	SearchByContactID: {
		action: "SearchByContactID",
		payload: func(arguments toolArguments) map[string]string {
			return map[string]string{"varContactID": arguments.ContactID}
		},
	},
	GetMobilePhoneNumber: {
		action: "GetMobilePhoneNumber",
		payload: func(arguments toolArguments) map[string]string {
			return map[string]string{"varContactID": arguments.ContactID}
		},
	},
	UpdateContactPhoneNumber: {
		action: "UpdateContactPhoneNumber",
		payload: func(arguments toolArguments) map[string]string {
			return map[string]string{
				"varContactID":         arguments.ContactID,
				"varMobilePhoneNumber": arguments.MobileNumber,
			}
		},
	},
	GetContactAddress: {
		action: "GetContactAddress",
		payload: func(arguments toolArguments) map[string]string {
			return map[string]string{"varContactID": arguments.ContactID}
		},
	},
}

// Dispatcher resolves tool calls emitted by the chat model to CRM actions.
type Dispatcher struct {
	client RPCClient
}

func NewDispatcher(client RPCClient) *Dispatcher {
	return &Dispatcher{client: client}
}

// Dispatch runs all tool calls concurrently and returns one tool message
// per call, in call order. A failing call is represented by a structured
// error payload and never affects the other calls.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, calls []schema.ToolCall) []*schema.Message {
	results := make([]*schema.Message, len(calls))

	var waitGroup sync.WaitGroup
	for index, call := range calls {
		waitGroup.Add(1)
		go func(index int, call schema.ToolCall) {
			defer waitGroup.Done()
			results[index] = schema.ToolMessage(dispatcher.dispatchOne(ctx, call), call.ID)
		}(index, call)
	}
	waitGroup.Wait()

	return results
}

func (dispatcher *Dispatcher) dispatchOne(ctx context.Context, call schema.ToolCall) string {
	name := call.Function.Name

	binding, ok := rpcBindings[name]
	if !ok {
		log.Warn().Str("tool_name", name).Msg("chat model requested an unknown function")
		return errorContent("Unknown function")
	}

	var arguments toolArguments
	if err := sonic.Unmarshal([]byte(call.Function.Arguments), &arguments); err != nil {
		log.Error().Err(err).Str("tool_name", name).Msg("failed to decode tool arguments")
		return errorContent("Invalid arguments: " + err.Error())
	}

	if dispatcher.client == nil {
		log.Error().Str("tool_name", name).Msg("CRM backend is not configured")
		return errorContent("CRM backend is not configured")
	}

	result, err := dispatcher.client.Execute(ctx, binding.action, binding.payload(arguments))
	if err != nil {
		log.Error().Err(err).Str("tool_name", name).Str("action", binding.action).Msg("tool dispatch failed")
		return errorContent(err.Error())
	}

	log.Info().Str("tool_name", name).Str("action", binding.action).Msg("tool call processed")
	return string(result)
}

func errorContent(message string) string {
	content, err := sonic.Marshal(map[string]string{"error": message})
	if err != nil {
		return `{"error":"internal error"}`
	}
	return string(content)
}
