package crmTools

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Action  string
	Payload map[string]string
}

type fakeRPCClient struct {
	mutex   sync.Mutex
	calls   []recordedCall
	results map[string][]byte
	errors  map[string]error
}

func (client *fakeRPCClient) Execute(ctx context.Context, action string, payload map[string]string) ([]byte, error) {
	client.mutex.Lock()
	client.calls = append(client.calls, recordedCall{Action: action, Payload: payload})
	client.mutex.Unlock()

	if err, ok := client.errors[action]; ok {
		return nil, err
	}
	if result, ok := client.results[action]; ok {
		return result, nil
	}
	return []byte(`{}`), nil
}

func (client *fakeRPCClient) callFor(action string) (recordedCall, bool) {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	for _, call := range client.calls {
		if call.Action == action {
			return call, true
		}
	}
	return recordedCall{}, false
}

func toolCall(id, name, arguments string) schema.ToolCall {
	return schema.ToolCall{
		ID: id,
		Function: schema.FunctionCall{
			Name:      name,
			Arguments: arguments,
		},
	}
}

func TestDispatchMapsArgumentsToActionPayloads(t *testing.T) {
	client := &fakeRPCClient{
		results: map[string][]byte{
			"GetContactAddress": []byte(`{"address":"1 Main Street"}`),
		},
	}
	dispatcher := NewDispatcher(client)

	results := dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", GetContactAddress, `{"contactId":"C0001"}`),
	})

	require.Len(t, results, 1)
	assert.Equal(t, schema.Tool, results[0].Role)
	assert.Equal(t, "call-1", results[0].ToolCallID)
	assert.JSONEq(t, `{"address":"1 Main Street"}`, results[0].Content)

	call, ok := client.callFor("GetContactAddress")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"varContactID": "C0001"}, call.Payload)
}

func TestDispatchUpdatePhoneNumberPayload(t *testing.T) {
	client := &fakeRPCClient{}
	dispatcher := NewDispatcher(client)

	dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", UpdateContactPhoneNumber, `{"contactId":"C07","mobileNumber":"0123456789"}`),
	})

	call, ok := client.callFor("UpdateContactPhoneNumber")
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"varContactID":         "C07",
		"varMobilePhoneNumber": "0123456789",
	}, call.Payload)
}

func TestDispatchRunsEveryCallAndPreservesOrder(t *testing.T) {
	client := &fakeRPCClient{}
	dispatcher := NewDispatcher(client)

	results := dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", SearchByContactID, `{"contactId":"C01"}`),
		toolCall("call-2", GetMobilePhoneNumber, `{"contactId":"C02"}`),
		toolCall("call-3", GetContactAddress, `{"contactId":"C03"}`),
		toolCall("call-4", GetContactAddress, `{"contactId":"C04"}`),
	})

	require.Len(t, results, 4)
	for index, expectedId := range []string{"call-1", "call-2", "call-3", "call-4"} {
		assert.Equal(t, expectedId, results[index].ToolCallID)
	}

	client.mutex.Lock()
	defer client.mutex.Unlock()
	assert.Len(t, client.calls, 4)
}

func TestDispatchUnknownFunction(t *testing.T) {
	dispatcher := NewDispatcher(&fakeRPCClient{})

	results := dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", "delete_all_contacts", `{}`),
	})

	require.Len(t, results, 1)
	assert.JSONEq(t, `{"error":"Unknown function"}`, results[0].Content)
}

func TestDispatchFailingCallDoesNotAbortOthers(t *testing.T) {
	client := &fakeRPCClient{
		errors: map[string]error{
			"GetMobilePhoneNumber": errors.New("upstream exploded"),
		},
		results: map[string][]byte{
			"GetContactAddress": []byte(`{"address":"1 Main Street"}`),
		},
	}
	dispatcher := NewDispatcher(client)

	results := dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", GetMobilePhoneNumber, `{"contactId":"C01"}`),
		toolCall("call-2", GetContactAddress, `{"contactId":"C01"}`),
	})

	require.Len(t, results, 2)
	assert.JSONEq(t, `{"error":"upstream exploded"}`, results[0].Content)
	assert.JSONEq(t, `{"address":"1 Main Street"}`, results[1].Content)
}

func TestDispatchMalformedArguments(t *testing.T) {
	dispatcher := NewDispatcher(&fakeRPCClient{})

	results := dispatcher.Dispatch(context.Background(), []schema.ToolCall{
		toolCall("call-1", SearchByContactID, `{"contactId":`),
	})

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "Invalid arguments")
}

func TestMenuAndDispatchTableStayInLockstep(t *testing.T) {
	menu := Menu()
	assert.Len(t, menu, len(rpcBindings))
	for _, tool := range menu {
		_, ok := rpcBindings[tool.Name]
		assert.True(t, ok, "menu tool %s has no dispatch binding", tool.Name)
	}
}
