package assistantClient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-assistant/internal/pkg/voiceSession"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverseSubmitsWindowAndDecodesReply(t *testing.T) {
	var gotRequest converseRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotRequest))

		response := converseResponse{
			Text:  "It is 1 Main Street.",
			Audio: base64.StdEncoding.EncodeToString([]byte("mp3-bytes")),
		}
		encoded, _ := json.Marshal(response)
		w.Header().Set("Content-Type", "application/json")
		w.Write(encoded)
	}))
	defer server.Close()

	client := New(server.URL)
	window := []voiceSession.Turn{
		{Role: voiceSession.RoleUser, Content: "What is C0001's address?"},
	}

	reply, err := client.Converse(context.Background(), window)
	require.NoError(t, err)

	require.Len(t, gotRequest.Messages, 1)
	assert.Equal(t, "user", gotRequest.Messages[0].Role)
	assert.Equal(t, "What is C0001's address?", gotRequest.Messages[0].Content)

	assert.Equal(t, "It is 1 Main Street.", reply.Text)
	assert.Equal(t, []byte("mp3-bytes"), reply.Audio)
}

func TestConverseNonSuccessStatusIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL)

	reply, err := client.Converse(context.Background(), []voiceSession.Turn{{Role: "user", Content: "Hi"}})
	assert.Error(t, err)
	assert.Nil(t, reply)
	assert.Contains(t, err.Error(), "502")
}

func TestConverseMalformedBodyIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client := New(server.URL)

	reply, err := client.Converse(context.Background(), []voiceSession.Turn{{Role: "user", Content: "Hi"}})
	assert.Error(t, err)
	assert.Nil(t, reply)
}
