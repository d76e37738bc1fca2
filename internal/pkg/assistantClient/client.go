package assistantClient

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"voice-assistant/internal/pkg/voiceSession"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// Client submits conversation windows to the backend converse endpoint
// and decodes the {text, audio} reply envelope.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
}

type converseRequest struct {
	Messages []voiceSession.Turn `json:"messages"`
}

type converseResponse struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

func (client *Client) Converse(ctx context.Context, window []voiceSession.Turn) (*voiceSession.Reply, error) {
	content, err := sonic.Marshal(converseRequest{Messages: window})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// Any non-2xx status is a failure, regardless of body shape.
	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Error().Int("status", response.StatusCode).Msg("converse endpoint returned non-success status")
		return nil, fmt.Errorf("converse request failed with status %d", response.StatusCode)
	}

	var decoded converseResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("malformed converse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(decoded.Audio)
	if err != nil {
		return nil, fmt.Errorf("malformed audio payload: %w", err)
	}

	return &voiceSession.Reply{Text: decoded.Text, Audio: audio}, nil
}
