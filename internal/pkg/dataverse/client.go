package dataverse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const apiPathPrefix = "/api/data/v9.2/"

// Client calls named custom actions on the CRM data store. Every Execute
// authenticates independently through the token provider.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

func NewClient(baseURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: http.DefaultClient,
	}
}

// Execute posts the payload to the named action and returns the raw
// response body on success.
func (client *Client) Execute(ctx context.Context, action string, payload map[string]string) ([]byte, error) {
	token, err := client.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token acquisition failed: %w", err)
	}

	content, err := sonic.Marshal(payload)
	if err != nil {
		return nil, err
	}

	actionURL := client.baseURL + apiPathPrefix + action
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, actionURL, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Error().Int("status", response.StatusCode).Str("action", action).Msg("data store action returned non-success status")
		return nil, fmt.Errorf("action %s failed with status %d", action, response.StatusCode)
	}

	return body, nil
}
