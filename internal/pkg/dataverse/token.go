package dataverse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const defaultLoginBaseURL = "https://login.microsoftonline.com"

// TokenProvider exchanges configured credentials for a bearer token. A fresh
// token is requested for every RPC dispatch; nothing is cached.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// ClientCredentialsTokenProvider implements the OAuth2 client-credentials
// grant against the identity platform that fronts the data store.
type ClientCredentialsTokenProvider struct {
	LoginBaseURL string
	TenantID     string
	ClientID     string
	ClientSecret string
	Scope        string
	HttpClient   *http.Client
}

func NewClientCredentialsTokenProvider(tenantID, clientID, clientSecret, resourceURL string) *ClientCredentialsTokenProvider {
	return &ClientCredentialsTokenProvider{
		LoginBaseURL: defaultLoginBaseURL,
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        strings.TrimRight(resourceURL, "/") + "/.default",
		HttpClient:   http.DefaultClient,
	}
}

func (provider *ClientCredentialsTokenProvider) Token(ctx context.Context) (string, error) {
	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", strings.TrimRight(provider.LoginBaseURL, "/"), provider.TenantID)

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", provider.ClientID)
	form.Set("client_secret", provider.ClientSecret)
	form.Set("scope", provider.Scope)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := provider.HttpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		log.Error().Int("status", response.StatusCode).Msg("token endpoint returned non-success status")
		return "", fmt.Errorf("token request failed with status %d", response.StatusCode)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := sonic.Unmarshal(body, &tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access_token")
	}

	return tokenResponse.AccessToken, nil
}
