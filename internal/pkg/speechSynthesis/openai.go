package speechSynthesis

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"
const openAISpeechModel = "gpt-4o-mini-tts"
const openAISpeechFormat = "mp3"

// OpenAISynthesizer calls the OpenAI speech endpoint with a fixed model
// and output format, returning the full MP3 body.
type OpenAISynthesizer struct {
	BaseURL    string
	APIKey     string
	Voice      string
	HttpClient *http.Client
}

func NewOpenAISynthesizer(apiKey, voice string) *OpenAISynthesizer {
	if voice == "" {
		voice = "alloy"
	}
	return &OpenAISynthesizer{
		BaseURL:    defaultOpenAIBaseURL,
		APIKey:     apiKey,
		Voice:      voice,
		HttpClient: http.DefaultClient,
	}
}

type openAISpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

func (synthesizer *OpenAISynthesizer) Speak(ctx context.Context, text string) (*Audio, error) {
	content, err := sonic.Marshal(openAISpeechRequest{
		Model:          openAISpeechModel,
		Input:          text,
		Voice:          synthesizer.Voice,
		ResponseFormat: openAISpeechFormat,
	})
	if err != nil {
		return nil, err
	}

	speechURL := strings.TrimRight(synthesizer.BaseURL, "/") + "/audio/speech"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, speechURL, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+synthesizer.APIKey)

	response, err := synthesizer.HttpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Error().Int("status", response.StatusCode).Msg("speech endpoint returned non-success status")
		return nil, &UpstreamError{Provider: "openai", StatusCode: response.StatusCode, Body: string(body)}
	}

	return &Audio{Data: body, MIMEType: "audio/mpeg"}, nil
}
