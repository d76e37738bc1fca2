package speechSynthesis

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

const geminiSpeechModel = "gemini-2.5-flash-preview-tts"

// GeminiSynthesizer is the alternative speech provider. The model returns
// raw PCM as inline data; the reported MIME type is passed through.
type GeminiSynthesizer struct {
	client *genai.Client
	voice  string
}

func NewGeminiSynthesizer(ctx context.Context, apiKey, voice string) (*GeminiSynthesizer, error) {
	if apiKey == "" {
		return nil, errors.New("google API key is not configured")
	}
	if voice == "" {
		voice = "Kore"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiSynthesizer{client: client, voice: voice}, nil
}

func (synthesizer *GeminiSynthesizer) Speak(ctx context.Context, text string) (*Audio, error) {
	response, err := synthesizer.client.Models.GenerateContent(ctx, geminiSpeechModel,
		genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: synthesizer.voice,
					},
				},
			},
		})
	if err != nil {
		return nil, err
	}

	return extractAudio(response)
}

// extractAudio picks the first inline audio part out of a generation
// response.
func extractAudio(response *genai.GenerateContentResponse) (*Audio, error) {
	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &Audio{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, nil
			}
		}
	}

	return nil, errors.New("speech response contained no audio data")
}
