package speechSynthesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiSynthesizerRequiresAPIKey(t *testing.T) {
	synthesizer, err := NewGeminiSynthesizer(context.Background(), "", "")
	assert.Error(t, err)
	assert.Nil(t, synthesizer)
}

func TestExtractAudioReturnsFirstInlineDataPart(t *testing.T) {
	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "spoken transcript"},
						{InlineData: &genai.Blob{
							MIMEType: "audio/L16;codec=pcm;rate=24000",
							Data:     []byte{1, 2, 3},
						}},
					},
				},
			},
		},
	}

	audio, err := extractAudio(response)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, audio.Data)
	assert.Equal(t, "audio/L16;codec=pcm;rate=24000", audio.MIMEType)
}

func TestExtractAudioWithoutAudioPart(t *testing.T) {
	responses := []*genai.GenerateContentResponse{
		{},
		{Candidates: []*genai.Candidate{{}}},
		{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "text only"}}}},
		}},
		{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{}}}}},
		}},
	}

	for _, response := range responses {
		audio, err := extractAudio(response)
		assert.Error(t, err)
		assert.Nil(t, audio)
	}
}
