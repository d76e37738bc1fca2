package speechSynthesis

import (
	"context"
	"fmt"
)

// Audio is a fully buffered synthesized utterance.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Synthesizer turns the orchestrator's final answer into speech audio.
type Synthesizer interface {
	Speak(ctx context.Context, text string) (*Audio, error)
}

// UpstreamError reports a non-success status from a speech provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (err *UpstreamError) Error() string {
	return fmt.Sprintf("%s speech synthesis failed with status %d", err.Provider, err.StatusCode)
}
