package httpHandlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"voice-assistant/internal/pkg/speechSynthesis"
	"voice-assistant/internal/pkg/web"
	"voice-assistant/internal/pkg/websocketServer"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Responder produces the final textual answer for a message window.
// Implemented by the orchestrator.
type Responder interface {
	Respond(ctx context.Context, window []*schema.Message) (string, error)
}

type ConverseHandlers struct {
	responder          Responder
	synthesizer        speechSynthesis.Synthesizer
	notificationServer websocketServer.WebsocketServer
}

func New(responder Responder, synthesizer speechSynthesis.Synthesizer,
	notificationServer websocketServer.WebsocketServer) *ConverseHandlers {
	return &ConverseHandlers{
		responder:          responder,
		synthesizer:        synthesizer,
		notificationServer: notificationServer,
	}
}

// Converse handles one user turn: orchestrate the answer, synthesize it,
// and return the {text, audio} envelope. All errors are converted to an
// HTTP status here; nothing propagates past this handler.
func (instance *ConverseHandlers) Converse(request *http.Request, simulatedDelay int) *web.Response {
	time.Sleep(time.Duration(simulatedDelay) * time.Millisecond)

	if instance.responder == nil || instance.synthesizer == nil {
		log.Error().Msg("assistant providers are not configured")
		return web.GetErrorResponse(http.StatusInternalServerError, "assistant is not configured")
	}

	var payload converseRequest
	if err := web.DecodeJsonRequest(request, &payload); err != nil {
		log.Error().Err(err).Msg("failed to decode converse request")
		return web.GetErrorResponse(http.StatusBadRequest, "A 'messages' array is required.")
	}

	if len(payload.Messages) == 0 {
		return web.GetErrorResponse(http.StatusBadRequest, "A 'messages' array is required.")
	}

	window, err := toSchemaMessages(payload.Messages)
	if err != nil {
		return web.GetErrorResponse(http.StatusBadRequest, err.Error())
	}

	answer, err := instance.responder.Respond(request.Context(), window)
	if err != nil {
		log.Error().Err(err).Msg("orchestrator.Respond() failed")
		return web.GetErrorResponse(http.StatusInternalServerError, "failed to produce an answer")
	}

	audio, err := instance.synthesizer.Speak(request.Context(), answer)
	if err != nil {
		var upstreamError *speechSynthesis.UpstreamError
		if errors.As(err, &upstreamError) {
			log.Error().Int("upstream_status", upstreamError.StatusCode).Msg("speech synthesis failed")
			return web.GetErrorResponse(http.StatusInternalServerError,
				fmt.Sprintf("speech synthesis failed with status %d", upstreamError.StatusCode))
		}
		log.Error().Err(err).Msg("speech synthesis failed")
		return web.GetErrorResponse(http.StatusInternalServerError, "speech synthesis failed")
	}

	instance.publishExchange(payload, answer)

	return web.GetJsonResponse(http.StatusOK, converseResponse{
		Text:     answer,
		Audio:    base64.StdEncoding.EncodeToString(audio.Data),
		MimeType: audio.MIMEType,
	}, nil)
}

func (instance *ConverseHandlers) publishExchange(payload converseRequest, answer string) {
	if instance.notificationServer == nil {
		return
	}

	notification, err := sonic.Marshal(exchangeNotification{
		Id:         uuid.NewString(),
		Transcript: lastUserContent(payload.Messages),
		Reply:      answer,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode exchange notification")
		return
	}

	instance.notificationServer.Publish(notification)
}
