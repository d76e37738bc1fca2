package voiceSession

import (
	"context"
	"strings"
	"sync"

	"voice-assistant/internal/pkg/audioPlayback"
	"voice-assistant/internal/pkg/speechCapture"

	"github.com/rs/zerolog/log"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusListening  Status = "listening"
	StatusProcessing Status = "processing"
	StatusPlaying    Status = "playing"
	StatusError      Status = "error"
)

// Controller drives the push-to-talk lifecycle:
// idle → listening → processing → playing → idle, with error reachable
// from processing and playing. At most one request is in flight; the mic
// is rejected while processing.
type Controller struct {
	mutex    sync.Mutex
	status   Status
	session  *Session
	capture  *speechCapture.Capture
	playback *audioPlayback.Controller
	backend  Backend
	onStatus func(Status)
}

type ControllerConfig struct {
	Capture    *speechCapture.Capture
	Playback   *audioPlayback.Controller
	Backend    Backend
	WindowSize int
	OnStatus   func(Status)
}

func NewController(configuration ControllerConfig) *Controller {
	controller := &Controller{
		status:   StatusIdle,
		session:  NewSession(configuration.WindowSize),
		capture:  configuration.Capture,
		playback: configuration.Playback,
		backend:  configuration.Backend,
		onStatus: configuration.OnStatus,
	}

	controller.capture.OnCycleEnd(controller.handleTranscript)

	return controller
}

func (controller *Controller) Status() Status {
	controller.mutex.Lock()
	defer controller.mutex.Unlock()
	return controller.status
}

func (controller *Controller) Session() *Session {
	return controller.session
}

// PressMic starts a listening cycle. Any active playback is interrupted
// first; an in-flight request is not cancelled, the press is rejected
// instead.
func (controller *Controller) PressMic() {
	controller.playback.Stop()

	if !controller.capture.Supported() {
		return
	}

	controller.mutex.Lock()
	if controller.status == StatusProcessing {
		controller.mutex.Unlock()
		return
	}
	controller.mutex.Unlock()

	if controller.capture.Listening() {
		return
	}

	controller.setStatus(StatusListening)
	if err := controller.capture.StartListening(); err != nil {
		log.Error().Err(err).Msg("speech capture start failed")
		controller.setStatus(StatusIdle)
	}
}

// ReleaseMic asks the capture engine to finalize the current utterance.
func (controller *Controller) ReleaseMic() {
	controller.capture.StopListening()
}

func (controller *Controller) handleTranscript(transcript string) {
	if strings.TrimSpace(transcript) == "" {
		controller.setStatus(StatusIdle)
		return
	}

	controller.send(transcript)
}

func (controller *Controller) send(transcript string) {
	if controller.backend == nil {
		log.Error().Msg("backend endpoint is not configured")
		controller.setStatus(StatusIdle)
		return
	}

	controller.setStatus(StatusProcessing)
	controller.session.Append(Turn{Role: RoleUser, Content: transcript})

	reply, err := controller.backend.Converse(context.Background(), controller.session.Window())
	if err != nil {
		// The appended user turn stays in history for the next attempt.
		log.Error().Err(err).Msg("conversation request failed")
		controller.setStatus(StatusError)
		return
	}

	if reply.Text != "" {
		controller.session.Append(Turn{Role: RoleAssistant, Content: reply.Text})
	}

	controller.setStatus(StatusPlaying)
	if err := controller.playback.Play(reply.Audio, func() {
		controller.setStatus(StatusIdle)
	}); err != nil {
		controller.setStatus(StatusError)
	}
}

func (controller *Controller) setStatus(status Status) {
	controller.mutex.Lock()
	controller.status = status
	callback := controller.onStatus
	controller.mutex.Unlock()

	if callback != nil {
		callback(status)
	}
}
