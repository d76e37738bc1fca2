package speechCapture

import (
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Engine is the dictation engine supplied by the hosting environment. It
// runs in non-continuous mode: after Start it finalizes at most one
// utterance, then ends on its own (or on silence or error). The engine
// reports back through the capture's Handle methods.
type Engine interface {
	Start() error
	Stop()
}

// Engine-level failure classes. They are logged and end the current
// listening cycle; callers only observe "no longer listening".
var (
	ErrNoSpeech              = errors.New("no speech was detected")
	ErrMicrophoneUnavailable = errors.New("microphone not available")
)

var ErrAlreadyListening = errors.New("capture is already listening")
var ErrUnsupported = errors.New("speech capture is not supported in this environment")

// Capture wraps the engine with push-to-talk semantics and produces at
// most one finalized, normalized transcript per start/stop cycle.
type Capture struct {
	mutex      sync.Mutex
	engine     Engine
	listening  bool
	transcript string
	onCycleEnd func(transcript string)
}

// New builds a Capture over the given engine. A nil engine means the
// hosting environment has no dictation capability; capture is then
// permanently disabled and Supported reports false.
func New(engine Engine) *Capture {
	return &Capture{engine: engine}
}

func (capture *Capture) Supported() bool {
	return capture.engine != nil
}

func (capture *Capture) Listening() bool {
	capture.mutex.Lock()
	defer capture.mutex.Unlock()
	return capture.listening
}

// OnCycleEnd registers the callback fired exactly once per listening
// cycle, with the finalized transcript (possibly empty).
func (capture *Capture) OnCycleEnd(callback func(transcript string)) {
	capture.mutex.Lock()
	defer capture.mutex.Unlock()
	capture.onCycleEnd = callback
}

// StartListening begins a new capture cycle, clearing any prior transcript.
func (capture *Capture) StartListening() error {
	if capture.engine == nil {
		return ErrUnsupported
	}

	capture.mutex.Lock()
	if capture.listening {
		capture.mutex.Unlock()
		return ErrAlreadyListening
	}
	capture.transcript = ""
	capture.listening = true
	capture.mutex.Unlock()

	if err := capture.engine.Start(); err != nil {
		capture.mutex.Lock()
		capture.listening = false
		capture.mutex.Unlock()
		return err
	}

	return nil
}

// StopListening requests the engine to finish the current cycle. The cycle
// actually ends when the engine reports it through HandleEnd.
func (capture *Capture) StopListening() {
	if capture.engine == nil {
		return
	}

	capture.mutex.Lock()
	listening := capture.listening
	capture.mutex.Unlock()

	if listening {
		capture.engine.Stop()
	}
}

// HandleResult receives the raw finalized utterance from the engine.
func (capture *Capture) HandleResult(raw string) {
	normalized := NormalizeIdentifiers(raw)

	capture.mutex.Lock()
	capture.transcript = strings.TrimSpace(normalized)
	capture.mutex.Unlock()
}

// HandleEnd receives the engine's end-of-capture event.
func (capture *Capture) HandleEnd() {
	capture.endCycle()
}

// HandleError receives an engine-level error. The error is logged by
// class and the listening cycle ends; no error reaches the caller.
func (capture *Capture) HandleError(err error) {
	switch {
	case errors.Is(err, ErrNoSpeech):
		log.Warn().Msg("speech capture: no speech was detected")
	case errors.Is(err, ErrMicrophoneUnavailable):
		log.Error().Msg("speech capture: microphone not available")
	default:
		log.Error().Err(err).Msg("speech capture failed")
	}

	capture.endCycle()
}

func (capture *Capture) endCycle() {
	capture.mutex.Lock()
	if !capture.listening {
		capture.mutex.Unlock()
		return
	}
	capture.listening = false
	transcript := capture.transcript
	callback := capture.onCycleEnd
	capture.mutex.Unlock()

	if callback != nil {
		callback(transcript)
	}
}
