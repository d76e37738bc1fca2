package voiceSession

import (
	"sync"
)

const DefaultWindowSize = 6

// Session holds the ordered turn history of one mounted assistant
// instance. Turns are append-only; the trailing window is what gets
// submitted to the backend.
type Session struct {
	mutex      sync.Mutex
	turns      []Turn
	windowSize int
}

func NewSession(windowSize int) *Session {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Session{windowSize: windowSize}
}

func (session *Session) Append(turn Turn) {
	session.mutex.Lock()
	defer session.mutex.Unlock()
	session.turns = append(session.turns, turn)
}

// Window returns a copy of the last N turns, oldest first.
func (session *Session) Window() []Turn {
	session.mutex.Lock()
	defer session.mutex.Unlock()

	start := 0
	if len(session.turns) > session.windowSize {
		start = len(session.turns) - session.windowSize
	}

	window := make([]Turn, len(session.turns)-start)
	copy(window, session.turns[start:])
	return window
}

// Turns returns a copy of the full history.
func (session *Session) Turns() []Turn {
	session.mutex.Lock()
	defer session.mutex.Unlock()

	turns := make([]Turn, len(session.turns))
	copy(turns, session.turns)
	return turns
}
