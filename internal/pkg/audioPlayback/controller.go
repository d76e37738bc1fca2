package audioPlayback

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Controller owns the single live playback clip. Starting a new clip
// always stops and releases the previous one first; two clips never
// produce output at the same time.
type Controller struct {
	mutex   sync.Mutex
	player  Player
	current Clip
}

func NewController(player Player) *Controller {
	return &Controller{player: player}
}

// Play decodes the audio, stops any active clip, and starts the new one.
// onEnded fires when the new clip finishes naturally.
func (controller *Controller) Play(data []byte, onEnded func()) error {
	clip, err := controller.player.Decode(data)
	if err != nil {
		log.Error().Err(err).Msg("audio decode failed")
		return err
	}

	controller.mutex.Lock()
	previous := controller.current
	controller.current = clip
	controller.mutex.Unlock()

	if previous != nil {
		previous.Stop()
	}

	if err := clip.Play(func() {
		controller.mutex.Lock()
		if controller.current == clip {
			controller.current = nil
		}
		controller.mutex.Unlock()

		if onEnded != nil {
			onEnded()
		}
	}); err != nil {
		log.Error().Err(err).Msg("clip playback failed")

		controller.mutex.Lock()
		if controller.current == clip {
			controller.current = nil
		}
		controller.mutex.Unlock()
		return err
	}

	return nil
}

// Stop ends the active clip, if any, without firing its end callback.
func (controller *Controller) Stop() {
	controller.mutex.Lock()
	current := controller.current
	controller.current = nil
	controller.mutex.Unlock()

	if current != nil {
		current.Stop()
	}
}
