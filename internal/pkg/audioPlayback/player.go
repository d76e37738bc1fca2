package audioPlayback

// Player is the audio output capability of the hosting environment.
type Player interface {
	// Decode turns fully buffered encoded audio into a playable clip.
	Decode(data []byte) (Clip, error)
}

// Clip is a one-shot playable buffer. Play starts output immediately and
// invokes onEnded when playback finishes naturally; Stop ends it early
// without invoking onEnded.
type Clip interface {
	Play(onEnded func()) error
	Stop()
}
