package audioPlayback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClip struct {
	playing bool
	stopped bool
	onEnded func()
}

func (clip *fakeClip) Play(onEnded func()) error {
	clip.playing = true
	clip.onEnded = onEnded
	return nil
}

func (clip *fakeClip) Stop() {
	clip.playing = false
	clip.stopped = true
}

func (clip *fakeClip) finish() {
	clip.playing = false
	if clip.onEnded != nil {
		clip.onEnded()
	}
}

type fakePlayer struct {
	clips     []*fakeClip
	decodeErr error
}

func (player *fakePlayer) Decode(data []byte) (Clip, error) {
	if player.decodeErr != nil {
		return nil, player.decodeErr
	}
	clip := &fakeClip{}
	player.clips = append(player.clips, clip)
	return clip, nil
}

func TestPlayStartsClipAndFiresEndCallback(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(player)

	ended := false
	require.NoError(t, controller.Play([]byte("audio"), func() { ended = true }))

	require.Len(t, player.clips, 1)
	assert.True(t, player.clips[0].playing)

	player.clips[0].finish()
	assert.True(t, ended)
}

func TestPlayStopsPriorClipFirst(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(player)

	require.NoError(t, controller.Play([]byte("first"), nil))
	require.NoError(t, controller.Play([]byte("second"), nil))

	require.Len(t, player.clips, 2)
	assert.True(t, player.clips[0].stopped)
	assert.False(t, player.clips[0].playing)
	assert.True(t, player.clips[1].playing)
}

func TestStopEndsActiveClipWithoutEndCallback(t *testing.T) {
	player := &fakePlayer{}
	controller := NewController(player)

	ended := false
	require.NoError(t, controller.Play([]byte("audio"), func() { ended = true }))

	controller.Stop()

	assert.True(t, player.clips[0].stopped)
	assert.False(t, ended)

	// A second Stop is a no-op.
	controller.Stop()
}

func TestPlayDecodeFailure(t *testing.T) {
	player := &fakePlayer{decodeErr: errors.New("not audio")}
	controller := NewController(player)

	err := controller.Play([]byte("garbage"), nil)
	assert.Error(t, err)
}
