package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"voice-assistant/internal/pkg/assistantClient"
	"voice-assistant/internal/pkg/audioPlayback"
	"voice-assistant/internal/pkg/config"
	"voice-assistant/internal/pkg/speechCapture"
	"voice-assistant/internal/pkg/voiceSession"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Console harness for the voice backend. Each typed line stands in for one
// push-to-talk utterance; spoken replies are written to AudioDir when set.

const applicationName = "voice-console"

func main() {
	setupZerolog()

	log.Info().Msg("Parsing configuration")
	appConfig := &applicationConfig{}
	config.Parse(appConfig, applicationName)

	engine := &lineEngine{}
	capture := speechCapture.New(engine)
	engine.capture = capture

	playback := audioPlayback.NewController(&filePlayer{directory: appConfig.AudioDir})

	controller := voiceSession.NewController(voiceSession.ControllerConfig{
		Capture:    capture,
		Playback:   playback,
		Backend:    assistantClient.New(appConfig.BackendURL),
		WindowSize: appConfig.WindowSize,
		OnStatus: func(status voiceSession.Status) {
			fmt.Printf("[%s]\n", status)
		},
	})

	fmt.Println("Type an utterance and press enter. Commands: /history, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit":
			return
		case "/history":
			printHistory(controller.Session())
			continue
		}

		engine.utterance = line
		controller.PressMic()
		controller.ReleaseMic()
	}
}

func printHistory(session *voiceSession.Session) {
	for _, turn := range session.Turns() {
		fmt.Printf("%s: %s\n", turn.Role, turn.Content)
	}
}

// lineEngine finalizes the pre-seeded utterance when the mic is released.
type lineEngine struct {
	capture   *speechCapture.Capture
	utterance string
}

func (engine *lineEngine) Start() error {
	return nil
}

func (engine *lineEngine) Stop() {
	engine.capture.HandleResult(engine.utterance)
	engine.capture.HandleEnd()
}

// filePlayer writes each reply to a numbered file instead of an audio
// device. Playback "finishes" as soon as the file is written.
type filePlayer struct {
	directory string
	sequence  int
}

func (player *filePlayer) Decode(data []byte) (audioPlayback.Clip, error) {
	player.sequence++
	return &fileClip{
		data: data,
		path: filepath.Join(player.directory, fmt.Sprintf("reply-%03d.mp3", player.sequence)),
		save: player.directory != "",
	}, nil
}

type fileClip struct {
	data []byte
	path string
	save bool
}

func (clip *fileClip) Play(onEnded func()) error {
	if clip.save {
		if err := os.WriteFile(clip.path, clip.data, 0o644); err != nil {
			return err
		}
		log.Info().Str("path", clip.path).Msg("reply audio written")
	}

	if onEnded != nil {
		onEnded()
	}
	return nil
}

func (clip *fileClip) Stop() {
}

func setupZerolog() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}
