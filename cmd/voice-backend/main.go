package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"voice-assistant/internal/pkg/config"
	"voice-assistant/internal/pkg/crmTools"
	"voice-assistant/internal/pkg/dataverse"
	"voice-assistant/internal/pkg/httpHandlers"
	"voice-assistant/internal/pkg/models"
	"voice-assistant/internal/pkg/orchestrator"
	"voice-assistant/internal/pkg/speechSynthesis"
	"voice-assistant/internal/pkg/web"
	"voice-assistant/internal/pkg/websocketServer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Windows configuration examples
// cmd /V /C "set VOICE_BACKEND_PORT=321&& voice-backend.exe"
// voice-backend.exe --Port 123

// Linux configuration examples
// VOICE_BACKEND_PORT=321 ./voice-backend
// ./voice-backend --Port 123

const applicationName = "voice-backend"
const serverShutdownTimeout = 5 * time.Second

func main() {
	setupZerolog()

	log.Info().Msg("Parsing configuration")
	appConfig := &applicationConfig{}
	config.Parse(appConfig, applicationName)

	log.Info().Msg("Starting up")

	ctx := context.Background()

	chatModel, err := models.NewToolCallingChatModel(ctx, &models.ProviderConfig{
		ModelString:      appConfig.ModelName,
		OpenAIAPIKey:     appConfig.OpenAIAPIKey,
		OpenAIBaseURL:    appConfig.OpenAIBaseURL,
		AnthropicAPIKey:  appConfig.AnthropicAPIKey,
		AnthropicBaseURL: appConfig.AnthropicBaseURL,
		OllamaBaseURL:    appConfig.OllamaBaseURL,
		Temperature:      0.7,
	})
	if err != nil {
		log.Panic().Err(err).Msg("failed to create chat model")
	}

	dispatcher := crmTools.NewDispatcher(createDataverseClient(appConfig))

	assistant, err := orchestrator.New(chatModel, crmTools.Menu(), dispatcher, appConfig.SystemPrompt)
	if err != nil {
		log.Panic().Err(err).Msg("failed to create orchestrator")
	}

	synthesizer := createSynthesizer(ctx, appConfig)

	notificationServer := websocketServer.New()
	handlers := httpHandlers.New(assistant, synthesizer, notificationServer)

	listener := createNetListener(appConfig)
	server := startHttpServer(listener, handlers, notificationServer, appConfig.SimulatedDelay)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info().Msg("Application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer func() {
		cancel()
	}()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server.Shutdown failed")
	}

	time.Sleep(time.Second * 1) // Give some time for graceful shutdown
	log.Info().Msg("Application stopped")
}

func createDataverseClient(appConfig *applicationConfig) crmTools.RPCClient {
	if appConfig.DataverseURL == "" {
		log.Warn().Msg("Dataverse is not configured, CRM tool calls will fail")
		return nil
	}

	tokens := dataverse.NewClientCredentialsTokenProvider(
		appConfig.DataverseTenantID,
		appConfig.DataverseClientID,
		appConfig.DataverseClientSecret,
		appConfig.DataverseURL)

	return dataverse.NewClient(appConfig.DataverseURL, tokens)
}

func createSynthesizer(ctx context.Context, appConfig *applicationConfig) speechSynthesis.Synthesizer {
	switch appConfig.TTSProvider {
	case "openai":
		return speechSynthesis.NewOpenAISynthesizer(appConfig.OpenAIAPIKey, appConfig.TTSVoice)
	case "gemini":
		synthesizer, err := speechSynthesis.NewGeminiSynthesizer(ctx, appConfig.GoogleAPIKey, appConfig.TTSVoice)
		if err != nil {
			log.Panic().Err(err).Msg("failed to create Gemini synthesizer")
		}
		return synthesizer
	default:
		log.Panic().Str("provider", appConfig.TTSProvider).Msg("unknown speech synthesis provider")
		return nil
	}
}

func startHttpServer(listener net.Listener, handlers *httpHandlers.ConverseHandlers,
	notificationServer websocketServer.WebsocketServer,
	simulatedDelay int) *http.Server {

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	httpLogger := httplog.NewLogger("backend-api", httplog.Options{
		LogLevel: slog.LevelDebug,
		JSON:     true,
		Concise:  true,
		//RequestHeaders:   true,
		//ResponseHeaders:  true,
	})

	router := chi.NewRouter()
	router.Use(httplog.RequestLogger(httpLogger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"https://*",
			"http://*",
		},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.HandleFunc("/api/notifications", notificationServer.Handler)

	router.Handle("POST /api/converse", web.Handler{Request: handlers.Converse,
		SimulatedDelay: simulatedDelay})

	server := &http.Server{
		Handler: router,
	}

	go func() {
		log.Info().Msg("Server is about to start")

		err := server.Serve(listener)
		if err != nil {
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("server.ListenAndServe failed")
			}
		}

		log.Info().Msg("Server stopped")
	}()
	return server
}

func createNetListener(appConfig *applicationConfig) net.Listener {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", appConfig.Host, appConfig.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("net.Listen failed")
	}

	return listener
}

func setupZerolog() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}
