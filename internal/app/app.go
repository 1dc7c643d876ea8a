package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"acres-chat/internal/api"
	"acres-chat/internal/config"
	"acres-chat/internal/ragflow"
	"acres-chat/internal/service"
	"acres-chat/internal/store"
)

const bootstrapTimeout = 30 * time.Second

// App holds the wired application. The fields are exported so tests can
// inspect the assembled server.
type App struct {
	Server *http.Server
	Chats  *service.ChatService
}

// NewApp resolves the RAGFlow assistant, session and dataset, then wires the
// services and HTTP surface. It fails hard when the retrieval service cannot
// be reached or the configured agent does not exist.
func NewApp(cfg *config.Config) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	rag := ragflow.NewClient(cfg.RAGFlowBaseURL, cfg.RAGFlowAPIKey)

	assistant, err := rag.FindAssistant(ctx, cfg.AgentName)
	if err != nil {
		return nil, fmt.Errorf("could not resolve chat agent: %w", err)
	}
	slog.Info("Resolved chat agent", "name", assistant.Name, "id", assistant.ID)

	sessionID, err := rag.CreateSession(ctx, assistant.ID, "acres-chat session")
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}

	dataset, err := rag.GetOrCreateDataset(ctx, cfg.DatasetName)
	if err != nil {
		return nil, fmt.Errorf("could not resolve dataset: %w", err)
	}
	slog.Info("Resolved dataset", "name", dataset.Name, "id", dataset.ID)

	conversations := store.New(cfg.WelcomeMessage)
	documentService := service.NewDocumentService(rag, dataset.ID)
	sources := service.NewSourceExtractor(cfg.DocumentBaseURL)
	chatService := service.NewChatService(
		conversations, rag, documentService, sources,
		assistant.ID, sessionID, dataset.ID,
	)

	chatHandler := api.NewChatHandler(chatService, documentService)
	documentHandler := api.NewDocumentHandler(documentService)
	router := api.NewRouter(chatHandler, documentHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server, Chats: chatService}, nil
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	application, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
