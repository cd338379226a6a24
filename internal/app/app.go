package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"ai-lab/backend/internal/api"
	"ai-lab/backend/internal/config"
	"ai-lab/backend/internal/database"
	"ai-lab/backend/internal/llm"
	"ai-lab/backend/internal/relay"
	"ai-lab/backend/internal/repository"
	"ai-lab/backend/internal/service"
)

// App holds the long-lived resources of a running server.
type App struct {
	DB     *sql.DB
	Redis  *redis.Client
	Server *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel, cfg.LogFile)

	logConfigSource()

	if err := waitForOllama(cfg.OllamaURL, cfg.OllamaWaitTimeout); err != nil {
		slog.Warn("Continuing without a confirmed Ollama connection", "error", err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	slog.Info("Starting server", "port", cfg.AppPort, "store_backend", cfg.StoreBackend)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// NewApp opens the stores, builds the services and returns a server ready
// to listen.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	app := &App{DB: db}

	var chatRepo repository.ChatRepository
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			_ = rdb.Close()
			app.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		app.Redis = rdb
		chatRepo = repository.NewRedisChatRepository(rdb)
	default:
		chatRepo = repository.NewSQLiteChatRepository(db)
	}

	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)
	modelService := service.NewModelService(ollamaProvider)

	modelName := modelService.Resolve(context.Background(), cfg.OllamaModel)
	slog.Info("Using language model", "model", modelName)

	responder := relay.New(chatRepo, ollamaProvider, modelName, cfg.StreamTimeout)
	chatService := service.NewChatService(chatRepo, responder, cfg.ContextWindow)
	documentService := service.NewDocumentService(repository.NewSQLiteDocumentRepository(db))
	vectorService := service.NewVectorService(repository.NewSQLiteVectorRepository(db), cfg.EmbeddingDimensions)

	router := api.NewRouter(api.Handlers{
		Chat:     api.NewChatHandler(chatService),
		Document: api.NewDocumentHandler(documentService),
		Vector:   api.NewVectorHandler(vectorService),
		Model:    api.NewModelHandler(modelService),
	})

	app.Server = &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return app, nil
}

// Close releases the database and the optional Redis client.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func parseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogger installs a JSON logger on stdout. With logFile set, records
// are also written to a rotated file.
func setupLogger(logLevel, logFile string) {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))
	slog.SetDefault(logger)
}

// waitForOllama polls the Ollama root until it answers 200 or timeout passes.
func waitForOllama(ollamaURL string, timeout time.Duration) error {
	slog.Info("Waiting for Ollama to be ready...", "timeout", timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)
	for {
		resp, err := client.Get(ollamaURL)
		if err == nil {
			status := resp.StatusCode
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check", "error", bErr)
			}
			if status == http.StatusOK {
				slog.Info("Ollama is ready.")
				return nil
			}
			err = fmt.Errorf("unexpected status %d", status)
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("ollama at %s not ready after %s: %w", ollamaURL, timeout, err)
		}
		slog.Debug("Ollama not ready yet, retrying in 3 seconds...", "url", ollamaURL, "error", err)
		time.Sleep(min(3*time.Second, time.Until(deadline)))
	}
}
