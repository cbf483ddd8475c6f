package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prescription-reader/pkg/gemini"
)

func main() {
	if err := run(); err != nil {
		// логгер из конфигурации мог еще не создаться
		startupLogger().Fatalf("ERROR: %v", err)
	}
}

// startupLogger production логгер для ошибок до загрузки конфигурации
func startupLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: не удалось создать логгер: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}

func run() error {
	dotenvErr := loadDotEnv()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if dotenvErr != nil {
		logger.Warnf("не удалось загрузить переменные окружения из .env файла: %v", dotenvErr)
	}

	settings, err := gemini.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return err
	}

	client := gemini.NewClient(gemini.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}, settings)
	service := gemini.NewService(client, logger)

	router := setupRoutes(newServer(cfg, service, logger))

	logger.Infof("Prescription Reader запускается на порту %s, модель %s", cfg.Port, service.Model())

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		return fmt.Errorf("не удалось запустить сервер: %w", err)
	}
	return nil
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
