package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config конфигурация приложения, читается из переменных окружения
type Config struct {
	APIKey       string        `env:"GOOGLE_API_KEY,required,notEmpty"`
	Port         string        `env:"PORT" envDefault:"5001"`
	Model        string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	BaseURL      string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout      time.Duration `env:"GEMINI_TIMEOUT" envDefault:"0s"`
	SettingsPath string        `env:"GEMINI_SETTINGS_PATH" envDefault:"config/gemini.yaml"`
	MaxFileSize  int64         `env:"MAX_FILE_SIZE_MB" envDefault:"50"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// MaxFileSizeBytes лимит тела запроса в байтах
func (c Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSize << 20
}

// loadDotEnv подгружает .env в окружение процесса, если файл есть
func loadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// loadConfig разбирает переменные окружения в Config
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.MaxFileSize <= 0 {
		return Config{}, fmt.Errorf("invalid configuration: MAX_FILE_SIZE_MB must be positive, got %d", cfg.MaxFileSize)
	}

	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("invalid configuration: GEMINI_TIMEOUT must not be negative, got %s", cfg.Timeout)
	}

	return cfg, nil
}
