package gemini

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GenerationConfig параметры генерации, передаются в generationConfig как есть.
// Пустые поля не отправляются, тогда действуют значения модели.
type GenerationConfig struct {
	Temperature     *float64 `yaml:"temperature" json:"temperature,omitempty"`
	TopP            *float64 `yaml:"top_p" json:"topP,omitempty"`
	TopK            *int     `yaml:"top_k" json:"topK,omitempty"`
	MaxOutputTokens int      `yaml:"max_output_tokens" json:"maxOutputTokens,omitempty"`
}

// Settings необязательные настройки запроса к модели
type Settings struct {
	SystemInstruction string            `yaml:"system_instruction"`
	Generation        *GenerationConfig `yaml:"generation"`
}

// LoadSettings читает настройки из YAML файла.
// Если файла нет, возвращает пустые настройки.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return &settings, nil
}
