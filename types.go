package main

import "context"

const defaultPrompt = "read the prescription"

// Тексты ошибок клиента
const (
	errNoImage       = "No image file provided"
	errEmptyImage    = "Empty image file provided"
	errImageTooLarge = "Image file too large"
	errInvalidForm   = "Invalid multipart form"
	errInternal      = "Internal server error"
)

// Extractor распознает текст на изображении по промпту
type Extractor interface {
	Extract(ctx context.Context, image []byte, prompt string) (string, error)
}

// ExtractionResult ответ /extract-gemini: при успехе есть только result, иначе только error
type ExtractionResult struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
