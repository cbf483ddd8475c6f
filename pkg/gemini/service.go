package gemini

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"prescription-reader/pkg/imaging"
)

// Service распознает изображение через Gemini
type Service struct {
	client *Client
	logger *zap.SugaredLogger
}

// NewService создает сервис поверх клиента
func NewService(client *Client, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		client: client,
		logger: logger,
	}
}

// Extract нормализует изображение и один раз вызывает модель.
// Все ошибки возвращаются как *StageError.
func (s *Service) Extract(ctx context.Context, data []byte, prompt string) (string, error) {
	normalized, err := imaging.Normalize(data)
	if err != nil {
		if errors.Is(err, imaging.ErrEncode) {
			return "", stageError(StageEncode, err)
		}
		return "", stageError(StageDecode, err)
	}

	s.logger.Debugf("изображение %dx%d, формат %s -> %s, %d байт",
		normalized.Width, normalized.Height, normalized.DetectedFormat, normalized.Format, len(normalized.Data))

	return s.client.GenerateContent(ctx, prompt, InlineImage{
		MIMEType: normalized.MIMEType(),
		Data:     normalized.Base64(),
	})
}

// Model возвращает имя используемой модели
func (s *Service) Model() string {
	return s.client.Model()
}
