package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prescription-reader/pkg/gemini"
)

type server struct {
	cfg       Config
	extractor Extractor
	logger    *zap.SugaredLogger
}

func newServer(cfg Config, extractor Extractor, logger *zap.SugaredLogger) *server {
	return &server{
		cfg:       cfg,
		extractor: extractor,
		logger:    logger,
	}
}

// Проверка здоровья сервиса
func (s *server) handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Распознавание изображения - основная фишка сервиса
func (s *server) handleExtract(c *gin.Context) {
	limit := s.cfg.MaxFileSizeBytes()
	if c.Request.ContentLength > limit {
		sendJSONError(c, http.StatusRequestEntityTooLarge, errImageTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	form, err := readExtractForm(c.Request)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			sendJSONError(c, http.StatusRequestEntityTooLarge, errImageTooLarge)
		case errors.Is(err, http.ErrNotMultipart):
			// Форма не multipart, значит файла точно нет
			sendJSONError(c, http.StatusBadRequest, errNoImage)
		default:
			s.logger.Warnf("не удалось разобрать форму: %v", err)
			sendJSONError(c, http.StatusBadRequest, errInvalidForm)
		}
		return
	}

	if !form.hasImage {
		sendJSONError(c, http.StatusBadRequest, errNoImage)
		return
	}
	if form.filename == "" {
		sendJSONError(c, http.StatusBadRequest, errEmptyImage)
		return
	}

	s.logger.Infof("получен файл %s (%d байт), request_id=%s", form.filename, len(form.image), requestID(c))

	// Контекст запроса: если клиент отключился, вызов модели прерывается
	result, err := s.extractor.Extract(c.Request.Context(), form.image, form.promptOrDefault())
	if err != nil {
		s.logger.Errorf("ошибка обработки запроса %s, stage=%s: %v", requestID(c), gemini.StageOf(err), err)
		sendJSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, ExtractionResult{Success: true, Result: result})
}

// Отправляем JSON ошибку
func sendJSONError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ExtractionResult{Success: false, Error: message})
}
