package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Настраиваем все роуты
func setupRoutes(s *server) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Errorf("паника при обработке запроса %s: %v", requestID(c), recovered)
		sendJSONError(c, http.StatusInternalServerError, errInternal)
		c.Abort()
	}))
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware(s.logger))

	router.GET("/health", s.handleHealthCheck)      // проверка здоровья сервиса
	router.POST("/extract-gemini", s.handleExtract) // распознавание изображения

	return router
}
