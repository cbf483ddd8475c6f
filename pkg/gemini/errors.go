package gemini

import (
	"errors"
	"fmt"
)

// Stage шаг обработки, на котором произошла ошибка
type Stage string

const (
	StageDecode   Stage = "decode"
	StageEncode   Stage = "encode"
	StageRequest  Stage = "request"
	StageResponse Stage = "response"
)

var (
	ErrMalformedResponse = errors.New("malformed model response")
	ErrPromptBlocked     = errors.New("prompt was blocked by the model")
	ErrNoCandidates      = errors.New("model returned no candidates")
	ErrEmptyText         = errors.New("model returned no text")
)

// StageError ошибка с указанием шага. Текст совпадает с текстом исходной ошибки,
// он уходит клиенту как есть.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// StageOf возвращает шаг ошибки или пустую строку, если ошибка не из этого пакета
func StageOf(err error) Stage {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}

// APIError ответ Gemini с кодом не 2xx
type APIError struct {
	StatusCode int
	Status     string // status из тела ошибки, например INVALID_ARGUMENT
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini API error %d: %s", e.StatusCode, e.Message)
}
