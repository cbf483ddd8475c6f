package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
)

// Config параметры подключения к Gemini
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration // 0 - без таймаута
}

// Client клиент REST API generateContent
type Client struct {
	http     *resty.Client
	apiKey   string
	model    string
	settings *Settings
}

// InlineImage изображение для передачи в inlineData
type InlineImage struct {
	MIMEType string
	Data     string // base64
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Text указатель: пустой промпт тоже уходит в модель как "text": ""
type part struct {
	Text       *string     `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

func textPart(text string) part {
	return part{Text: &text}
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// NewClient создает клиент. settings может быть nil.
func NewClient(config Config, settings *Settings) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	if settings == nil {
		settings = &Settings{}
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if config.Timeout > 0 {
		httpClient.SetTimeout(config.Timeout)
	}

	return &Client{
		http:     httpClient,
		apiKey:   config.APIKey,
		model:    model,
		settings: settings,
	}
}

// Model возвращает имя модели, к которой обращается клиент
func (c *Client) Model() string {
	return c.model
}

// GenerateContent отправляет промпт и изображение одним запросом и возвращает
// текст ответа модели. Повторов нет.
func (c *Client) GenerateContent(ctx context.Context, prompt string, image InlineImage) (string, error) {
	body := c.buildRequest(prompt, image)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(body).
		Post(c.endpoint())
	if err != nil {
		return "", stageError(StageRequest, fmt.Errorf("gemini request failed: %w", err))
	}

	return parseResponse(resp.StatusCode(), resp.Body())
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)
}

// Промпт идет первым, изображение вторым
func (c *Client) buildRequest(prompt string, image InlineImage) generateContentRequest {
	req := generateContentRequest{
		Contents: []content{
			{
				Role: "user",
				Parts: []part{
					textPart(prompt),
					{InlineData: &inlineData{MIMEType: image.MIMEType, Data: image.Data}},
				},
			},
		},
		GenerationConfig: c.settings.Generation,
	}

	if c.settings.SystemInstruction != "" {
		req.SystemInstruction = &content{
			Parts: []part{textPart(c.settings.SystemInstruction)},
		}
	}

	return req
}

func parseResponse(statusCode int, body []byte) (string, error) {
	if statusCode < 200 || statusCode >= 300 {
		apiErr := &APIError{StatusCode: statusCode}
		if gjson.ValidBytes(body) {
			apiErr.Status = gjson.GetBytes(body, "error.status").String()
			apiErr.Message = gjson.GetBytes(body, "error.message").String()
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return "", stageError(StageRequest, apiErr)
	}

	if !gjson.ValidBytes(body) {
		return "", stageError(StageResponse, fmt.Errorf("%w: body is not valid JSON", ErrMalformedResponse))
	}

	candidates := gjson.GetBytes(body, "candidates")
	if !candidates.IsArray() || len(candidates.Array()) == 0 {
		if reason := gjson.GetBytes(body, "promptFeedback.blockReason").String(); reason != "" {
			return "", stageError(StageResponse, fmt.Errorf("%w: %s", ErrPromptBlocked, reason))
		}
		return "", stageError(StageResponse, ErrNoCandidates)
	}

	first := candidates.Array()[0]
	var text strings.Builder
	for _, p := range first.Get("content.parts").Array() {
		text.WriteString(p.Get("text").String())
	}

	if text.Len() == 0 {
		if reason := first.Get("finishReason").String(); reason != "" {
			return "", stageError(StageResponse, fmt.Errorf("%w (finish reason: %s)", ErrEmptyText, reason))
		}
		return "", stageError(StageResponse, ErrEmptyText)
	}

	return text.String(), nil
}
