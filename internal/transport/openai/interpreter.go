// Package openai talks to an OpenAI-compatible chat API to refine
// shape interpretations beyond what the keyword heuristic can do.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/metrics"
)

const systemPrompt = `You classify free-text descriptions of 2D shapes for laser cutting.
Respond with a single JSON object and nothing else:
{"category": one of ["organic","mechanical","architectural","decorative","geometric"],
 "type": short snake_case shape tag,
 "dimensions": object of numeric millimeter values (keys like width, height, radius, diameter, teeth, sides),
 "smoothness": "low"|"medium"|"high",
 "complexity": "low"|"medium"|"high"}`

// Interpreter refines shape interpretations via an OpenAI-compatible chat API.
type Interpreter struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the interpreter provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewInterpreter creates an OpenAI-compatible interpreter.
func NewInterpreter(cfg *Config) *Interpreter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Interpreter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// interpretationPayload is the JSON shape the model is asked to emit.
type interpretationPayload struct {
	Category   string             `json:"category"`
	Type       string             `json:"type"`
	Dimensions map[string]float64 `json:"dimensions"`
	Smoothness string             `json:"smoothness"`
	Complexity string             `json:"complexity"`
}

// Interpret asks the chat model to classify the description. All
// failures are wrapped with domain.ErrInterpreterUnavailable so the
// caller can fall back to the keyword heuristic.
func (i *Interpreter) Interpret(ctx context.Context, description string) (shape.Interpretation, error) {
	req := openai.ChatCompletionRequest{
		Model:       i.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: description},
		},
	}

	start := time.Now()
	resp, err := i.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.InterpreterRequestsTotal.WithLabelValues(i.model, "error").Inc()
		return shape.Interpretation{}, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.InterpreterRequestsTotal.WithLabelValues(i.model, "error").Inc()
		return shape.Interpretation{}, fmt.Errorf("empty completion response: %w", domain.ErrInterpreterUnavailable)
	}

	metrics.InterpreterRequestsTotal.WithLabelValues(i.model, "success").Inc()
	metrics.InterpreterRequestDuration.WithLabelValues(i.model).Observe(duration.Seconds())

	return decodePayload(resp.Choices[0].Message.Content, description)
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (i *Interpreter) HealthCheck(ctx context.Context) error {
	if _, err := i.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// decodePayload parses and sanitizes the model output. Values outside
// the known vocabularies are treated as an unavailable interpreter,
// not trusted.
func decodePayload(content, description string) (shape.Interpretation, error) {
	var p interpretationPayload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return shape.Interpretation{}, fmt.Errorf("decode completion: %w: %w", err, domain.ErrInterpreterUnavailable)
	}

	category, ok := knownCategory(p.Category)
	if !ok {
		return shape.Interpretation{}, fmt.Errorf("unknown category %q: %w", p.Category, domain.ErrInterpreterUnavailable)
	}

	shapeType := strings.TrimSpace(p.Type)
	if shapeType == "" {
		shapeType = shape.TypeCustom
	}

	style := shape.Style{
		Smoothness: knownLevel(p.Smoothness),
		Complexity: knownLevel(p.Complexity),
	}

	return shape.New(category, shapeType, shape.Dimensions(p.Dimensions), style, description), nil
}

func knownCategory(s string) (shape.Category, bool) {
	for _, c := range shape.Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func knownLevel(s string) shape.Level {
	switch shape.Level(s) {
	case shape.Low:
		return shape.Low
	case shape.High:
		return shape.High
	default:
		return shape.Medium
	}
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrInterpreterUnavailable for fallback handling.
func parseAPIError(err error) error {
	wrap := domain.ErrInterpreterUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("interpreter API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("interpreter API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("interpreter request failed: %w", wrap)
}
