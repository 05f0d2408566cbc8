package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
	"google.golang.org/genai"
)

// FortuneClient defines the contract for the external text-generation call.
// This interface allows for mocking in tests and decoupling from the SDK.
// Generate returns the raw JSON text of a structured fortune response.
type FortuneClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements FortuneClient using the Google GenAI SDK.
// The response schema forces machine-parseable JSON with exactly the seven
// required content fields.
type GeminiClient struct {
	APIKey string
	Model  string
}

// NewGeminiClient creates a client for the given API key. An empty key is
// allowed here; Generate fails fast with ErrConfigMissing before any
// network I/O in that case.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey: apiKey,
		Model:  config.GeminiModel,
	}
}

// fortuneSchema constrains the model output to the mandatory response shape.
func fortuneSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			config.FieldZodiacFortune: {Type: genai.TypeString},
			config.FieldStarFortune:   {Type: genai.TypeString},
			config.FieldLuckyNumber:   {Type: genai.TypeString},
			config.FieldLuckyColor:    {Type: genai.TypeString},
			config.FieldOverallScore:  {Type: genai.TypeNumber},
			config.FieldDailyQuote:    {Type: genai.TypeString},
			config.FieldQuoteAuthor:   {Type: genai.TypeString},
		},
		Required: []string{
			config.FieldZodiacFortune,
			config.FieldStarFortune,
			config.FieldLuckyNumber,
			config.FieldLuckyColor,
			config.FieldOverallScore,
			config.FieldDailyQuote,
			config.FieldQuoteAuthor,
		},
	}
}

// Generate performs one generateContent call and returns the response text.
// It never retries; the refresh scheduler's next tick is the retry policy.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrConfigMissing
	}

	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompGemini,
		config.LogKeyModel, c.Model,
	)
	log.Debug(config.MsgGeminiCall)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: config.GeminiTimeout,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.Model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   fortuneSchema(),
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, config.ErrEmptyResponse)
	}

	log.Debug(config.MsgGeminiDone, config.LogKeyDuration, time.Since(start).Milliseconds())
	return text, nil
}
