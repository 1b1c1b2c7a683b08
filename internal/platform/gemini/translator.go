// Package gemini implements the translation.Translator interface on
// Google's Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/slovocards/slovocards-api/internal/config"
	"github.com/slovocards/slovocards-api/internal/translation"
)

// systemPrompt pins the model to a strict JSON reply so the answer can be
// parsed without free-text scraping.
const systemPrompt = `You are a helpful language teacher. Translate Russian words to English and provide example sentences in both languages. Respond ONLY with valid JSON in this exact format: {"english": "word", "russianExample": "sentence", "englishExample": "sentence"}`

const (
	// requestTimeout bounds the single upstream call. There is no retry:
	// a timeout is terminal for the request.
	requestTimeout = 10 * time.Second

	// temperature keeps translations close to deterministic.
	temperature float32 = 0.3

	// maxOutputTokens caps the reply; a word plus two sentences fits
	// comfortably.
	maxOutputTokens int32 = 200
)

// Translator implements translation.Translator using the Gemini API.
type Translator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

var _ translation.Translator = (*Translator)(nil)

// NewTranslator creates a Translator from the LLM configuration.
// Returns translation.ErrNotConfigured if no API key is set.
func NewTranslator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Translator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, translation.ErrNotConfigured
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", translation.ErrNotConfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Translator{
		logger: logger.With(slog.String("component", "gemini_translator")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Translate implements translation.Translator.
func (t *Translator) Translate(ctx context.Context, russianWord string) (*translation.Result, error) {
	russianWord = strings.TrimSpace(russianWord)
	if russianWord == "" {
		return nil, translation.ErrEmptyWord
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Translate this Russian word to English and provide example sentences: %s",
		russianWord,
	)

	t.logger.DebugContext(ctx, "calling Gemini",
		slog.String("model", t.model),
		slog.String("word", russianWord))

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr(temperature),
			MaxOutputTokens:   maxOutputTokens,
			ResponseMIMEType:  "application/json",
		})
	if err != nil {
		t.logger.ErrorContext(ctx, "Gemini call failed",
			slog.String("error", err.Error()),
			slog.String("word", russianWord))
		return nil, fmt.Errorf("%w: %v", translation.ErrUpstreamFailure, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: no content generated", translation.ErrInvalidResponse)
	}

	result, err := parseResult(text)
	if err != nil {
		t.logger.WarnContext(ctx, "unparseable model reply",
			slog.String("error", err.Error()),
			slog.Int("reply_length", len(text)))
		return nil, err
	}

	result.FillDefaults(russianWord)
	return result, nil
}

// parseResult decodes the model's JSON reply. Code fences are stripped
// first: models occasionally wrap JSON in markdown despite the MIME type.
func parseResult(text string) (*translation.Result, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var result translation.Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", translation.ErrInvalidResponse, err)
	}
	return &result, nil
}
