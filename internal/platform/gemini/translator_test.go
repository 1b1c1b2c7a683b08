package gemini

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovocards/slovocards-api/internal/config"
	"github.com/slovocards/slovocards-api/internal/translation"
)

func TestNewTranslator_RequiresAPIKey(t *testing.T) {
	_, err := NewTranslator(context.Background(), slog.Default(), config.LLMConfig{
		ModelName: "gemini-2.0-flash",
	})
	assert.ErrorIs(t, err, translation.ErrNotConfigured)
}

func TestNewTranslator_RequiresLogger(t *testing.T) {
	_, err := NewTranslator(context.Background(), nil, config.LLMConfig{
		GeminiAPIKey: "key",
		ModelName:    "gemini-2.0-flash",
	})
	assert.Error(t, err)
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected translation.Result
	}{
		{
			name: "plain json",
			text: `{"english": "dog", "russianExample": "Собака лает", "englishExample": "The dog barks"}`,
			expected: translation.Result{
				English:        "dog",
				RussianExample: "Собака лает",
				EnglishExample: "The dog barks",
			},
		},
		{
			name:     "json code fence",
			text:     "```json\n{\"english\": \"dog\"}\n```",
			expected: translation.Result{English: "dog"},
		},
		{
			name:     "bare code fence",
			text:     "```\n{\"english\": \"dog\"}\n```",
			expected: translation.Result{English: "dog"},
		},
		{
			name:     "surrounding whitespace",
			text:     "  \n{\"english\": \"dog\"}\n  ",
			expected: translation.Result{English: "dog"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := parseResult(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *result)
		})
	}
}

func TestParseResult_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose instead of json", "The translation of собака is dog."},
		{"truncated json", `{"english": "dog"`},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseResult(tc.text)
			assert.ErrorIs(t, err, translation.ErrInvalidResponse)
		})
	}
}
