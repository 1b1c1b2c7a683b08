// Package translation defines the interface to the external language
// model that translates Russian words and produces example sentences.
package translation

import (
	"context"
	"errors"
	"fmt"
)

// Common translation errors.
var (
	// ErrNotConfigured is returned when no language model API key is
	// available.
	ErrNotConfigured = errors.New("translation API key not configured")

	// ErrEmptyWord is returned when the word to translate is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrUpstreamFailure is returned when the language model call fails.
	ErrUpstreamFailure = errors.New("translation upstream failure")

	// ErrInvalidResponse is returned when the model reply cannot be
	// parsed into the expected structure.
	ErrInvalidResponse = errors.New("invalid translation response")
)

// Result holds the model's structured reply for a single word.
type Result struct {
	English        string `json:"english"`
	RussianExample string `json:"russianExample"`
	EnglishExample string `json:"englishExample"`
}

// FillDefaults substitutes fallback text for fields the model omitted.
func (r *Result) FillDefaults(russianWord string) {
	if r.RussianExample == "" {
		r.RussianExample = fmt.Sprintf("%s в предложении", russianWord)
	}
	if r.EnglishExample == "" {
		r.EnglishExample = "Example sentence"
	}
}

// Translator produces a translation with example sentences for a single
// Russian word.
type Translator interface {
	// Translate sends the word to the language model and parses its
	// structured reply. The call is bounded by a fixed timeout and is
	// terminal for the request: failures are not retried.
	Translate(ctx context.Context, russianWord string) (*Result, error)
}
