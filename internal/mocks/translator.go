package mocks

import (
	"context"

	"github.com/slovocards/slovocards-api/internal/translation"
)

// MockTranslator implements translation.Translator for testing.
type MockTranslator struct {
	TranslateFn func(ctx context.Context, russianWord string) (*translation.Result, error)

	// Default values used when TranslateFn isn't defined
	Result *translation.Result
	Err    error

	// TranslateCalledWith stores the last word passed to Translate.
	TranslateCalledWith string
	TranslateCallCount  int
}

// Translate implements the translation.Translator interface.
func (m *MockTranslator) Translate(ctx context.Context, russianWord string) (*translation.Result, error) {
	m.TranslateCalledWith = russianWord
	m.TranslateCallCount++

	if m.TranslateFn != nil {
		return m.TranslateFn(ctx, russianWord)
	}
	return m.Result, m.Err
}

var _ translation.Translator = (*MockTranslator)(nil)
