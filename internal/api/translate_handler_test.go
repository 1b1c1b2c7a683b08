package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/mocks"
	"github.com/slovocards/slovocards-api/internal/translation"
)

func TestTranslateHandler_Success(t *testing.T) {
	translator := &mocks.MockTranslator{
		Result: &translation.Result{
			English:        "dog",
			RussianExample: "Собака лает",
			EnglishExample: "The dog barks",
		},
	}
	handler := NewTranslateHandler(translator)

	w := postJSON(t, handler.Translate, "/api/translate", TranslateRequest{Russian: "собака"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "собака", translator.TranslateCalledWith)

	var body translation.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dog", body.English)
	assert.Equal(t, "Собака лает", body.RussianExample)
}

func TestTranslateHandler_EmptyWord(t *testing.T) {
	translator := &mocks.MockTranslator{}
	handler := NewTranslateHandler(translator)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing field", map[string]interface{}{}},
		{"whitespace only", TranslateRequest{Russian: "   "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, handler.Translate, "/api/translate", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Russian word required", body.Error)
		})
	}

	assert.Equal(t, 0, translator.TranslateCallCount)
}

func TestTranslateHandler_NotConfigured(t *testing.T) {
	handler := NewTranslateHandler(nil)

	w := postJSON(t, handler.Translate, "/api/translate", TranslateRequest{Russian: "собака"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Translation API key not configured", body.Error)
}

func TestTranslateHandler_UpstreamFailure(t *testing.T) {
	translator := &mocks.MockTranslator{
		Err: errors.New("model unavailable"),
	}
	handler := NewTranslateHandler(translator)

	w := postJSON(t, handler.Translate, "/api/translate", TranslateRequest{Russian: "собака"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Translation error: model unavailable", body.Error)
}
