package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/translation"
)

// TranslateHandler proxies a Russian word to the language model and
// returns its structured translation.
type TranslateHandler struct {
	translator translation.Translator // nil when no API key is configured
}

// NewTranslateHandler creates a new TranslateHandler. The translator may
// be nil; requests then fail with a configuration error rather than at
// startup, matching the deployment contract.
func NewTranslateHandler(translator translation.Translator) *TranslateHandler {
	return &TranslateHandler{translator: translator}
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	word := strings.TrimSpace(req.Russian)
	if word == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Russian word required")
		return
	}

	if h.translator == nil {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Translation API key not configured")
		return
	}

	result, err := h.translator.Translate(r.Context(), word)
	if err != nil {
		if errors.Is(err, translation.ErrEmptyWord) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Russian word required")
			return
		}
		// The upstream error text rides along in the message. That leaks
		// internal detail; kept for contract compatibility and noted as
		// an open issue in DESIGN.md.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Translation error: %v", err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
