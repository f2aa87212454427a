package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alarino/alarino-backend/internal/service/translator"
)

type translateService interface {
	Resolve(ctx context.Context, input translator.ResolveInput) (*translator.ResolveResult, error)
}

// TranslateHandler serves word lookups.
type TranslateHandler struct {
	translator translateService
	log        *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(translator translateService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{
		translator: translator,
		log:        logger.With("handler", "translate"),
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation  []string `json:"translation"`
	SourceWord   string   `json:"source_word"`
	ToLanguage   string   `json:"to_language"`
	Experimental []string `json:"experimental_translation,omitempty"`
}

// Translate resolves a word lookup.
// POST /api/translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.translator.Resolve(r.Context(), translator.ResolveInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		h.log.DebugContext(r.Context(), "resolve failed",
			slog.String("text", req.Text),
			slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	translations := result.Translations
	if translations == nil {
		translations = []string{}
	}

	writeSuccess(w, http.StatusOK, "translation found", translateResponse{
		Translation:  translations,
		SourceWord:   result.SourceWord,
		ToLanguage:   result.TargetLang.String(),
		Experimental: result.Experimental,
	})
}
