package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alarino/alarino-backend/internal/domain"
)

type proverbService interface {
	Random(ctx context.Context) (*domain.Proverb, error)
}

// ProverbHandler serves random proverbs.
type ProverbHandler struct {
	proverbs proverbService
	log      *slog.Logger
}

// NewProverbHandler creates a ProverbHandler.
func NewProverbHandler(proverbs proverbService, logger *slog.Logger) *ProverbHandler {
	return &ProverbHandler{
		proverbs: proverbs,
		log:      logger.With("handler", "proverb"),
	}
}

type proverbResponse struct {
	YorubaText  string `json:"yoruba_text"`
	EnglishText string `json:"english_text"`
}

// Random returns a random proverb.
// GET /api/proverb
func (h *ProverbHandler) Random(w http.ResponseWriter, r *http.Request) {
	p, err := h.proverbs.Random(r.Context())
	if err != nil {
		h.log.DebugContext(r.Context(), "no proverb available", slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "proverb", proverbResponse{
		YorubaText:  p.YorubaText,
		EnglishText: p.EnglishText,
	})
}
