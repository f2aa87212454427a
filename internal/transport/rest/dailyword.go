package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alarino/alarino-backend/internal/domain"
)

type dailyWordService interface {
	WordOfDay(ctx context.Context) (*domain.DailyWordPair, error)
}

// DailyWordHandler serves the word of the day.
type DailyWordHandler struct {
	daily dailyWordService
	log   *slog.Logger
}

// NewDailyWordHandler creates a DailyWordHandler.
func NewDailyWordHandler(daily dailyWordService, logger *slog.Logger) *DailyWordHandler {
	return &DailyWordHandler{
		daily: daily,
		log:   logger.With("handler", "dailyword"),
	}
}

type dailyWordResponse struct {
	YorubaWord  string `json:"yoruba_word"`
	EnglishWord string `json:"english_word"`
}

// WordOfDay returns today's pair.
// GET /api/daily-word
func (h *DailyWordHandler) WordOfDay(w http.ResponseWriter, r *http.Request) {
	pair, err := h.daily.WordOfDay(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "daily word unavailable", slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "daily word", dailyWordResponse{
		YorubaWord:  pair.YorubaWord,
		EnglishWord: pair.EnglishWord,
	})
}
