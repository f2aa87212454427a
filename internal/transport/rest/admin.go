package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alarino/alarino-backend/internal/domain"
	"github.com/alarino/alarino-backend/internal/service/bulkupload"
)

type uploadService interface {
	Ingest(ctx context.Context, input bulkupload.IngestInput) (*bulkupload.IngestResult, error)
}

type missingLister interface {
	TopMissing(ctx context.Context, limit int) ([]domain.MissingTranslation, error)
}

// AdminHandler serves curation endpoints. The router guards it with
// the admin key middleware.
type AdminHandler struct {
	uploads uploadService
	missing missingLister
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(uploads uploadService, missing missingLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uploads: uploads,
		missing: missing,
		log:     logger.With("handler", "admin"),
	}
}

type bulkUploadRequest struct {
	TextInput string `json:"text_input"`
	DryRun    *bool  `json:"dry_run"`
}

type rejectedRow struct {
	Line   int    `json:"line"`
	Row    string `json:"row"`
	Reason string `json:"reason"`
}

type wordPair struct {
	English string `json:"english"`
	Yoruba  string `json:"yoruba"`
}

type bulkUploadResponse struct {
	SuccessfulPairs []wordPair    `json:"successful_pairs"`
	FailedPairs     []rejectedRow `json:"failed_pairs"`
	DryRun          bool          `json:"dry_run"`
}

// BulkUpload ingests a CSV batch of word pairs. Dry run is the default;
// the caller must set dry_run=false explicitly to write.
// POST /api/admin/bulk-upload
func (h *AdminHandler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	var req bulkUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}

	result, err := h.uploads.Ingest(r.Context(), bulkupload.IngestInput{
		Text:   req.TextInput,
		DryRun: dryRun,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "bulk upload failed", slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	accepted := make([]wordPair, 0, len(result.Accepted))
	for _, pair := range result.Accepted {
		accepted = append(accepted, wordPair{English: pair.English, Yoruba: pair.Yoruba})
	}
	failed := make([]rejectedRow, 0, len(result.Rejected))
	for _, rej := range result.Rejected {
		failed = append(failed, rejectedRow{
			Line:   rej.Line,
			Row:    rej.Raw,
			Reason: string(rej.Reason),
		})
	}

	writeSuccess(w, http.StatusOK, "bulk upload processed", bulkUploadResponse{
		SuccessfulPairs: accepted,
		FailedPairs:     failed,
		DryRun:          result.DryRun,
	})
}

type missingRecord struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	HitCount       int    `json:"hit_count"`
	CreatedAt      string `json:"created_at"`
}

// Missing lists the most requested words the dictionary lacks.
// GET /api/admin/missing?limit=50
func (h *AdminHandler) Missing(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	records, err := h.missing.TopMissing(r.Context(), limit)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list missing translations", slog.Any("error", err))
		writeDomainError(w, err)
		return
	}

	out := make([]missingRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, missingRecord{
			Text:           rec.Text,
			SourceLanguage: rec.SourceLanguage.String(),
			TargetLanguage: rec.TargetLanguage.String(),
			HitCount:       rec.HitCount,
			CreatedAt:      rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeSuccess(w, http.StatusOK, "missing translations", out)
}
