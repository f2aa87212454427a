package domain

import (
	"time"

	"github.com/google/uuid"
)

// MissingTranslation records a lookup that found no stored translation.
// (Text, SourceLanguage, TargetLanguage) is unique; HitCount only grows.
// It is a usage-frequency signal for curation, not a work queue.
type MissingTranslation struct {
	ID             uuid.UUID
	Text           string
	SourceLanguage Language
	TargetLanguage Language
	UserIP         *string
	UserAgent      *string
	HitCount       int
	CreatedAt      time.Time
}

// RequesterMeta carries best-effort client metadata attached to miss records.
type RequesterMeta struct {
	IP        string
	UserAgent string
}
