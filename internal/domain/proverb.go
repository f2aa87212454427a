package domain

import (
	"time"

	"github.com/google/uuid"
)

// Proverb is a Yoruba proverb with its English rendering.
// (YorubaText, EnglishText) is unique; proverbs are seeded, never edited.
type Proverb struct {
	ID          uuid.UUID
	YorubaText  string
	EnglishText string
	CreatedAt   time.Time
}
