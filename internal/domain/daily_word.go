package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyWordRecord is the persisted choice of a word of the day.
// Date is unique; once written the record is immutable for that date.
type DailyWordRecord struct {
	ID            uuid.UUID
	WordID        uuid.UUID
	EnglishWordID uuid.UUID
	Date          time.Time
	CreatedAt     time.Time
}

// DailyWordPair is a resolved word of the day: the chosen Yoruba word
// together with its paired English translation.
type DailyWordPair struct {
	YorubaWord  string
	EnglishWord string
}
