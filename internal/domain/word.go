package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a single-token lexical entry tagged with a language.
// Text is stored normalized (see NormalizeText); (Language, Text) is unique.
type Word struct {
	ID           uuid.UUID
	Language     Language
	Text         string
	PartOfSpeech *string
	CreatedAt    time.Time
}

// Translation is a directed edge from a source-language word to a
// target-language word. (SourceWordID, TargetWordID) is unique.
type Translation struct {
	ID           uuid.UUID
	SourceWordID uuid.UUID
	TargetWordID uuid.UUID
	CreatedAt    time.Time
}

// WordPair couples an English word with a Yoruba word, as reported by
// bulk ingestion and the daily-word selector.
type WordPair struct {
	English string
	Yoruba  string
}
