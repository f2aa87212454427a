package bulkupload

import "github.com/alarino/alarino-backend/internal/domain"

// IngestInput carries a raw CSV upload. Each non-empty line is
// expected to hold exactly "english,yoruba".
type IngestInput struct {
	Text   string
	DryRun bool
}

// RejectReason classifies why a row was not accepted.
type RejectReason string

const (
	// MalformedRow marks lines without exactly two fields.
	MalformedRow RejectReason = "malformed_row"
	// InvalidSourceWord marks rows whose English side fails validation.
	InvalidSourceWord RejectReason = "invalid_source_word"
	// InvalidTargetWord marks rows whose Yoruba side fails validation.
	InvalidTargetWord RejectReason = "invalid_target_word"
)

// Rejection reports a rejected row together with what was read from it.
type Rejection struct {
	Line   int
	Raw    string
	Reason RejectReason
}

// IngestResult summarizes an upload.
type IngestResult struct {
	Accepted []domain.WordPair
	Rejected []Rejection
	DryRun   bool
}
