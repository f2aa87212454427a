package translator

import (
	"errors"

	"github.com/alarino/alarino-backend/internal/domain"
)

// ResolveInput carries a raw lookup request.
type ResolveInput struct {
	Text       string
	SourceLang string
	TargetLang string
}

// resolveQuery is a validated, normalized lookup.
type resolveQuery struct {
	Text   string
	Source domain.Language
	Target domain.Language
}

// validate parses the languages and normalizes the text. All problems
// are collected into one ValidationError.
func (in ResolveInput) validate() (resolveQuery, error) {
	var fields []domain.FieldError

	source, err := domain.ParseLanguage(in.SourceLang)
	if errors.Is(err, domain.ErrUnsupportedLanguage) {
		fields = append(fields, domain.FieldError{Field: "source_lang", Message: "unsupported language code"})
	}
	target, err := domain.ParseLanguage(in.TargetLang)
	if errors.Is(err, domain.ErrUnsupportedLanguage) {
		fields = append(fields, domain.FieldError{Field: "target_lang", Message: "unsupported language code"})
	}

	if len(fields) == 0 && source == target {
		fields = append(fields, domain.FieldError{Field: "target_lang", Message: "must differ from source_lang"})
	}

	// Lookup text is only normalized, never charset-checked: a query
	// outside the source alphabet still belongs in the miss ledger.
	text := domain.NormalizeText(in.Text)
	if text == "" {
		fields = append(fields, domain.FieldError{Field: "text", Message: "must not be empty"})
	}

	if len(fields) > 0 {
		return resolveQuery{}, domain.NewValidationErrors(fields)
	}

	return resolveQuery{Text: text, Source: source, Target: target}, nil
}
