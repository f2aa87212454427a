package translator

import "github.com/alarino/alarino-backend/internal/domain"

// ResolveResult is the outcome of a lookup. Translations come from the
// dictionary; Experimental carries oracle candidates and is nil when
// the oracle produced nothing in time. The two are never merged.
type ResolveResult struct {
	SourceWord   string
	TargetLang   domain.Language
	Translations []string
	Experimental []string
}
