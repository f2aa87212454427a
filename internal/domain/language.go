package domain

import "fmt"

// Language is a supported dictionary language code.
// The dictionary is strictly bilingual: English and Yoruba.
type Language string

const (
	English Language = "en"
	Yoruba  Language = "yo"
)

// ParseLanguage converts a raw language code into a Language.
// Anything outside the closed en/yo set is rejected with ErrUnsupportedLanguage.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case English:
		return English, nil
	case Yoruba:
		return Yoruba, nil
	default:
		return "", fmt.Errorf("language %q: %w", code, ErrUnsupportedLanguage)
	}
}

// IsValid reports whether the language is one of the supported codes.
func (l Language) IsValid() bool {
	return l == English || l == Yoruba
}

// Other returns the opposite side of the bilingual pair.
func (l Language) Other() Language {
	if l == English {
		return Yoruba
	}
	return English
}

func (l Language) String() string { return string(l) }
