package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Yoruba orthography allow-sets. These are maintained as enumerated
// constants; do not derive them from Unicode categories. Tone-marked
// vowels decompose into base vowel + combining mark, so after NFC the
// rune sets below also admit the combining accents standalone.
const (
	yorubaConsonants  = "bdfghjklmnprstwygbṣ" // no c, q, v, x, z
	yorubaVowels      = "aàáeèéẹẹ̀ẹ́iìíoòóọọ̀ọ́uùú"
	yorubaNasals      = "mḿm̀nńǹ"
	wordExtraChars    = "'- "
	textPunctuation   = "' -.,?!;:"
	englishWordLetter = "abcdefghijklmnopqrstuvwxyz"
)

var (
	yorubaWordSet  = makeRuneSet(yorubaConsonants + yorubaVowels + yorubaNasals + wordExtraChars)
	yorubaTextSet  = makeRuneSet(yorubaConsonants + yorubaVowels + yorubaNasals + textPunctuation)
	englishWordSet = makeRuneSet(englishWordLetter + wordExtraChars)
	englishTextSet = makeRuneSet(englishWordLetter + textPunctuation)
)

func makeRuneSet(chars string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range norm.NFC.String(chars) {
		set[r] = true
	}
	return set
}

// IsValidWord reports whether text is a valid word in the given language.
// Words may contain apostrophes, hyphens, and spaces but no punctuation.
// Matching is case-insensitive and NFC-normalized; empty or
// whitespace-only input is always invalid.
func IsValidWord(lang Language, text string) bool {
	switch lang {
	case English:
		return matchesSet(text, englishWordSet)
	case Yoruba:
		return matchesSet(text, yorubaWordSet)
	default:
		return false
	}
}

// IsValidText reports whether text is valid sentence-level content in the
// given language, permitting sentence punctuation (used for proverbs).
func IsValidText(lang Language, text string) bool {
	switch lang {
	case English:
		return matchesSet(text, englishTextSet)
	case Yoruba:
		return matchesSet(text, yorubaTextSet)
	default:
		return false
	}
}

func matchesSet(text string, set map[rune]bool) bool {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return false
	}
	for _, r := range norm.NFC.String(text) {
		if !set[r] {
			return false
		}
	}
	return true
}
