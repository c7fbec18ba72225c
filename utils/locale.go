// utils/locale.go
package utils

import "strings"

// Supported catalog languages.
const (
	LangEN = "EN"
	LangIT = "IT"
)

// NominalUnits lists the accepted spellings for each nominal unit class.
type NominalUnits struct {
	Milligrams  []string
	Grams       []string
	Kilograms   []string
	Milliliters []string
	Liters      []string
}

// Locale bundles every language-dependent table the engine consults: unit
// vocabularies, word numbers, plural forms, ingredient type buckets with
// their approximate-unit gram weights, and stop words. A Locale is injected
// at construction; nothing in the engine reads the process environment.
type Locale struct {
	Lang            string
	Units           NominalUnits
	WordNumbers     map[string]float64
	Plurals         map[string]string
	IngredientTypes []string
	DefaultType     string
	ApproxWeights   map[string]map[string]float64
	StopWords       []string
	Separators      []string // amount joiners inside mixed numbers, e.g. "and"
	Fillers         []string // tokens between unit and ingredient, e.g. "of"
}

// LocaleFor returns the table set for a language code, defaulting to English.
func LocaleFor(lang string) *Locale {
	switch strings.ToUpper(strings.TrimSpace(lang)) {
	case LangIT:
		return localeIT
	default:
		return localeEN
	}
}

// IsStopWord reports whether the word is a stop word for this locale.
func (l *Locale) IsStopWord(word string) bool {
	word = strings.ToLower(word)
	for _, sw := range l.StopWords {
		if sw == word {
			return true
		}
	}
	return false
}

// IsSeparator reports whether the token joins the integer and fractional
// parts of a mixed number ("2 and 1/2").
func (l *Locale) IsSeparator(token string) bool {
	token = strings.ToLower(token)
	for _, s := range l.Separators {
		if s == token {
			return true
		}
	}
	return false
}

// IsFiller reports whether the token is a unit/ingredient connector.
func (l *Locale) IsFiller(token string) bool {
	token = strings.ToLower(token)
	for _, f := range l.Fillers {
		if f == token {
			return true
		}
	}
	return false
}

// RemoveStopWords strips the locale stop words from the input, preserving
// the order of the remaining words.
func (l *Locale) RemoveStopWords(input string) string {
	words := strings.Split(input, " ")
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if !l.IsStopWord(word) {
			filtered = append(filtered, word)
		}
	}
	return strings.Join(filtered, " ")
}
