package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrDistance(t *testing.T) {
	assert.Equal(t, 0, StrDistance("abc", "abc"))
	assert.Equal(t, 1, StrDistance("ab", "ba"), "adjacent transposition costs 1")
	assert.Equal(t, 3, StrDistance("", "abc"))
	assert.Equal(t, 3, StrDistance("abc", ""))
	assert.Equal(t, 1, StrDistance("sugar", "sugars"))
	assert.Equal(t, 1, StrDistance("oliv", "olive"))
}

func TestStrDistanceFarApart(t *testing.T) {
	// Clearly dissimilar pairs abort early and report the longer length.
	assert.Equal(t, 10, StrDistance("abcdefghij", "qrstuvwxyz"))
	assert.Equal(t, 9, StrDistance("sunflower", "zzzzz"))
}

func TestRemoveStopWords(t *testing.T) {
	loc := LocaleFor(LangEN)
	assert.Equal(t, "cup sugar", loc.RemoveStopWords("a cup of sugar"))
	assert.Equal(t, "olive oil", loc.RemoveStopWords("olive oil"))

	it := LocaleFor(LangIT)
	assert.Equal(t, "bicchiere latte", it.RemoveStopWords("un bicchiere di latte"))
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, LangEN, LocaleFor("en").Lang)
	assert.Equal(t, LangIT, LocaleFor("IT").Lang)
	assert.Equal(t, LangEN, LocaleFor("").Lang)
	assert.Equal(t, LangEN, LocaleFor("FR").Lang)
}
