package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutrifacts/models"
	"nutrifacts/utils"
)

func TestParseSimpleLine(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "2", Unit: "l", Ingredient: "soya milk"},
		p.Parse("2 l of soya milk"))
}

func TestParseGluedAmountUnit(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "20", Unit: "gr", Ingredient: "sugar"},
		p.Parse("20gr of sugar"))
}

func TestParseMixedFraction(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "2 and 1/2", Unit: "l", Ingredient: "olive oil"},
		p.Parse("2 and 1/2 l of olive oil"))
}

func TestParseFraction(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "1/2", Unit: "kg", Ingredient: "rice flour"},
		p.Parse("1/2 kg of rice flour"))
}

func TestParseWordNumberAmount(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "a", Unit: "cup", Ingredient: "cooking salt"},
		p.Parse("a cup of cooking salt"))
	assert.Equal(t,
		models.ParsedTriplet{Amount: "1", Unit: "spoon", Ingredient: "cooking salt"},
		p.Parse("1 spoon of cooking salt"))
}

func TestParsePluralUnit(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "2", Unit: "spoon", Ingredient: "sugar"},
		p.Parse("2 spoons of sugar"))
}

func TestParseInformalIdiom(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	got := p.Parse("salt, to taste")
	assert.Empty(t, got.Amount)
	assert.Empty(t, got.Unit)
	assert.Equal(t, "salt, to taste", got.Ingredient)
}

func TestParseEmptyLine(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangEN))

	assert.Equal(t, models.ParsedTriplet{}, p.Parse("   "))
}

func TestParseItalian(t *testing.T) {
	p := NewParserService(utils.LocaleFor(utils.LangIT))

	assert.Equal(t,
		models.ParsedTriplet{Amount: "2", Unit: "cucchiaio", Ingredient: "zucchero"},
		p.Parse("2 cucchiai di zucchero"))
	assert.Equal(t,
		models.ParsedTriplet{Amount: "mezzo", Unit: "litro", Ingredient: "latte"},
		p.Parse("mezzo litro di latte"))
}
