package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrifacts/models"
)

func TestNormalizeAmount(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	assert.Equal(t, 2.5, conv.NormalizeAmount("2 and 1/2"))
	assert.Equal(t, 0.5, conv.NormalizeAmount("1/2"))
	assert.Equal(t, 3.0, conv.NormalizeAmount("3"))
	assert.Equal(t, 3.5, conv.NormalizeAmount("3.5"))
	assert.Equal(t, 2.0, conv.NormalizeAmount("two"))
	assert.Equal(t, 1.0, conv.NormalizeAmount("a"))
	assert.Equal(t, 0.5, conv.NormalizeAmount("half"))
	assert.True(t, math.IsNaN(conv.NormalizeAmount("plenty")))
}

func TestClassify(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	assert.Equal(t, UnitGrams, conv.Classify("g"))
	assert.Equal(t, UnitGrams, conv.Classify("gr"))
	assert.Equal(t, UnitKilograms, conv.Classify("kg"))
	assert.Equal(t, UnitMilligrams, conv.Classify("mg"))
	assert.Equal(t, UnitMilliliters, conv.Classify("ml"))
	assert.Equal(t, UnitLiters, conv.Classify("l"))
	assert.Equal(t, UnitApproximate, conv.Classify("spoon"))
	assert.Equal(t, UnitApproximate, conv.Classify("parsec"))
}

func TestConvertToGrams(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	assert.Equal(t, 2500.0, conv.ConvertToGrams("l", "solid", 2.5))
	assert.Equal(t, 30.0, conv.ConvertToGrams("ml", "solid", 30))
	assert.Equal(t, -1.0, conv.ConvertToGrams("parsec", "solid", 1))

	// Approximate units resolve through the (unit, type) weight table.
	assert.Equal(t, 13.0, conv.ConvertToGrams("spoon", "oil", 1))
	assert.Equal(t, 20.0, conv.ConvertToGrams("spoons", "salt", 2))

	// Missing bucket falls back to the default one.
	assert.Equal(t, 240.0, conv.ConvertToGrams("cup", "salt", 1))
}

func TestNearestIngredientType(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	assert.Equal(t, "oil", conv.NearestIngredientType("olive oil"))
	assert.Equal(t, "salt", conv.NearestIngredientType("cooking salt"))
	assert.Equal(t, "solid", conv.NearestIngredientType("dragonfruit"))
}

func TestScaleNutrients(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	food := &models.Food{Nutrients: []models.Nutrient{
		{Name: "carbohydrates", Unit: "g", Quantity: 50},
		{Name: "water", Unit: "%", Quantity: 10},
		{Name: "sodium", Unit: "mg", Quantity: 100},
	}}

	conv.ScaleNutrients(20, food)
	assert.Equal(t, 10.0, food.Nutrients[0].Quantity)
	assert.Equal(t, 10.0, food.Nutrients[1].Quantity)
	assert.Equal(t, 20.0, food.Nutrients[2].Quantity)
}

func TestScaleNutrientsNegativeQuantity(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	food := &models.Food{Nutrients: []models.Nutrient{
		{Name: "carbohydrates", Unit: "g", Quantity: 50},
		{Name: "water", Unit: "%", Quantity: 10},
	}}

	conv.ScaleNutrients(-5, food)
	assert.Equal(t, 0.0, food.Nutrients[0].Quantity)
	assert.Equal(t, 10.0, food.Nutrients[1].Quantity, "percent nutrients stay untouched")
}

func TestHealthRiskRatio(t *testing.T) {
	conv := NewConverter(LocaleFor(LangEN))

	n := &models.Nutrient{Quantity: 25, Recommendation: &models.Recommendation{DailyAmountMale: 50}}
	assert.Equal(t, 0.5, conv.HealthRiskRatio(n))
	assert.Equal(t, 0.5, n.Recommendation.HealthRiskRatio)

	// Fallback on the highest RDA/AI bound, converted to grams-equivalent.
	n = &models.Nutrient{Quantity: 0.03, Recommendation: &models.Recommendation{HighestRdaAi: "30", Unit: "mg"}}
	require.InDelta(t, 1.0, conv.HealthRiskRatio(n), 1e-9)

	n = &models.Nutrient{Quantity: 25, Recommendation: &models.Recommendation{HighestRdaAi: "ND"}}
	assert.Equal(t, 0.0, conv.HealthRiskRatio(n))

	n = &models.Nutrient{Quantity: 25}
	assert.Equal(t, 0.0, conv.HealthRiskRatio(n))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.96, Round2(19.9600000001))
	assert.Equal(t, 0.33, Round2(1.0/3))
}
