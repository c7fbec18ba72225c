// utils/conversions.go
package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"nutrifacts/models"
)

// Reference quantities for nutrient tables and kilogram rescaling.
const (
	RefQuantityGrams = 100.0
	GramsPerKilogram = 1000.0
)

// UnitClass is the nominal class a unit token is routed through.
type UnitClass string

const (
	UnitMilligrams  UnitClass = "milligrams"
	UnitGrams       UnitClass = "grams"
	UnitKilograms   UnitClass = "kilograms"
	UnitMilliliters UnitClass = "milliliters"
	UnitLiters      UnitClass = "liters"
	UnitApproximate UnitClass = "approximate"
)

var (
	nonWordRe  = regexp.MustCompile(`\W`)
	fractionRe = regexp.MustCompile(`(\d+)?(?:\D*?)(\d+)/(\d+)`)
)

// Converter performs amount normalization, unit classification and
// gram conversion against an injected locale.
type Converter struct {
	loc *Locale
}

func NewConverter(loc *Locale) *Converter {
	return &Converter{loc: loc}
}

func contains(list []string, unit string) bool {
	for _, u := range list {
		if u == unit {
			return true
		}
	}
	return false
}

// Classify routes a unit token to its nominal class. Any recognized
// approximate-unit token (spoon, cup, pinch...) classifies as approximate;
// everything else defaults to approximate as well and is sorted out by
// ConvertToGrams.
func (c *Converter) Classify(unit string) UnitClass {
	switch {
	case contains(c.loc.Units.Milligrams, unit):
		return UnitMilligrams
	case contains(c.loc.Units.Grams, unit):
		return UnitGrams
	case contains(c.loc.Units.Kilograms, unit):
		return UnitKilograms
	case contains(c.loc.Units.Milliliters, unit):
		return UnitMilliliters
	case contains(c.loc.Units.Liters, unit):
		return UnitLiters
	default:
		return UnitApproximate
	}
}

// DefaultGramUnit returns the canonical gram spelling for the locale.
func (c *Converter) DefaultGramUnit() string {
	return c.loc.Units.Grams[0]
}

// NearestIngredientType fuzzy-matches the ingredient name against the
// locale's type buckets (substring in either direction), falling back to the
// default bucket.
func (c *Converter) NearestIngredientType(ingredient string) string {
	ingredient = strings.ToLower(ingredient)
	for _, t := range c.loc.IngredientTypes {
		if strings.Contains(ingredient, t) || strings.Contains(t, ingredient) {
			return t
		}
	}
	return c.loc.DefaultType
}

// NormalizeAmount parses numeric text into a float: word numbers first,
// then simple and mixed fractions ("1/2", "2 and 1/2"), then plain numbers.
// Unparsable input yields NaN; callers treat that as an amount failure.
func (c *Converter) NormalizeAmount(val string) float64 {
	val = strings.TrimSpace(val)

	if n, ok := c.loc.WordNumbers[strings.ToLower(val)]; ok {
		return n
	}

	if m := fractionRe.FindStringSubmatch(val); m != nil {
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return math.NaN()
		}
		if m[1] != "" {
			whole, _ := strconv.ParseFloat(m[1], 64)
			return whole + num/den
		}
		return num / den
	}

	n, err := strconv.ParseFloat(strings.ReplaceAll(val, ",", "."), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// NormalizeUnitToken strips non-word characters and maps plural forms to
// singular.
func (c *Converter) NormalizeUnitToken(unit string) string {
	unit = nonWordRe.ReplaceAllString(strings.ToLower(unit), "")
	if singular, ok := c.loc.Plurals[unit]; ok {
		return singular
	}
	return unit
}

// ConvertToGrams converts a value in the given unit to grams. Milliliters
// convert 1:1 (density ~1), liters x1000. Approximate units resolve through
// the (unit, ingredient type) weight table; the tabulated weight is the
// serving weight and is returned as-is. Returns -1 when the unit is wholly
// unrecognized.
func (c *Converter) ConvertToGrams(unit, ingredientType string, value float64) float64 {
	unit = c.NormalizeUnitToken(unit)

	switch c.Classify(unit) {
	case UnitMilliliters:
		return value
	case UnitLiters:
		return value * 1000
	}

	weights, ok := c.loc.ApproxWeights[unit]
	if !ok {
		return -1
	}
	w, ok := weights[ingredientType]
	if !ok {
		w, ok = weights[c.loc.DefaultType]
		if !ok {
			return -1
		}
	}
	return w
}

// ScaleNutrients rescales the food's per-100g nutrient quantities to the
// given amount in grams. A negative amount means "cannot estimate": every
// non-percent quantity is zeroed. Percent-unit nutrients are never touched.
func (c *Converter) ScaleNutrients(quantityGrams float64, food *models.Food) {
	for i := range food.Nutrients {
		n := &food.Nutrients[i]
		if n.Unit == "%" {
			continue
		}
		if quantityGrams < 0 {
			n.Quantity = 0
			continue
		}
		n.Quantity = n.Quantity / RefQuantityGrams * quantityGrams
	}
}

// HealthRiskRatio computes the coarse risk signal for a scaled nutrient:
// quantity over the male daily reference, or over the highest RDA/AI bound
// converted to grams-equivalent, or zero when neither is known. The ratio is
// stored on the recommendation and returned.
func (c *Converter) HealthRiskRatio(n *models.Nutrient) float64 {
	rec := n.Recommendation
	if rec == nil {
		return 0
	}

	var ratio float64
	if rec.DailyAmountMale > 0 {
		ratio = n.Quantity / rec.DailyAmountMale
	} else if bound, err := strconv.ParseFloat(rec.HighestRdaAi, 64); err == nil && bound > 0 {
		ratio = n.Quantity / gramsEquivalent(bound, rec.Unit)
	}

	rec.HealthRiskRatio = ratio
	return ratio
}

// gramsEquivalent rescales a reference amount expressed in µg or mg to the
// gram baseline used by the nutrient tables.
func gramsEquivalent(value float64, unit string) float64 {
	switch unit {
	case "µg", "ug", "mcg":
		return value / 1e6
	case "mg":
		return value / 1e3
	default:
		return value
	}
}

// Round2 rounds to two decimal places; totals are published at this
// precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
