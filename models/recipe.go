package models

// IngredientLine is one recipe input line. Either RecipeStr (free text) or
// Label+Quantity (structured, grams) is populated.
type IngredientLine struct {
	RecipeStr string  `json:"recipe_str,omitempty"`
	Label     string  `json:"label,omitempty"`
	Quantity  float64 `json:"quantity,omitempty"`
}

// ParsedTriplet is the phrase parser output. An empty field means the parser
// could not extract that part.
type ParsedTriplet struct {
	Amount     string `json:"amount,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Ingredient string `json:"ingredient,omitempty"`
}

// UnknownReason explains why an ingredient line could not be resolved.
type UnknownReason string

const (
	ReasonParsing       UnknownReason = "mismatch during parsing"
	ReasonParsingAmount UnknownReason = "unknown amount"
	ReasonParsingUnit   UnknownReason = "unknown unit"
	ReasonNoEntry       UnknownReason = "unavailable food"
)

// UnknownIngredient is an unresolved line with its diagnostic reasons.
type UnknownIngredient struct {
	Ingredient IngredientLine  `json:"ingredient"`
	Parsed     *ParsedTriplet  `json:"parsed,omitempty"`
	Reasons    []UnknownReason `json:"reasons,omitempty"`
}

// NutrientTotal is a recipe-wide running sum for one nutrient. The unit is
// fixed by the first occurrence.
type NutrientTotal struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// RecipeResult is the aggregate outcome of a recipe resolution. Every input
// line lands in either Matches or Unknown.
type RecipeResult struct {
	Totals         map[string]*NutrientTotal     `json:"totals"`
	Unknown        map[string]*UnknownIngredient `json:"unknown"`
	Matches        map[string][]*Food            `json:"matches"`
	SumHealthRatio float64                       `json:"sum_health_ratio"`
}

// NewRecipeResult returns an empty result with initialized maps.
func NewRecipeResult() *RecipeResult {
	return &RecipeResult{
		Totals:  make(map[string]*NutrientTotal),
		Unknown: make(map[string]*UnknownIngredient),
		Matches: make(map[string][]*Food),
	}
}
