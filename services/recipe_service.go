// services/recipe_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"nutrifacts/models"
	"nutrifacts/utils"
)

// Vulgar fraction glyphs are substituted before the phrase parser runs.
var vulgarFractions = strings.NewReplacer(
	"½", "1/2",
	"⅓", "1/3",
	"¼", "1/4",
	"¾", "3/4",
	"⅔", "2/3",
)

// RecipeService resolves a list of ingredient lines into an aggregated
// nutrient profile. Lines are dispatched concurrently; a single collector
// merges the per-line outcomes, so RecipeResult has exactly one writer.
type RecipeService struct {
	store  CatalogStore
	parser PhraseParser
	conv   *utils.Converter
}

func NewRecipeService(store CatalogStore, parser PhraseParser, loc *utils.Locale) *RecipeService {
	return &RecipeService{
		store:  store,
		parser: parser,
		conv:   utils.NewConverter(loc),
	}
}

// lineOutcome is the terminal state of one input line: matched foods, an
// unknown entry, or a fatal store error.
type lineOutcome struct {
	label   string
	foods   []*models.Food
	unknown *models.UnknownIngredient
	err     error
}

// ResolveRecipe fans out one resolution per input line and joins on all of
// them before returning; partial results are never exposed. Per-line parsing
// and lookup failures land in Unknown; the first store error rejects the
// whole call.
//
// Results are keyed by label, but completion is counted by line position:
// two lines sharing a label both aggregate under that key instead of
// overwriting each other.
func (s *RecipeService) ResolveRecipe(ctx context.Context, lines []models.IngredientLine) (*models.RecipeResult, error) {
	out := models.NewRecipeResult()
	if len(lines) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make(chan lineOutcome, len(lines))
	for _, line := range lines {
		go func(line models.IngredientLine) {
			outcomes <- s.resolveLine(ctx, line)
		}(line)
	}

	for range lines {
		res := <-outcomes
		if res.err != nil {
			return nil, res.err
		}
		if res.unknown != nil {
			out.Unknown[res.label] = res.unknown
			continue
		}

		out.Matches[res.label] = append(out.Matches[res.label], res.foods...)
		for _, food := range res.foods {
			s.accumulate(out, food)
		}
	}

	utils.Logger.Debug("recipe resolved",
		zap.Int("lines", len(lines)),
		zap.Int("matched", len(out.Matches)),
		zap.Int("unknown", len(out.Unknown)),
	)
	return out, nil
}

// accumulate folds one matched food's scaled nutrients into the running
// totals and the health-risk sum. Percent-unit and non-positive quantities
// do not contribute.
func (s *RecipeService) accumulate(out *models.RecipeResult, food *models.Food) {
	for i := range food.Nutrients {
		n := &food.Nutrients[i]
		if n.Unit == "%" || n.Quantity <= 0 {
			continue
		}

		out.SumHealthRatio += s.conv.HealthRiskRatio(n)

		total, ok := out.Totals[n.Name]
		if !ok {
			total = &models.NutrientTotal{Unit: n.Unit}
			out.Totals[n.Name] = total
		}
		total.Value = utils.Round2(total.Value + n.Quantity)
	}
}

// resolveLine drives a single line to its terminal state.
func (s *RecipeService) resolveLine(ctx context.Context, line models.IngredientLine) lineOutcome {
	label, quantityGrams, unknown := s.normalizeLine(line)
	if unknown != nil {
		return lineOutcome{label: label, unknown: unknown}
	}

	foods, err := s.store.FoodsByQuery(ctx, label, true, true)
	if err != nil {
		return lineOutcome{err: fmt.Errorf("catalog lookup for %q: %w", label, err)}
	}
	if len(foods) == 0 {
		return lineOutcome{label: label, unknown: &models.UnknownIngredient{
			Ingredient: line,
			Reasons:    []models.UnknownReason{models.ReasonNoEntry},
		}}
	}

	// The store hands out per-call copies; scaling mutates only those.
	scaled := make([]*models.Food, 0, len(foods))
	for i := range foods {
		food := foods[i]
		s.conv.ScaleNutrients(quantityGrams, &food)
		food.Quantity = quantityGrams
		scaled = append(scaled, &food)
	}
	return lineOutcome{label: label, foods: scaled}
}

// normalizeLine turns an input line into a (label, grams) pair, or an
// unknown entry when parsing or unit conversion fails.
func (s *RecipeService) normalizeLine(line models.IngredientLine) (string, float64, *models.UnknownIngredient) {
	if line.RecipeStr == "" {
		label := "N/A"
		if line.Label != "" {
			label = strings.ToLower(line.Label)
		}
		quantity := line.Quantity
		if quantity == 0 {
			quantity = -1
		}
		return label, quantity, nil
	}

	parts := s.parser.Parse(vulgarFractions.Replace(line.RecipeStr))

	if parts.Amount == "" || parts.Unit == "" || parts.Ingredient == "" {
		reasons := []models.UnknownReason{models.ReasonParsing}
		if parts.Amount == "" {
			reasons = append(reasons, models.ReasonParsingAmount)
		}
		if parts.Unit == "" {
			reasons = append(reasons, models.ReasonParsingUnit)
		}
		return line.RecipeStr, 0, &models.UnknownIngredient{
			Ingredient: line,
			Parsed:     &parts,
			Reasons:    reasons,
		}
	}

	amount := s.conv.NormalizeAmount(parts.Amount)
	if math.IsNaN(amount) {
		return line.RecipeStr, 0, &models.UnknownIngredient{
			Ingredient: line,
			Parsed:     &parts,
			Reasons:    []models.UnknownReason{models.ReasonParsing, models.ReasonParsingAmount},
		}
	}

	unit := parts.Unit
	if s.conv.Classify(unit) == utils.UnitKilograms {
		unit = s.conv.DefaultGramUnit()
		amount *= utils.GramsPerKilogram
	}

	label := parts.Ingredient
	quantityGrams := amount
	if s.conv.Classify(unit) != utils.UnitGrams {
		quantityGrams = s.conv.ConvertToGrams(unit, s.conv.NearestIngredientType(label), amount)
		if quantityGrams < 0 {
			return label, 0, &models.UnknownIngredient{
				Ingredient: line,
				Parsed:     &parts,
				Reasons:    []models.UnknownReason{models.ReasonParsingUnit},
			}
		}
	}
	return label, quantityGrams, nil
}
