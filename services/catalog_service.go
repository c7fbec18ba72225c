// services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"nutrifacts/models"
)

// ErrStoreUnavailable is returned when the fuzzy index has not been built;
// it is fatal for the whole call that hits it.
var ErrStoreUnavailable = errors.New("fuzzy index not initialized")

// Caps carried over from the published dataset queries.
const (
	maxPropertiesPerNutrient = 10
	maxPropertyShortlist     = 5
	maxFoodsByProperty       = 20
)

// CatalogStore is the slice of the catalog the recipe aggregator consumes.
type CatalogStore interface {
	FoodsByQuery(ctx context.Context, query string, withNutrients, withProperties bool) ([]models.Food, error)
}

// NameIndex is the approximate-search index over catalog names.
type NameIndex interface {
	Ready() bool
	SearchFoods(query string) []models.FoodRef
	SearchNutrients(query string) []models.FoodRef
	SearchProperties(query string) []models.FoodRef
}

// CatalogService answers food/nutrient/property queries over the relational
// catalog, using the fuzzy index for shortlists and the matcher for ranking.
type CatalogService struct {
	db      *gorm.DB
	index   NameIndex
	matcher *MatcherService
	cache   *CacheService
}

func NewCatalogService(db *gorm.DB, index NameIndex, matcher *MatcherService, cache *CacheService) *CatalogService {
	return &CatalogService{db: db, index: index, matcher: matcher, cache: cache}
}

// FoodByID returns a food with its nutrients (and their properties) hydrated.
func (s *CatalogService) FoodByID(ctx context.Context, id uint, withNutrients bool) (*models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Table("foods").
		Select("id, name, ref_id").
		Where("id = ?", id).
		Scan(&foods).Error
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, nil
	}

	food := foods[0]
	if withNutrients {
		if err := s.hydrateNutrients(ctx, &food, true); err != nil {
			return nil, err
		}
	}
	return &food, nil
}

// FoodsByIDs returns the foods for a list of ids, optionally hydrated.
func (s *CatalogService) FoodsByIDs(ctx context.Context, ids []uint, withNutrients, withProperties bool) ([]models.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var foods []models.Food
	err := s.db.WithContext(ctx).
		Table("foods").
		Select("id, name, ref_id").
		Where("id IN ?", ids).
		Scan(&foods).Error
	if err != nil {
		return nil, err
	}

	if withNutrients {
		for i := range foods {
			if err := s.hydrateNutrients(ctx, &foods[i], withProperties); err != nil {
				return nil, err
			}
		}
	}
	return foods, nil
}

// FoodByQuery returns the single best-matching food for a textual query, or
// nil when nothing matches.
func (s *CatalogService) FoodByQuery(ctx context.Context, query string, withNutrients bool) (*models.Food, error) {
	foods, err := s.FoodsByQuery(ctx, query, withNutrients, withNutrients)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, nil
	}
	return &foods[0], nil
}

// FoodsByQuery shortlists catalog candidates for the query, picks the best
// match and returns it hydrated. The winner's match stats ride along on the
// food record.
func (s *CatalogService) FoodsByQuery(ctx context.Context, query string, withNutrients, withProperties bool) ([]models.Food, error) {
	if !s.index.Ready() {
		return nil, ErrStoreUnavailable
	}

	if s.cache != nil {
		if foods, ok := s.cache.GetFoods(ctx, query, withNutrients, withProperties); ok {
			return foods, nil
		}
	}

	shortlist := s.index.SearchFoods(query)
	best := s.matcher.BestMatch(shortlist, query)
	if len(best) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(best))
	for i, ref := range best {
		ids[i] = ref.ID
	}

	foods, err := s.FoodsByIDs(ctx, ids, withNutrients, withProperties)
	if err != nil {
		return nil, err
	}

	for i := range foods {
		for _, ref := range best {
			if ref.ID == foods[i].ID {
				foods[i].Stats = ref.Stats
			}
		}
	}

	if s.cache != nil {
		s.cache.SetFoods(ctx, query, withNutrients, withProperties, foods)
	}
	return foods, nil
}

// FoodsByNutrientIDs returns the foods containing the given nutrients. With
// OR any of the ids qualifies; with AND a food must contain all of them.
func (s *CatalogService) FoodsByNutrientIDs(ctx context.Context, ids []uint, operator string) ([]models.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := s.db.WithContext(ctx).
		Table("foods").
		Select("DISTINCT foods.id, foods.name").
		Joins("JOIN food_nutrients ON food_nutrients.food_id = foods.id AND food_nutrients.quantity > 0").
		Where("food_nutrients.nutrient_id IN ?", ids)

	if operator == models.OperatorAnd {
		q = s.db.WithContext(ctx).
			Table("foods").
			Select("foods.id, foods.name").
			Joins("JOIN food_nutrients ON food_nutrients.food_id = foods.id AND food_nutrients.quantity > 0").
			Where("food_nutrients.nutrient_id IN ?", ids).
			Group("foods.id, foods.name").
			Having("COUNT(DISTINCT food_nutrients.nutrient_id) = ?", len(ids))
	}

	var foods []models.Food
	if err := q.Scan(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// FoodsByProperty returns foods whose nutrients carry properties matching
// the textual query, nutrients hydrated.
func (s *CatalogService) FoodsByProperty(ctx context.Context, query string) ([]models.Food, error) {
	if !s.index.Ready() {
		return nil, ErrStoreUnavailable
	}

	matches := s.index.SearchProperties(query)
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > maxPropertyShortlist {
		matches = matches[:maxPropertyShortlist]
	}

	ids := make([]uint, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}

	var foods []models.Food
	err := s.db.WithContext(ctx).
		Table("foods").
		Select("DISTINCT foods.id, foods.name").
		Joins("JOIN food_nutrients ON food_nutrients.food_id = foods.id AND food_nutrients.quantity > 0").
		Joins("JOIN nutrient_properties ON nutrient_properties.nutrient_id = food_nutrients.nutrient_id").
		Where("nutrient_properties.property_id IN ?", ids).
		Limit(maxFoodsByProperty).
		Scan(&foods).Error
	if err != nil {
		return nil, err
	}

	for i := range foods {
		if err := s.hydrateNutrients(ctx, &foods[i], true); err != nil {
			return nil, err
		}
	}
	return foods, nil
}

// NutrientsByQuery returns the nutrients matching a textual query, with
// their properties hydrated.
func (s *CatalogService) NutrientsByQuery(ctx context.Context, query string) ([]models.Nutrient, error) {
	if !s.index.Ready() {
		return nil, ErrStoreUnavailable
	}

	matches := s.index.SearchNutrients(query)
	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > maxPropertyShortlist {
		matches = matches[:maxPropertyShortlist]
	}

	ids := make([]uint, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}

	var nutrients []models.Nutrient
	err := s.db.WithContext(ctx).
		Table("nutrients").
		Select("id, name, unit").
		Where("id IN ?", ids).
		Scan(&nutrients).Error
	if err != nil {
		return nil, err
	}

	for i := range nutrients {
		if err := s.hydrateProperties(ctx, &nutrients[i]); err != nil {
			return nil, err
		}
	}
	return nutrients, nil
}

// hydrateNutrients loads the food's nutrient rows (with per-100g quantities
// and recommendations) and, optionally, their properties.
func (s *CatalogService) hydrateNutrients(ctx context.Context, food *models.Food, withProperties bool) error {
	err := s.db.WithContext(ctx).
		Table("nutrients").
		Select("nutrients.id, nutrients.name, nutrients.unit, food_nutrients.quantity").
		Joins("JOIN food_nutrients ON food_nutrients.nutrient_id = nutrients.id").
		Where("food_nutrients.food_id = ? AND food_nutrients.quantity > 0", food.ID).
		Scan(&food.Nutrients).Error
	if err != nil {
		return fmt.Errorf("hydrate nutrients for food %d: %w", food.ID, err)
	}
	if len(food.Nutrients) == 0 {
		return nil
	}

	ids := make([]uint, len(food.Nutrients))
	for i, n := range food.Nutrients {
		ids[i] = n.ID
	}

	var recs []models.Recommendation
	if err := s.db.WithContext(ctx).Where("nutrient_id IN ?", ids).Find(&recs).Error; err != nil {
		return fmt.Errorf("hydrate recommendations: %w", err)
	}
	for i := range food.Nutrients {
		for j := range recs {
			if recs[j].NutrientID == food.Nutrients[i].ID {
				rec := recs[j]
				food.Nutrients[i].Recommendation = &rec
				break
			}
		}
	}

	if withProperties {
		for i := range food.Nutrients {
			if err := s.hydrateProperties(ctx, &food.Nutrients[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *CatalogService) hydrateProperties(ctx context.Context, nutrient *models.Nutrient) error {
	err := s.db.WithContext(ctx).
		Table("properties").
		Select("properties.id, properties.name, properties.descr").
		Joins("JOIN nutrient_properties ON nutrient_properties.property_id = properties.id").
		Where("nutrient_properties.nutrient_id = ?", nutrient.ID).
		Limit(maxPropertiesPerNutrient).
		Scan(&nutrient.Properties).Error
	if err != nil {
		return fmt.Errorf("hydrate properties for nutrient %d: %w", nutrient.ID, err)
	}
	return nil
}
