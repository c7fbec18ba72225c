package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrifacts/utils"
)

func newTestCatalogService(index NameIndex) *CatalogService {
	return NewCatalogService(nil, index, NewMatcherService(utils.LocaleFor(utils.LangEN)), nil)
}

func TestFoodsByQueryStoreUnavailable(t *testing.T) {
	s := newTestCatalogService(NewFuzzyIndex())

	foods, err := s.FoodsByQuery(context.Background(), "sugar", true, true)
	assert.Nil(t, foods)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFoodsByPropertyStoreUnavailable(t *testing.T) {
	s := newTestCatalogService(NewFuzzyIndex())

	foods, err := s.FoodsByProperty(context.Background(), "antioxidant")
	assert.Nil(t, foods)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNutrientsByQueryStoreUnavailable(t *testing.T) {
	s := newTestCatalogService(NewFuzzyIndex())

	nutrients, err := s.NutrientsByQuery(context.Background(), "protein")
	assert.Nil(t, nutrients)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFoodsByQueryNoCandidates(t *testing.T) {
	ix := NewFuzzyIndex()
	ix.Load(nil, nil, nil)
	s := newTestCatalogService(ix)

	foods, err := s.FoodsByQuery(context.Background(), "sugar", true, true)
	require.NoError(t, err)
	assert.Nil(t, foods)
}

func TestFoodByQueryNoCandidates(t *testing.T) {
	ix := NewFuzzyIndex()
	ix.Load(nil, nil, nil)
	s := newTestCatalogService(ix)

	food, err := s.FoodByQuery(context.Background(), "sugar", true)
	require.NoError(t, err)
	assert.Nil(t, food)
}

func TestFoodsByIDsEmptyInput(t *testing.T) {
	ix := NewFuzzyIndex()
	ix.Load(nil, nil, nil)
	s := newTestCatalogService(ix)

	foods, err := s.FoodsByIDs(context.Background(), nil, true, true)
	require.NoError(t, err)
	assert.Nil(t, foods)
}

func TestFoodsByNutrientIDsEmptyInput(t *testing.T) {
	s := newTestCatalogService(NewFuzzyIndex())

	foods, err := s.FoodsByNutrientIDs(context.Background(), nil, "OR")
	require.NoError(t, err)
	assert.Nil(t, foods)
}

func TestNutrientsByQueryNoMatches(t *testing.T) {
	ix := NewFuzzyIndex()
	ix.Load(nil, nil, nil)
	s := newTestCatalogService(ix)

	nutrients, err := s.NutrientsByQuery(context.Background(), "protein")
	require.NoError(t, err)
	assert.Nil(t, nutrients)
}
