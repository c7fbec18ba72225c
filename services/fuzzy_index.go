// services/fuzzy_index.go
package services

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nutrifacts/models"
	"nutrifacts/utils"
)

// Query tokens shorter than this are ignored, matching the minimum match
// length of the original search index.
const minMatchLen = 3

// FuzzyIndex is an in-memory shortlist index over catalog names. It is built
// once at startup from the foods, nutrients and properties tables and serves
// unranked candidate shortlists; ranking is the matcher's job.
type FuzzyIndex struct {
	mu         sync.RWMutex
	foods      []models.FoodRef
	nutrients  []models.FoodRef
	properties []models.FoodRef
	ready      bool
}

func NewFuzzyIndex() *FuzzyIndex {
	return &FuzzyIndex{}
}

// Build loads the (id, name) rows for all three indexes.
func (ix *FuzzyIndex) Build(db *gorm.DB) error {
	var foods, nutrients, properties []models.FoodRef

	if err := db.Table("foods").Select("id, name").Scan(&foods).Error; err != nil {
		return err
	}
	if err := db.Table("nutrients").Select("id, name").Scan(&nutrients).Error; err != nil {
		return err
	}
	if err := db.Table("properties").Select("id, name").Scan(&properties).Error; err != nil {
		return err
	}

	ix.Load(foods, nutrients, properties)

	utils.Logger.Info("fuzzy index built",
		zap.Int("foods", len(foods)),
		zap.Int("nutrients", len(nutrients)),
		zap.Int("properties", len(properties)),
	)
	return nil
}

// Load replaces the index contents and marks the index ready.
func (ix *FuzzyIndex) Load(foods, nutrients, properties []models.FoodRef) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.foods = foods
	ix.nutrients = nutrients
	ix.properties = properties
	ix.ready = true
}

func (ix *FuzzyIndex) Ready() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.ready
}

func (ix *FuzzyIndex) SearchFoods(query string) []models.FoodRef {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return search(ix.foods, query)
}

func (ix *FuzzyIndex) SearchNutrients(query string) []models.FoodRef {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return search(ix.nutrients, query)
}

func (ix *FuzzyIndex) SearchProperties(query string) []models.FoodRef {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return search(ix.properties, query)
}

// search shortlists every entry with a name containing a query token, or a
// name word within edit distance 1 of one.
func search(entries []models.FoodRef, query string) []models.FoodRef {
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var matches []models.FoodRef
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		if matchesAny(name, tokens) {
			matches = append(matches, models.FoodRef{ID: entry.ID, Name: entry.Name})
		}
	}
	return matches
}

func queryTokens(query string) []string {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) >= minMatchLen {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func matchesAny(name string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(name, token) {
			return true
		}
		for _, word := range strings.Fields(name) {
			if utils.StrDistance(word, token) <= 1 {
				return true
			}
		}
	}
	return false
}
