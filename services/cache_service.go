// services/cache_service.go
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"nutrifacts/models"
	"nutrifacts/utils"
)

// CacheService is an optional redis cache in front of the catalog query
// path. A zero-value service (no address configured) disables caching and
// every call becomes a no-op. Values travel as JSON, so hits hand out fresh
// copies and never alias live nutrient records.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(addr string, ttl time.Duration) (*CacheService, error) {
	if addr == "" {
		return &CacheService{}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	utils.Logger.Info("catalog cache enabled", zap.String("addr", addr), zap.Duration("ttl", ttl))
	return &CacheService{client: client, ttl: ttl}, nil
}

// GetFoods returns the cached result set for a query and hydration shape, if
// present.
func (s *CacheService) GetFoods(ctx context.Context, query string, withNutrients, withProperties bool) ([]models.Food, bool) {
	if s.client == nil {
		return nil, false
	}

	data, err := s.client.Get(ctx, s.key(query, withNutrients, withProperties)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.Logger.Warn("cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var foods []models.Food
	if err := json.Unmarshal(data, &foods); err != nil {
		utils.Logger.Warn("cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return foods, true
}

// SetFoods stores a query result set. Failures are logged and swallowed;
// the cache is best effort.
func (s *CacheService) SetFoods(ctx context.Context, query string, withNutrients, withProperties bool, foods []models.Food) {
	if s.client == nil {
		return
	}

	data, err := json.Marshal(foods)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.key(query, withNutrients, withProperties), data, s.ttl).Err(); err != nil {
		utils.Logger.Warn("cache set failed", zap.Error(err))
	}
}

func (s *CacheService) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

// key derives the cache key from the query and the hydration flags. The
// flags are part of the key because the same query yields differently shaped
// result sets; a nutrient-less entry must never answer a hydrated lookup.
func (s *CacheService) key(query string, withNutrients, withProperties bool) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("catalog:foods:%s:%t:%t", hex.EncodeToString(sum[:]), withNutrients, withProperties)
}
