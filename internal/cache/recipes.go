// Package cache holds the Redis-backed read cache for the recipe catalog.
// The catalog is cached as a whole and filtered in memory, so a search never
// pays the database round trip twice in a row. Writes invalidate the key;
// readers racing a write may see the previous catalog, which the search
// contract permits.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forkful/backend/internal/models"
)

const (
	catalogKey = "recipes:catalog"
	catalogTTL = 5 * time.Minute
)

// RecipeCache caches the full recipe catalog in Redis. A nil *RecipeCache is
// valid and disables caching.
type RecipeCache struct {
	client *redis.Client
}

func NewRecipeCache(client *redis.Client) *RecipeCache {
	if client == nil {
		return nil
	}
	return &RecipeCache{client: client}
}

// GetCatalog returns the cached catalog, or false on a miss or any Redis
// failure. Cache errors never surface to the caller.
func (c *RecipeCache) GetCatalog(ctx context.Context) ([]models.Recipe, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, false
	}
	return recipes, true
}

// SetCatalog stores the catalog with a TTL. Failures are ignored.
func (c *RecipeCache) SetCatalog(ctx context.Context, recipes []models.Recipe) {
	if c == nil {
		return
	}

	data, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	c.client.Set(ctx, catalogKey, data, catalogTTL)
}

// Invalidate drops the cached catalog after any recipe write.
func (c *RecipeCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, catalogKey)
}
