// File: services/hotels/cache.go
package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripweaver/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const hotelCachePrefix = "hotels:stay:"

// CachedSearchClient wraps a SearchClient with a Redis cache of raw search
// results keyed by stay. Cache problems degrade to a direct lookup; they are
// never surfaced to the aggregator.
type CachedSearchClient struct {
	inner  SearchClient
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSearchClient decorates inner with a Redis result cache.
func NewCachedSearchClient(inner SearchClient, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSearchClient {
	return &CachedSearchClient{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedSearchClient) key(destination, checkIn, checkOut string) string {
	return fmt.Sprintf("%s%s_%s_%s", hotelCachePrefix, destination, checkIn, checkOut)
}

// Search returns cached candidates for the stay when present, otherwise asks
// the inner client and stores the raw result.
func (c *CachedSearchClient) Search(ctx context.Context, destination, checkIn, checkOut string) ([]models.HotelOption, error) {
	key := c.key(destination, checkIn, checkOut)

	data, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var hotels []models.HotelOption
		if jsonErr := json.Unmarshal([]byte(data), &hotels); jsonErr == nil {
			return hotels, nil
		}
		c.logger.Warn("discarding corrupt hotel cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("hotel cache read failed", zap.String("key", key), zap.Error(err))
	}

	hotels, err := c.inner.Search(ctx, destination, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if b, jsonErr := json.Marshal(hotels); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, b, c.ttl).Err(); setErr != nil {
			c.logger.Warn("hotel cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}
	return hotels, nil
}
