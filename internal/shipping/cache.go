package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
)

const cacheKeyPrefix = "shipping:"

type cachedTracker struct {
	next    Tracker
	cache   *redis.Client
	ttl     time.Duration
	metrics *metrics.Registry
}

// NewCachedTracker serves repeat lookups from Redis. Cache failures fall
// through to next.
func NewCachedTracker(next Tracker, cache *redis.Client, ttl time.Duration, reg *metrics.Registry) Tracker {
	return &cachedTracker{next: next, cache: cache, ttl: ttl, metrics: reg}
}

func cacheKey(trackingNumber string) string {
	return cacheKeyPrefix + trackingNumber
}

func (c *cachedTracker) Track(ctx context.Context, trackingNumber string) (*Info, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "cache"),
		zap.String("method", "Track"),
		zap.String("tracking_number", trackingNumber),
	)

	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, ErrTrackingNumberRequired
	}
	c.metrics.Inc(metrics.ShippingLookups)

	key := cacheKey(trackingNumber)
	data, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var info Info
		if uErr := json.Unmarshal(data, &info); uErr == nil {
			c.metrics.Inc(metrics.ShippingCacheHits)
			return &info, nil
		}
		log.Warn("discarding corrupt cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn("cache read failed", zap.Error(err))
	}

	info, err := c.next.Track(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, ErrTrackingNumberRequired) {
			return nil, err
		}
		log.Error("carrier lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if payload, err := json.Marshal(info); err == nil {
		if err := c.cache.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			log.Warn("cache write failed", zap.Error(err))
		}
	}
	return info, nil
}
