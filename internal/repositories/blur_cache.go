package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
)

// BlurCacheRepository caches blur placeholder data URLs in Redis, keyed by
// the image's public id. Placeholders are immutable per render, so a TTL
// only bounds cache size.
type BlurCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBlurCacheRepository creates a new repository instance with the given TTL.
func NewBlurCacheRepository(client *redis.Client, expiration time.Duration) *BlurCacheRepository {
	return &BlurCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached placeholder for the image.
func (r *BlurCacheRepository) Get(ctx context.Context, publicID string) (string, error) {
	key := fmt.Sprintf("blur:%s", publicID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("blur cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return "", fmt.Errorf("blur placeholder not cached for %s", publicID)
		}
		return "", err
	}

	logger.Log.Infow("blur cache hit",
		"key", key,
		"size", len(val),
	)

	return val, nil
}

// Set caches a placeholder for the image with the configured expiration.
func (r *BlurCacheRepository) Set(ctx context.Context, publicID, dataURL string) error {
	key := fmt.Sprintf("blur:%s", publicID)
	err := r.client.Set(ctx, key, dataURL, r.exp).Err()

	logger.Log.Infow("blur cache set",
		"key", key,
		"size", len(dataURL),
		"error", err,
	)

	return err
}
