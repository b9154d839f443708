package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBlurCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewBlurCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get placeholder", func(t *testing.T) {
		dataURL := "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

		err := repo.Set(ctx, "gallery/photo-1", dataURL)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "gallery/photo-1")
		assert.NoError(t, err)
		assert.Equal(t, dataURL, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, "gallery/unknown")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not cached")
	})

	t.Run("Cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, "gallery/photo-2", "data:image/jpeg;base64,AAAA")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "gallery/photo-2")
		assert.Error(t, err)
	})
}
