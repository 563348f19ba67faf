package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"medibridge/internal/models"

	"github.com/redis/go-redis/v9"
)

const publicJobsPrefix = "publicjobs:"

// RedisClient caches the public job listing, keyed by the search term. Any
// job mutation invalidates the whole listing.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err = client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func publicJobsKey(search string) string {
	return publicJobsPrefix + strings.ToLower(strings.TrimSpace(search))
}

func (r *RedisClient) StorePublicJobs(search string, jobs []models.Job, duration time.Duration) error {
	jsonData, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("failed to marshal jobs: %w", err)
	}

	if err := r.client.Set(r.ctx, publicJobsKey(search), jsonData, duration).Err(); err != nil {
		return fmt.Errorf("failed to store jobs in Redis: %w", err)
	}

	return nil
}

func (r *RedisClient) GetPublicJobs(search string) ([]models.Job, bool, error) {
	data, err := r.client.Get(r.ctx, publicJobsKey(search)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get jobs from Redis: %w", err)
	}

	var jobs []models.Job
	if err := json.Unmarshal([]byte(data), &jobs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal jobs: %w", err)
	}

	return jobs, true, nil
}

// InvalidatePublicJobs drops every cached listing variant.
func (r *RedisClient) InvalidatePublicJobs() error {
	keys, err := r.client.Keys(r.ctx, publicJobsPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(r.ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}
