package feedcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

var _ datasources.FeedCache = (*Redis)(nil)

// Redis is a FeedCache backed by Redis, for deployments where several feed
// instances should share cached pages. Pages are stored as JSON with TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis feed cache and verifies the connection.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking redis connection: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) GetFeedPage(ctx context.Context, key string) (domain.FeedPage, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.FeedPage{}, false, nil
	}
	if err != nil {
		return domain.FeedPage{}, false, fmt.Errorf("reading cached feed page: %w", err)
	}

	var page domain.FeedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return domain.FeedPage{}, false, fmt.Errorf("decoding cached feed page: %w", err)
	}
	return page, true, nil
}

func (r *Redis) SetFeedPage(ctx context.Context, key string, page domain.FeedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encoding feed page for cache: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing cached feed page: %w", err)
	}
	return nil
}
