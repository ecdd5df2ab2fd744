package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"archivum/internal/compliance"
)

const assessmentKeyPrefix = "assess:record:"

// Redis is a Redis-backed assessment cache for deployments where multiple
// instances share classification load.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed assessment cache. The client lifecycle
// is managed externally.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, recordID uuid.UUID) (compliance.Status, error) {
	payload, err := r.client.Get(ctx, assessmentKey(recordID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return compliance.Status{}, ErrMiss
	}
	if err != nil {
		return compliance.Status{}, fmt.Errorf("get cached assessment: %w", err)
	}

	var status compliance.Status
	if err := json.Unmarshal(payload, &status); err != nil {
		return compliance.Status{}, fmt.Errorf("unmarshal cached assessment: %w", err)
	}
	return status, nil
}

func (r *Redis) Set(ctx context.Context, recordID uuid.UUID, status compliance.Status) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	if err := r.client.Set(ctx, assessmentKey(recordID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache assessment: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, recordID uuid.UUID) error {
	if err := r.client.Del(ctx, assessmentKey(recordID)).Err(); err != nil {
		return fmt.Errorf("invalidate cached assessment: %w", err)
	}
	return nil
}

func assessmentKey(recordID uuid.UUID) string {
	return assessmentKeyPrefix + recordID.String()
}
