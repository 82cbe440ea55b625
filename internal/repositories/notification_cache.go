package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// NotificationCache keeps computed notification summaries in redis for about
// one poll interval.
type NotificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNotificationCache(client *redis.Client, ttl time.Duration) *NotificationCache {
	return &NotificationCache{client: client, ttl: ttl}
}

func notificationKey(influencerID uuid.UUID) string {
	return "notifications:" + influencerID.String()
}

// Get returns nil, nil on a cache miss.
func (c *NotificationCache) Get(ctx context.Context, influencerID uuid.UUID) (*models.NotificationSummary, error) {
	data, err := c.client.Get(ctx, notificationKey(influencerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.NotificationSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *NotificationCache) Set(ctx context.Context, influencerID uuid.UUID, s *models.NotificationSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, notificationKey(influencerID), data, c.ttl).Err()
}

func (c *NotificationCache) Invalidate(ctx context.Context, influencerID uuid.UUID) error {
	return c.client.Del(ctx, notificationKey(influencerID)).Err()
}
