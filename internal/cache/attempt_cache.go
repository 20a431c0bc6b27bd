package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptCache mirrors live attempt responses in Redis so a reconnecting
// client can pick up mid-attempt without a MongoDB round trip. It is a
// best-effort mirror; MongoDB stays the system of record.
type AttemptCache interface {
	SetResponse(ctx context.Context, attemptID string, questionID, value int) error
	GetResponses(ctx context.Context, attemptID string) (map[int]int, error)

	// Teardown on completion or deletion
	Clear(ctx context.Context, attemptID string) error
}

type attemptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAttemptCache creates a new attempt cache
func NewAttemptCache(client *redis.Client) AttemptCache {
	return &attemptCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *attemptCache) responsesKey(attemptID string) string {
	return fmt.Sprintf("attempt:%s:responses", attemptID)
}

func (c *attemptCache) SetResponse(ctx context.Context, attemptID string, questionID, value int) error {
	key := c.responsesKey(attemptID)
	if err := c.client.HSet(ctx, key, strconv.Itoa(questionID), value).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *attemptCache) GetResponses(ctx context.Context, attemptID string) (map[int]int, error) {
	data, err := c.client.HGetAll(ctx, c.responsesKey(attemptID)).Result()
	if err != nil {
		return nil, err
	}

	responses := make(map[int]int, len(data))
	for field, raw := range data {
		qid, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		responses[qid] = v
	}
	return responses, nil
}

func (c *attemptCache) Clear(ctx context.Context, attemptID string) error {
	return c.client.Del(ctx, c.responsesKey(attemptID)).Err()
}
