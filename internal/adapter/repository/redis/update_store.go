package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// UpdateStore remembers which chat updates were already handled so that
// long-poll re-deliveries are not recorded twice.
type UpdateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewUpdateStore creates a new UpdateStore. Marks expire after ttl.
func NewUpdateStore(client *redis.Client, ttl time.Duration) *UpdateStore {
	return &UpdateStore{
		client: client,
		prefix: "telegram:update:",
		ttl:    ttl,
	}
}

// MarkSeen atomically marks updateID as handled.
// It returns true if the update had already been marked.
func (s *UpdateStore) MarkSeen(ctx context.Context, updateID int) (bool, error) {
	set, err := s.client.SetNX(ctx, s.key(updateID), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, err
	}

	return !set, nil
}

func (s *UpdateStore) key(updateID int) string {
	return s.prefix + strconv.Itoa(updateID)
}
