package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Invalidator implements usecase.Invalidator by deleting tag keys. Cached
// views are stored by the web client under these tags; dropping the tag
// forces a rebuild on the next read.
type Invalidator struct {
	client *redis.Client
	prefix string
}

// NewInvalidator creates a new Invalidator.
func NewInvalidator(client *redis.Client) *Invalidator {
	return &Invalidator{
		client: client,
		prefix: "cache:tag:",
	}
}

// Invalidate drops the given cache tags.
func (i *Invalidator) Invalidate(ctx context.Context, tags ...string) error {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, len(tags))
	for n, tag := range tags {
		keys[n] = i.prefix + tag
	}

	return i.client.Del(ctx, keys...).Err()
}
