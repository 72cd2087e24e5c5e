// Copyright (c) 2026 ArtFolio. All rights reserved.

package contact

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/artfolio/artfolio/internal/platform/constants"
)

// RedisThrottleRepository implements ThrottleRepository using Redis.
//
// Counters are volatile by design: each client IP gets one key that counts
// submissions and expires with the throttle window, so no cleanup job is
// needed.
type RedisThrottleRepository struct {
	client *redis.Client
}

// NewThrottleRepository creates a new Redis-backed ThrottleRepository.
func NewThrottleRepository(client *redis.Client) *RedisThrottleRepository {
	return &RedisThrottleRepository{client: client}
}

/*
Hit records one submission for the client IP.

The counter key is created on first hit with the window TTL; subsequent
hits only increment it, so the window is fixed rather than sliding.

Parameters:
  - ctx: context.Context
  - clientIP: string

Returns:
  - int64: Submissions inside the current window, this one included.
  - error: Execution errors
*/
func (repository *RedisThrottleRepository) Hit(ctx context.Context, clientIP string) (int64, error) {
	key := constants.RedisPrefixContactThrottle + clientIP

	count, err := repository.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_contact_throttle_incr_failed: %w", err)
	}

	// Only the first hit sets the expiry, anchoring the window.
	if count == 1 {
		if err := repository.client.Expire(ctx, key, constants.ContactThrottleWindow).Err(); err != nil {
			return 0, fmt.Errorf("redis_contact_throttle_expire_failed: %w", err)
		}
	}

	return count, nil
}
