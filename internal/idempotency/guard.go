package idempotency

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Guard marks a payment reference as consumed so a double-submitted
// widget callback cannot admit two bookings for one charge.
type Guard interface {
	Acquire(ctx context.Context, paymentID string) (bool, error)
	Release(ctx context.Context, paymentID string) error
}

type RedisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGuard(rdb *redis.Client) *RedisGuard {
	return &RedisGuard{
		rdb: rdb,
		ttl: 24 * time.Hour,
	}
}

func (g *RedisGuard) key(paymentID string) string {
	return "payment_ref:" + paymentID
}

func (g *RedisGuard) Acquire(ctx context.Context, paymentID string) (bool, error) {
	return g.rdb.SetNX(ctx, g.key(paymentID), 1, g.ttl).Result()
}

// Release frees the reference when admission fails after the guard
// was taken, so the client may retry with the same payment.
func (g *RedisGuard) Release(ctx context.Context, paymentID string) error {
	return g.rdb.Del(ctx, g.key(paymentID)).Err()
}

var _ Guard = (*RedisGuard)(nil)
