package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/pkg/helpers"
)

// Lua script: compare-and-delete in one round trip so two concurrent verify
// calls can never both consume the same code. Returns 1 on match (deleted),
// 0 on mismatch (left in place), -1 when no code exists.
var consumeScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if stored == false then
  return -1
end
if stored == ARGV[1] then
  redis.call("DEL", KEYS[1])
  return 1
end
return 0
`)

// RedisOTPCache stores in-flight OTP codes in Redis under "otp:<email>" with
// the TTL enforcing expiry.
type RedisOTPCache struct {
	rdb *redis.Client
}

func NewRedisOTPCache(rdb *redis.Client) *RedisOTPCache {
	return &RedisOTPCache{rdb: rdb}
}

func (c *RedisOTPCache) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return c.rdb.Set(ctx, helpers.KeyOTP(email), code, ttl).Err()
}

func (c *RedisOTPCache) Consume(ctx context.Context, email, code string) (application.OTPResult, error) {
	res, err := consumeScript.Run(ctx, c.rdb, []string{helpers.KeyOTP(email)}, code).Int()
	if err != nil {
		return application.OTPMissing, err
	}
	switch res {
	case 1:
		return application.OTPMatched, nil
	case 0:
		return application.OTPMismatch, nil
	default:
		return application.OTPMissing, nil
	}
}

func (c *RedisOTPCache) Delete(ctx context.Context, email string) error {
	return c.rdb.Del(ctx, helpers.KeyOTP(email)).Err()
}

var _ application.OTPCache = (*RedisOTPCache)(nil)
