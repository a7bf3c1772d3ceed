package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// releaseScript deletes the key only if it still holds our token so that
// an expired lock taken over by someone else is never released.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

// Redis is a Locker shared by all instances using the same Redis server.
type Redis struct {
	client  *redis.Client
	prefix  string
	expiry  time.Duration
	retry   time.Duration
	timeout time.Duration
}

type RedisOption func(*Redis)

// WithExpiry sets how long a lock is held if it is never released.
func WithExpiry(d time.Duration) RedisOption {
	return func(r *Redis) { r.expiry = d }
}

// WithRetry sets the interval between acquisition attempts.
func WithRetry(d time.Duration) RedisOption {
	return func(r *Redis) { r.retry = d }
}

// WithTimeout bounds the time spent waiting for a lock when the context
// has no deadline.
func WithTimeout(d time.Duration) RedisOption {
	return func(r *Redis) { r.timeout = d }
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client:  client,
		prefix:  "wishpay:lock:",
		expiry:  30 * time.Second,
		retry:   50 * time.Millisecond,
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	key = r.prefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.expiry).Result()
		if err != nil {
			return nil, errors.Join(ErrNotAcquired, err)
		}

		if ok {
			return func() { r.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		case <-time.After(r.retry):
		}
	}
}

func (r *Redis) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := releaseScript.Run(ctx, r.client, []string{key}, token).Err()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("releasing lock failed, it expires on its own")
	}
}
