package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:failures:"

// RedisThrottle counts failed logins in Redis so every API instance sees
// the same counters and they survive restarts. A key expires one window
// after its first failure.
type RedisThrottle struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

var _ interfaces.ILoginThrottle = (*RedisThrottle)(nil)

func NewRedisThrottle(client *redis.Client, maxFailures int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, maxFailures: int64(maxFailures), window: window}
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (t *RedisThrottle) Allowed(ctx context.Context, key string) (bool, error) {
	n, err := t.client.Get(ctx, keyPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < t.maxFailures, nil
}

func (t *RedisThrottle) RegisterFailure(ctx context.Context, key string) error {
	k := keyPrefix + key
	n, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return t.client.Expire(ctx, k, t.window).Err()
	}
	return nil
}

func (t *RedisThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, keyPrefix+key).Err()
}

type memoryEntry struct {
	failures  int
	expiresAt time.Time
}

// MemoryThrottle is the single-process fallback used when REDIS_URL is not
// configured.
type MemoryThrottle struct {
	mu          sync.Mutex
	entries     map[string]memoryEntry
	maxFailures int
	window      time.Duration
	now         func() time.Time
}

var _ interfaces.ILoginThrottle = (*MemoryThrottle)(nil)

func NewMemoryThrottle(maxFailures int, window time.Duration) *MemoryThrottle {
	return &MemoryThrottle{
		entries:     make(map[string]memoryEntry),
		maxFailures: maxFailures,
		window:      window,
		now:         time.Now,
	}
}

func (t *MemoryThrottle) Allowed(_ context.Context, key string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.live(key)
	return !ok || e.failures < t.maxFailures, nil
}

func (t *MemoryThrottle) RegisterFailure(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.live(key)
	if !ok {
		e = memoryEntry{expiresAt: t.now().Add(t.window)}
	}
	e.failures++
	t.entries[key] = e
	return nil
}

func (t *MemoryThrottle) Reset(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
	return nil
}

// live returns the entry for key, dropping it if its window has passed.
// Callers hold t.mu.
func (t *MemoryThrottle) live(key string) (memoryEntry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !t.now().Before(e.expiresAt) {
		delete(t.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
