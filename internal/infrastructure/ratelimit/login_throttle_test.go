package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryThrottle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	th := NewMemoryThrottle(2, time.Minute)
	th.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := th.Allowed(ctx, "a@x.com"); !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
		_ = th.RegisterFailure(ctx, "a@x.com")
	}
	if ok, _ := th.Allowed(ctx, "a@x.com"); ok {
		t.Fatalf("expected lockout after max failures")
	}
	if ok, _ := th.Allowed(ctx, "b@x.com"); !ok {
		t.Fatalf("other keys must not be affected")
	}

	t.Run("window expiry", func(t *testing.T) {
		now = now.Add(time.Minute)
		if ok, _ := th.Allowed(ctx, "a@x.com"); !ok {
			t.Fatalf("expected counter to expire")
		}
	})

	t.Run("reset", func(t *testing.T) {
		_ = th.RegisterFailure(ctx, "c@x.com")
		_ = th.RegisterFailure(ctx, "c@x.com")
		_ = th.Reset(ctx, "c@x.com")
		if ok, _ := th.Allowed(ctx, "c@x.com"); !ok {
			t.Fatalf("expected reset to clear failures")
		}
	})
}

func TestRedisThrottle_BackendDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	th := NewRedisThrottle(client, 3, time.Minute)

	if _, err := th.Allowed(context.Background(), "a@x.com"); err == nil {
		t.Fatalf("expected backend error to surface")
	}
	if err := th.RegisterFailure(context.Background(), "a@x.com"); err == nil {
		t.Fatalf("expected backend error to surface")
	}
}

func TestNewRedisClient_BadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "not a url"); err == nil {
		t.Fatalf("expected parse error")
	}
}
