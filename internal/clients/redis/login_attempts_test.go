package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func newTestAttempts(t *testing.T) (LoginAttempts, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLoginAttemptsWithClient(logger.NewNop(), rdb), mr
}

func TestLoginAttemptsCountsAndExpires(t *testing.T) {
	a, mr := newTestAttempts(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, err := a.RecordFailure(ctx, "Admin@Example.com", time.Minute)
		if err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
		if n != i {
			t.Fatalf("RecordFailure count: want=%d got=%d", i, n)
		}
	}
	if n, err := a.Failures(ctx, "admin@example.com"); err != nil || n != 3 {
		t.Fatalf("Failures: n=%d err=%v", n, err)
	}
	if ttl := mr.TTL(key("admin@example.com")); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL: got=%v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if n, err := a.Failures(ctx, "admin@example.com"); err != nil || n != 0 {
		t.Fatalf("Failures after window: n=%d err=%v", n, err)
	}
}

func TestLoginAttemptsReset(t *testing.T) {
	a, _ := newTestAttempts(t)
	ctx := context.Background()

	if _, err := a.RecordFailure(ctx, "admin@example.com", time.Minute); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if err := a.Reset(ctx, "admin@example.com"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if n, _ := a.Failures(ctx, "admin@example.com"); n != 0 {
		t.Fatalf("Failures after reset: got=%d", n)
	}
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestNewLoginAttemptsRequiresAddr(t *testing.T) {
	if _, err := NewLoginAttempts(logger.NewNop(), Config{}); err == nil {
		t.Fatalf("expected missing addr error")
	}
}
