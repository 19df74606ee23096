package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

const loginAttemptsPrefix = "login:fail:"

// LoginAttempts counts failed logins per identifier inside a fixed window.
type LoginAttempts interface {
	Failures(ctx context.Context, id string) (int64, error)
	RecordFailure(ctx context.Context, id string, window time.Duration) (int64, error)
	Reset(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

type loginAttempts struct {
	log *logger.Logger
	rdb *goredis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

func NewLoginAttempts(log *logger.Logger, cfg Config) (LoginAttempts, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewLoginAttemptsWithClient(log, rdb), nil
}

func NewLoginAttemptsWithClient(log *logger.Logger, rdb *goredis.Client) LoginAttempts {
	return &loginAttempts{log: log.With("client", "RedisLoginAttempts"), rdb: rdb}
}

func key(id string) string {
	return loginAttemptsPrefix + strings.ToLower(strings.TrimSpace(id))
}

func (a *loginAttempts) Failures(ctx context.Context, id string) (int64, error) {
	n, err := a.rdb.Get(ctx, key(id)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return n, err
}

func (a *loginAttempts) RecordFailure(ctx context.Context, id string, window time.Duration) (int64, error) {
	k := key(id)
	n, err := a.rdb.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	// The window starts at the first failure and is not extended.
	if n == 1 {
		if err := a.rdb.Expire(ctx, k, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (a *loginAttempts) Reset(ctx context.Context, id string) error {
	return a.rdb.Del(ctx, key(id)).Err()
}

func (a *loginAttempts) Ping(ctx context.Context) error {
	return a.rdb.Ping(ctx).Err()
}

func (a *loginAttempts) Close() error {
	return a.rdb.Close()
}
