package services

import (
	"context"
	"time"

	"github.com/yungbote/portfolio-backend/internal/clients/redis"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// LoginLimiter throttles repeated failed logins for one email.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) bool
	Fail(ctx context.Context, email string)
	Succeed(ctx context.Context, email string)
}

type noopLimiter struct{}

func NewNoopLoginLimiter() LoginLimiter { return noopLimiter{} }

func (noopLimiter) Allow(context.Context, string) bool { return true }
func (noopLimiter) Fail(context.Context, string)       {}
func (noopLimiter) Succeed(context.Context, string)    {}

type redisLimiter struct {
	log         *logger.Logger
	attempts    redis.LoginAttempts
	maxAttempts int64
	window      time.Duration
}

// NewRedisLoginLimiter fails open: when redis is unreachable logins are
// allowed and the error is logged. Once the limit is hit even the correct
// password is refused until the window expires.
func NewRedisLoginLimiter(log *logger.Logger, attempts redis.LoginAttempts, maxAttempts int, window time.Duration) LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &redisLimiter{
		log:         log.With("service", "LoginLimiter"),
		attempts:    attempts,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, email string) bool {
	n, err := l.attempts.Failures(ctx, email)
	if err != nil {
		l.log.Warn("Login limiter lookup failed, allowing", "error", err)
		return true
	}
	return n < l.maxAttempts
}

func (l *redisLimiter) Fail(ctx context.Context, email string) {
	if _, err := l.attempts.RecordFailure(ctx, email, l.window); err != nil {
		l.log.Warn("Login limiter record failed", "error", err)
	}
}

func (l *redisLimiter) Succeed(ctx context.Context, email string) {
	if err := l.attempts.Reset(ctx, email); err != nil {
		l.log.Warn("Login limiter reset failed", "error", err)
	}
}
