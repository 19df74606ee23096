package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

const passwordHashCost = 10

type AuthService interface {
	// Login returns a signed bearer token for a stored account.
	Login(ctx context.Context, email, password string) (string, error)
	// EnsureAdmin inserts the configured admin when the users collection is
	// empty. It reports whether an account was created.
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
	VerifyToken(tokenString string) (*JWTClaims, error)
}

type authService struct {
	log         *logger.Logger
	accountRepo repos.AccountRepo
	tokens      TokenService
	limiter     LoginLimiter
}

func NewAuthService(log *logger.Logger, accountRepo repos.AccountRepo, tokens TokenService, limiter LoginLimiter) AuthService {
	if limiter == nil {
		limiter = NewNoopLoginLimiter()
	}
	return &authService{
		log:         log.With("service", "AuthService"),
		accountRepo: accountRepo,
		tokens:      tokens,
		limiter:     limiter,
	}
}

func (as *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !as.limiter.Allow(ctx, email) {
		return "", ErrTooManyAttempts
	}
	account, err := as.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup account: %w", err)
	}
	if account == nil {
		as.limiter.Fail(ctx, email)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		as.limiter.Fail(ctx, email)
		return "", ErrInvalidCredentials
	}
	token, err := as.tokens.Issue(account.Email)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	as.limiter.Succeed(ctx, email)
	return token, nil
}

func (as *authService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	n, err := as.accountRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return false, fmt.Errorf("admin seed credentials are not configured (USER_EMAIL, USER_PASSWORD)")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if err := as.accountRepo.Create(ctx, &domain.Account{Email: email, Password: string(digest)}); err != nil {
		return false, fmt.Errorf("create admin account: %w", err)
	}
	as.log.Info("Initial user created")
	return true, nil
}

func (as *authService) VerifyToken(tokenString string) (*JWTClaims, error) {
	return as.tokens.Verify(tokenString)
}
