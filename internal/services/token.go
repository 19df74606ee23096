package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(email string) (string, error)
	Verify(tokenString string) (*JWTClaims, error)
	TTL() time.Duration
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return NewTokenServiceWithClock(secret, ttl, time.Now)
}

// NewTokenServiceWithClock lets tests move time past the expiry boundary.
func NewTokenServiceWithClock(secret string, ttl time.Duration, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{secret: []byte(secret), ttl: ttl, now: now}
}

func (ts *tokenService) Issue(email string) (string, error) {
	now := ts.now()
	claims := JWTClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

func (ts *tokenService) Verify(tokenString string) (*JWTClaims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&JWTClaims{},
		func(token *jwt.Token) (interface{}, error) { return ts.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (ts *tokenService) TTL() time.Duration {
	return ts.ttl
}
