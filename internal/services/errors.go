package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = apierr.New(http.StatusTooManyRequests, "Too many login attempts", nil)
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
)

// ValidationError reports a request that is well formed but incomplete.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
	}
	return e.Reason
}

// UploadError wraps a failure returned by the external file host.
type UploadError struct {
	Provider string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Err == nil {
		return e.Provider + " upload failed"
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error { return e.Err }
