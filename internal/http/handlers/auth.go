package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
	metrics     *observability.Metrics
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService, metrics: metrics}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		ah.metrics.IncLogin("invalid")
		response.RespondMessage(c, http.StatusBadRequest, "Invalid credentials")
		return
	}
	token, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		ah.metrics.IncLogin("success")
		response.RespondOK(c, gin.H{"message": "Login successful", "token": token})
	case errors.Is(err, services.ErrInvalidCredentials):
		ah.metrics.IncLogin("invalid")
		response.RespondMessage(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrTooManyAttempts):
		ah.metrics.IncLogin("throttled")
		response.RespondMessage(c, http.StatusTooManyRequests, "Too many login attempts")
	default:
		ah.metrics.IncLogin("error")
		ah.log.Error("Login failed", "error", err)
		response.RespondMessage(c, http.StatusInternalServerError, "Server error during login.")
	}
}
