package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// AuthEmailKey is the gin context key holding the verified email claim.
const AuthEmailKey = "auth.email"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			response.RespondMessage(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}
		claims, err := am.authService.VerifyToken(tokenString)
		if err != nil {
			am.log.Debug("Token rejected", "path", c.FullPath(), "error", err)
			response.RespondMessage(c, http.StatusBadRequest, "Invalid token.")
			c.Abort()
			return
		}
		ctx := ctxutil.WithAuthData(c.Request.Context(), &ctxutil.AuthData{Email: claims.Email})
		c.Request = c.Request.WithContext(ctx)
		c.Set(AuthEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
