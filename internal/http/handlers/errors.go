package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// respondServiceError maps a service failure onto the {message, error} body.
// op completes the "Failed to ..." message used for storage and relay errors.
func respondServiceError(c *gin.Context, log *logger.Logger, op string, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrInvalidID):
		response.RespondError(c, http.StatusBadRequest, "Invalid id", err)
	case errors.As(err, &verr):
		response.RespondMessage(c, http.StatusBadRequest, verr.Error())
	default:
		status := apierr.StatusOf(err, http.StatusInternalServerError)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", "op", op, "path", c.FullPath(), "error", err)
		}
		_ = c.Error(err)
		response.RespondError(c, status, "Failed to "+op, err)
	}
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}
