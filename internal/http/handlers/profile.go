package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type ProfileHandler struct {
	log            *logger.Logger
	profileService services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{log: log.With("handler", "ProfileHandler"), profileService: profileService}
}

// Get writes the profile document, or null before one exists.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "fetch profile", err)
		return
	}
	response.RespondOK(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if !bindBody(c, &fields) {
		return
	}
	res, err := h.profileService.Update(c.Request.Context(), fields)
	if err != nil {
		respondServiceError(c, h.log, "update profile", err)
		return
	}
	response.RespondOK(c, res)
}
