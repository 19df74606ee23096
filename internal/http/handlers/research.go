package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type ResearchHandler struct {
	log             *logger.Logger
	researchService services.ResearchService
}

func NewResearchHandler(log *logger.Logger, researchService services.ResearchService) *ResearchHandler {
	return &ResearchHandler{log: log.With("handler", "ResearchHandler"), researchService: researchService}
}

func (h *ResearchHandler) List(c *gin.Context) {
	items, err := h.researchService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "fetch research", err)
		return
	}
	response.RespondOK(c, items)
}

func (h *ResearchHandler) Create(c *gin.Context) {
	var doc map[string]interface{}
	if !bindBody(c, &doc) {
		return
	}
	res, err := h.researchService.Create(c.Request.Context(), doc)
	if err != nil {
		respondServiceError(c, h.log, "add research item", err)
		return
	}
	response.RespondCreated(c, res)
}

func (h *ResearchHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if !bindBody(c, &fields) {
		return
	}
	res, err := h.researchService.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondServiceError(c, h.log, "update research item", err)
		return
	}
	response.RespondOK(c, res)
}

func (h *ResearchHandler) Delete(c *gin.Context) {
	res, err := h.researchService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "delete research item", err)
		return
	}
	response.RespondOK(c, res)
}
