package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StoragePinger reports whether the document store answers.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	siteName string
	storage  StoragePinger
}

func NewHealthHandler(siteName string, storage StoragePinger) *HealthHandler {
	return &HealthHandler{siteName: siteName, storage: storage}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to %s Server", h.siteName)
}

// HealthCheck always answers 200; storage state is reported in the body.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	body := gin.H{"status": "ok", "storage": "connected"}
	if h.storage == nil {
		body["storage"] = "disconnected"
		body["error"] = "storage not configured"
		c.JSON(http.StatusOK, body)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.storage.Ping(ctx); err != nil {
		body["storage"] = "disconnected"
		body["error"] = err.Error()
	}
	c.JSON(http.StatusOK, body)
}
