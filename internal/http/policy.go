package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Capability string

const (
	CapabilityPublic Capability = "public"
	CapabilityAdmin  Capability = "admin"
)

// Route is one entry of the authorization policy. Every admin route runs
// behind the bearer gate.
type Route struct {
	Method     string
	Path       string
	Capability Capability
	Handler    gin.HandlerFunc
}

// Routes is the full API surface. FilesRequireAuth moves the file mutations
// behind the bearer gate; the file listing stays public either way.
func (cfg RouterConfig) Routes() []Route {
	fileWrite := CapabilityPublic
	if cfg.FilesRequireAuth {
		fileWrite = CapabilityAdmin
	}
	return []Route{
		{http.MethodGet, "/", CapabilityPublic, cfg.HealthHandler.Root},
		{http.MethodGet, "/health", CapabilityPublic, cfg.HealthHandler.HealthCheck},
		{http.MethodPost, "/login", CapabilityPublic, cfg.AuthHandler.Login},

		{http.MethodGet, "/courses", CapabilityPublic, cfg.CourseHandler.List},
		{http.MethodGet, "/courses/:code", CapabilityPublic, cfg.CourseHandler.GetByCode},
		{http.MethodPost, "/courses", CapabilityAdmin, cfg.CourseHandler.Create},
		{http.MethodPut, "/courses/:id", CapabilityAdmin, cfg.CourseHandler.Update},
		{http.MethodDelete, "/courses/:id", CapabilityAdmin, cfg.CourseHandler.Delete},

		{http.MethodGet, "/files", CapabilityPublic, cfg.FileHandler.List},
		{http.MethodPost, "/files", fileWrite, cfg.FileHandler.Create},
		{http.MethodPut, "/files/:id", fileWrite, cfg.FileHandler.Update},
		{http.MethodDelete, "/files/:id", fileWrite, cfg.FileHandler.Delete},

		{http.MethodGet, "/profile", CapabilityPublic, cfg.ProfileHandler.Get},
		{http.MethodPut, "/profile", CapabilityAdmin, cfg.ProfileHandler.Update},

		{http.MethodGet, "/research", CapabilityPublic, cfg.ResearchHandler.List},
		{http.MethodPost, "/research", CapabilityAdmin, cfg.ResearchHandler.Create},
		{http.MethodPut, "/research/:id", CapabilityAdmin, cfg.ResearchHandler.Update},
		{http.MethodDelete, "/research/:id", CapabilityAdmin, cfg.ResearchHandler.Delete},
	}
}
