package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http"
	httpH "github.com/yungbote/portfolio-backend/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Course   *httpH.CourseHandler
	File     *httpH.FileHandler
	Profile  *httpH.ProfileHandler
	Research *httpH.ResearchHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services, storage httpH.StoragePinger, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(cfg.SiteName, storage),
		Auth:     httpH.NewAuthHandler(log, services.Auth, metrics),
		Course:   httpH.NewCourseHandler(log, services.Course),
		File:     httpH.NewFileHandler(log, services.File),
		Profile:  httpH.NewProfileHandler(log, services.Profile),
		Research: httpH.NewResearchHandler(log, services.Research),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:                log,
		AllowedOrigins:     cfg.AllowedOrigins,
		FilesRequireAuth:   cfg.FilesRequireAuth,
		MaxMultipartMemory: cfg.MaxMultipartMemory,
		Metrics:            metrics,
		TracingEnabled:     cfg.Otel.Enabled,
		ServiceName:        cfg.Otel.ServiceName,
		AuthMiddleware:     middleware.Auth,
		HealthHandler:      handlers.Health,
		AuthHandler:        handlers.Auth,
		CourseHandler:      handlers.Course,
		FileHandler:        handlers.File,
		ProfileHandler:     handlers.Profile,
		ResearchHandler:    handlers.Research,
	})
}
