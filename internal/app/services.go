package app

import (
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Course   services.CourseService
	File     services.FileService
	Profile  services.ProfileService
	Research services.ResearchService
	Seed     services.SeedService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	limiter := services.NewNoopLoginLimiter()
	if clients.LoginAttempts != nil {
		limiter = services.NewRedisLoginLimiter(log, clients.LoginAttempts, cfg.LoginMaxAttempts, cfg.LoginWindow)
	}
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	return Services{
		Auth:     services.NewAuthService(log, reposet.Account, tokens, limiter),
		Course:   services.NewCourseService(log, reposet.Course),
		File:     services.NewFileService(log, reposet.File, instrumentRelay(clients.Relay, metrics), cfg.FilesValidateFields),
		Profile:  services.NewProfileService(log, reposet.Profile, cfg.ProfileUpsert),
		Research: services.NewResearchService(log, reposet.Research),
		Seed:     services.NewSeedService(log, reposet.Course, reposet.Research, reposet.Profile),
	}
}
