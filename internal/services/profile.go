package services

import (
	"context"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type ProfileService interface {
	Get(ctx context.Context) (domain.Profile, error)
	Update(ctx context.Context, fields map[string]interface{}) (domain.UpdateResult, error)
}

type profileService struct {
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	upsert      bool
}

// NewProfileService: with upsert off, updating before a profile exists
// matches nothing and stores nothing.
func NewProfileService(log *logger.Logger, profileRepo repos.ProfileRepo, upsert bool) ProfileService {
	return &profileService{log: log.With("service", "ProfileService"), profileRepo: profileRepo, upsert: upsert}
}

func (s *profileService) Get(ctx context.Context) (domain.Profile, error) {
	return s.profileRepo.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, fields map[string]interface{}) (domain.UpdateResult, error) {
	set, err := flattenPatch(fields)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if len(set) == 0 {
		return domain.UpdateResult{}, &ValidationError{Reason: "no fields to update"}
	}
	res, err := s.profileRepo.Set(ctx, set, s.upsert)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update profile: %w", err)
	}
	return res, nil
}
