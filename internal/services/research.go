package services

import (
	"context"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type ResearchService interface {
	List(ctx context.Context) ([]domain.ResearchItem, error)
	Create(ctx context.Context, doc map[string]interface{}) (domain.InsertResult, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type researchService struct {
	log          *logger.Logger
	researchRepo repos.ResearchRepo
}

func NewResearchService(log *logger.Logger, researchRepo repos.ResearchRepo) ResearchService {
	return &researchService{log: log.With("service", "ResearchService"), researchRepo: researchRepo}
}

func (s *researchService) List(ctx context.Context) ([]domain.ResearchItem, error) {
	return s.researchRepo.List(ctx)
}

func (s *researchService) Create(ctx context.Context, doc map[string]interface{}) (domain.InsertResult, error) {
	item := stripID(doc)
	if len(item) == 0 {
		return domain.InsertResult{}, &ValidationError{Reason: "research item is empty"}
	}
	return s.researchRepo.Create(ctx, item)
}

func (s *researchService) Patch(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	set, err := flattenPatch(fields)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if len(set) == 0 {
		return domain.UpdateResult{}, &ValidationError{Reason: "no fields to update"}
	}
	res, err := s.researchRepo.Update(ctx, oid, set)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update research item: %w", err)
	}
	return res, nil
}

func (s *researchService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return s.researchRepo.Delete(ctx, oid)
}
