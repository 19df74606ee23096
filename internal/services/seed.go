package services

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// SeedData is the optional first-boot content set loaded from SEED_FILE.
type SeedData struct {
	Courses  []SeedCourse            `yaml:"courses"`
	Research []map[string]interface{} `yaml:"research"`
	Profile  map[string]interface{}   `yaml:"profile"`
}

type SeedCourse struct {
	Code       string                 `yaml:"code"`
	Title      string                 `yaml:"title"`
	Image      string                 `yaml:"image"`
	University string                 `yaml:"university"`
	Link       string                 `yaml:"link"`
	Details    map[string]interface{} `yaml:"details"`
}

type SeedReport struct {
	Courses  int
	Research int
	Profile  bool
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, c := range data.Courses {
		if c.Code == "" {
			return nil, fmt.Errorf("seed course %d has no code", i)
		}
	}
	return &data, nil
}

type SeedService interface {
	// Seed fills each collection from data only when that collection is empty.
	Seed(ctx context.Context, data *SeedData) (SeedReport, error)
}

type seedService struct {
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	researchRepo repos.ResearchRepo
	profileRepo  repos.ProfileRepo
}

func NewSeedService(log *logger.Logger, courseRepo repos.CourseRepo, researchRepo repos.ResearchRepo, profileRepo repos.ProfileRepo) SeedService {
	return &seedService{
		log:          log.With("service", "SeedService"),
		courseRepo:   courseRepo,
		researchRepo: researchRepo,
		profileRepo:  profileRepo,
	}
}

func (s *seedService) Seed(ctx context.Context, data *SeedData) (SeedReport, error) {
	var report SeedReport
	if data == nil {
		return report, nil
	}

	if len(data.Courses) > 0 {
		n, err := s.courseRepo.Count(ctx)
		if err != nil {
			return report, fmt.Errorf("count courses: %w", err)
		}
		if n == 0 {
			for _, c := range data.Courses {
				course := &domain.Course{
					Code:       c.Code,
					Title:      c.Title,
					Image:      c.Image,
					University: c.University,
					Link:       c.Link,
					Details:    bson.M(c.Details),
				}
				if course.Link == "" {
					course.Link = CourseLink(c.Code)
				}
				if course.Details == nil {
					course.Details = bson.M{}
				}
				if _, err := s.courseRepo.Create(ctx, course); err != nil {
					return report, fmt.Errorf("seed course %s: %w", c.Code, err)
				}
				report.Courses++
			}
		}
	}

	if len(data.Research) > 0 {
		n, err := s.researchRepo.Count(ctx)
		if err != nil {
			return report, fmt.Errorf("count research: %w", err)
		}
		if n == 0 {
			for _, item := range data.Research {
				if _, err := s.researchRepo.Create(ctx, stripID(item)); err != nil {
					return report, fmt.Errorf("seed research item: %w", err)
				}
				report.Research++
			}
		}
	}

	if len(data.Profile) > 0 {
		n, err := s.profileRepo.Count(ctx)
		if err != nil {
			return report, fmt.Errorf("count profile: %w", err)
		}
		if n == 0 {
			if _, err := s.profileRepo.Set(ctx, stripID(data.Profile), true); err != nil {
				return report, fmt.Errorf("seed profile: %w", err)
			}
			report.Profile = true
		}
	}

	s.log.Info("Seed data applied", "courses", report.Courses, "research", report.Research, "profile", report.Profile)
	return report, nil
}
