package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type CourseInput struct {
	Code       string
	Title      string
	Image      string
	University string
}

type CourseService interface {
	List(ctx context.Context) ([]*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	Create(ctx context.Context, in CourseInput) (domain.InsertResult, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCourseService(log *logger.Logger, courseRepo repos.CourseRepo) CourseService {
	return &courseService{log: log.With("service", "CourseService"), courseRepo: courseRepo}
}

func CourseLink(code string) string {
	return "/courses/" + code
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *courseService) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	course, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrNotFound
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, in CourseInput) (domain.InsertResult, error) {
	course := &domain.Course{
		Code:       in.Code,
		Title:      in.Title,
		Image:      in.Image,
		University: in.University,
		Link:       CourseLink(in.Code),
		Details:    bson.M{},
	}
	res, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return domain.InsertResult{}, err
	}
	s.log.Info("Course created", "course_id", course.ID.Hex(), "code", course.Code)
	return res, nil
}

func (s *courseService) Patch(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error) {
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
	if err := validateCoursePatch(set); err != nil {
		return domain.UpdateResult{}, err
	}
	// A renamed course keeps its public link in step unless one was supplied.
	if code, ok := set["code"].(string); ok && code != "" {
		if _, hasLink := set["link"]; !hasLink {
			set["link"] = CourseLink(code)
		}
	}
	res, err := s.courseRepo.Update(ctx, oid, set)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update course: %w", err)
	}
	return res, nil
}

// courseStringFields are the Course fields stored as plain strings.
var courseStringFields = map[string]bool{
	"code":       true,
	"title":      true,
	"image":      true,
	"university": true,
	"link":       true,
}

// validateCoursePatch rejects any $set path that would leave a course the
// Course struct cannot decode. Only details accepts nested paths.
func validateCoursePatch(set bson.M) error {
	var unknown, invalid []string
	for path, v := range set {
		top, _, nested := strings.Cut(path, ".")
		switch {
		case courseStringFields[top]:
			if _, ok := v.(string); nested || !ok {
				invalid = append(invalid, path)
			}
		case top == "details":
			if nested {
				continue
			}
			if _, ok := asMap(v); !ok {
				invalid = append(invalid, path)
			}
		default:
			unknown = append(unknown, path)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Reason: "unknown course fields", Fields: unknown}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &ValidationError{Reason: "invalid course field types", Fields: invalid}
	}
	return nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := s.courseRepo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount != 1 {
		return ErrNotFound
	}
	return nil
}
