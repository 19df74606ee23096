package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type FileInput struct {
	Title  string
	Type   string
	Course string
	Link   string
	// Upload, when set, replaces Link with the relay's result.
	Upload *UploadInput
}

type FileService interface {
	List(ctx context.Context, query map[string][]string) ([]*domain.FileRecord, error)
	Create(ctx context.Context, in FileInput) (domain.InsertResult, error)
	Update(ctx context.Context, id string, in FileInput) (domain.UpdateResult, error)
	// Delete removes the metadata record only.
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type fileService struct {
	log            *logger.Logger
	fileRepo       repos.FileRepo
	relay          UploadRelay
	validateFields bool
}

func NewFileService(log *logger.Logger, fileRepo repos.FileRepo, relay UploadRelay, validateFields bool) FileService {
	return &fileService{
		log:            log.With("service", "FileService"),
		fileRepo:       fileRepo,
		relay:          relay,
		validateFields: validateFields,
	}
}

// fileFilter keeps the first value of each queryable field; anything else in
// the query string is ignored.
func fileFilter(query map[string][]string) map[string]string {
	out := map[string]string{}
	for _, field := range domain.FileQueryFields {
		if vals, ok := query[field]; ok && len(vals) > 0 {
			out[field] = vals[0]
		}
	}
	return out
}

func (s *fileService) List(ctx context.Context, query map[string][]string) ([]*domain.FileRecord, error) {
	return s.fileRepo.List(ctx, fileFilter(query))
}

func (s *fileService) Create(ctx context.Context, in FileInput) (domain.InsertResult, error) {
	if s.validateFields {
		if err := validateFileInput(in); err != nil {
			return domain.InsertResult{}, err
		}
	}
	link, err := s.resolveLink(ctx, in)
	if err != nil {
		return domain.InsertResult{}, err
	}
	rec := &domain.FileRecord{
		Title:  in.Title,
		Type:   in.Type,
		Course: in.Course,
		Link:   link,
	}
	res, err := s.fileRepo.Create(ctx, rec)
	if err != nil {
		return domain.InsertResult{}, err
	}
	s.log.Info("File record created", "file_id", rec.ID.Hex(), "course", rec.Course)
	return res, nil
}

func (s *fileService) Update(ctx context.Context, id string, in FileInput) (domain.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	link, err := s.resolveLink(ctx, in)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	set := bson.M{}
	for field, val := range map[string]string{
		"title":  in.Title,
		"type":   in.Type,
		"course": in.Course,
		"link":   link,
	} {
		if strings.TrimSpace(val) != "" {
			set[field] = val
		}
	}
	if len(set) == 0 {
		return domain.UpdateResult{}, &ValidationError{Reason: "no fields to update"}
	}
	res, err := s.fileRepo.Update(ctx, oid, set)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("update file: %w", err)
	}
	return res, nil
}

func (s *fileService) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return s.fileRepo.Delete(ctx, oid)
}

func (s *fileService) resolveLink(ctx context.Context, in FileInput) (string, error) {
	if in.Upload == nil {
		return in.Link, nil
	}
	if s.relay == nil {
		return "", &UploadError{Provider: "none", Err: fmt.Errorf("upload relay is not configured")}
	}
	link, err := s.relay.Upload(ctx, in.Upload.Filename, in.Upload.MimeType, in.Upload.Body)
	if err != nil {
		s.log.Error("Upload relay failed", "provider", s.relay.Name(), "error", err)
		return "", &UploadError{Provider: s.relay.Name(), Err: err}
	}
	return link, nil
}

func validateFileInput(in FileInput) error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.Course) == "" {
		missing = append(missing, "course")
	}
	if in.Upload == nil && strings.TrimSpace(in.Link) == "" {
		missing = append(missing, "link")
	}
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing required fields", Fields: missing}
	}
	return nil
}
