package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yungbote/portfolio-backend/internal/domain"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts []*domain.Account
	countErr error
}

func (r *fakeAccountRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.accounts)), nil
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = primitive.NewObjectID()
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakeCourseRepo struct {
	courses []*domain.Course
	updates int
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	out := make([]*domain.Course, 0, len(r.courses))
	for i := len(r.courses) - 1; i >= 0; i-- {
		out = append(out, r.courses[i])
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	for _, c := range r.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *domain.Course) (domain.InsertResult, error) {
	course.ID = primitive.NewObjectID()
	r.courses = append(r.courses, course)
	return domain.InsertResult{Acknowledged: true, InsertedID: course.ID}, nil
}

// errUnstorableCourse mirrors a $set the courses collection would accept but
// a later Course decode would fail on, or silently drop.
var errUnstorableCourse = errors.New("course document would not decode")

func (r *fakeCourseRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	r.updates++
	for _, c := range r.courses {
		if c.ID != id {
			continue
		}
		next := *c
		next.Details = bson.M{}
		for k, v := range c.Details {
			next.Details[k] = v
		}
		for path, v := range set {
			if strings.HasPrefix(path, "details.") {
				setPath(next.Details, strings.TrimPrefix(path, "details."), v)
				continue
			}
			if path == "details" {
				m, ok := asMap(v)
				if !ok {
					return domain.UpdateResult{}, fmt.Errorf("%w: details=%T", errUnstorableCourse, v)
				}
				next.Details = bson.M(m)
				continue
			}
			str, ok := v.(string)
			if !ok {
				return domain.UpdateResult{}, fmt.Errorf("%w: %s=%T", errUnstorableCourse, path, v)
			}
			switch path {
			case "code":
				next.Code = str
			case "title":
				next.Title = str
			case "image":
				next.Image = str
			case "university":
				next.University = str
			case "link":
				next.Link = str
			default:
				return domain.UpdateResult{}, fmt.Errorf("%w: unknown path %s", errUnstorableCourse, path)
			}
		}
		*c = next
		return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return domain.UpdateResult{Acknowledged: true}, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	for i, c := range r.courses {
		if c.ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

func (r *fakeCourseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.courses)), nil
}

// setPath mirrors $set on a dotted path.
func setPath(doc bson.M, path string, v interface{}) {
	parts := strings.Split(path, ".")
	cur := doc
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(bson.M)
		if !ok {
			next = bson.M{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}

type fakeFileRepo struct {
	files      []*domain.FileRecord
	lastFilter map[string]string
	lastSet    bson.M
}

func (r *fakeFileRepo) List(ctx context.Context, filter map[string]string) ([]*domain.FileRecord, error) {
	r.lastFilter = filter
	var out []*domain.FileRecord
	for _, f := range r.files {
		fields := map[string]string{"title": f.Title, "type": f.Type, "course": f.Course, "link": f.Link}
		match := true
		for k, v := range filter {
			if fields[k] != v {
				match = false
			}
		}
		if match {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFileRepo) Create(ctx context.Context, file *domain.FileRecord) (domain.InsertResult, error) {
	file.ID = primitive.NewObjectID()
	r.files = append(r.files, file)
	return domain.InsertResult{Acknowledged: true, InsertedID: file.ID}, nil
}

func (r *fakeFileRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	r.lastSet = set
	for _, f := range r.files {
		if f.ID == id {
			return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	for i, f := range r.files {
		if f.ID == id {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

type fakeProfileRepo struct {
	doc bson.M
}

func (r *fakeProfileRepo) Get(ctx context.Context) (domain.Profile, error) {
	return r.doc, nil
}

func (r *fakeProfileRepo) Set(ctx context.Context, set bson.M, upsert bool) (domain.UpdateResult, error) {
	if r.doc == nil {
		if !upsert {
			return domain.UpdateResult{Acknowledged: true}, nil
		}
		r.doc = bson.M{"_id": primitive.NewObjectID()}
		for k, v := range set {
			setPath(r.doc, k, v)
		}
		return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: r.doc["_id"]}, nil
	}
	for k, v := range set {
		setPath(r.doc, k, v)
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeProfileRepo) Count(ctx context.Context) (int64, error) {
	if r.doc == nil {
		return 0, nil
	}
	return 1, nil
}

type fakeResearchRepo struct {
	items []domain.ResearchItem
}

func (r *fakeResearchRepo) List(ctx context.Context) ([]domain.ResearchItem, error) {
	return r.items, nil
}

func (r *fakeResearchRepo) Create(ctx context.Context, item domain.ResearchItem) (domain.InsertResult, error) {
	id := primitive.NewObjectID()
	item["_id"] = id
	r.items = append(r.items, item)
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *fakeResearchRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	for _, it := range r.items {
		if it["_id"] == id {
			for k, v := range set {
				setPath(it, k, v)
			}
			return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, nil
}

func (r *fakeResearchRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	for i, it := range r.items {
		if it["_id"] == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

func (r *fakeResearchRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeRelay struct {
	link  string
	err   error
	calls int
	body  string
}

func (r *fakeRelay) Name() string { return "fake" }

func (r *fakeRelay) Upload(ctx context.Context, filename, mimeType string, body io.Reader) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	r.body = string(raw)
	return r.link, nil
}

var errQuota = errors.New("storage quota exceeded")
