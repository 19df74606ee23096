package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type CourseRepo interface {
	// List returns every course, newest first.
	List(ctx context.Context) ([]*domain.Course, error)
	// GetByCode returns nil, nil when the code is unknown.
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (domain.InsertResult, error)
	// Update applies set as a $set document; dotted keys address nested fields.
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type courseRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewCourseRepo(db *mongo.Database, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{coll: db.Collection(domain.CollectionCourses), log: repoLog}
}

func (r *courseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	results := []*domain.Course{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	var out domain.Course
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		return domain.InsertResult{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return insertResult(res), nil
}

func (r *courseRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *courseRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
