package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type FileRepo interface {
	// List returns records whose fields equal every entry in filter.
	List(ctx context.Context, filter map[string]string) ([]*domain.FileRecord, error)
	Create(ctx context.Context, file *domain.FileRecord) (domain.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

type fileRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewFileRepo(db *mongo.Database, baseLog *logger.Logger) FileRepo {
	repoLog := baseLog.With("repo", "FileRepo")
	return &fileRepo{coll: db.Collection(domain.CollectionFiles), log: repoLog}
}

func (r *fileRepo) List(ctx context.Context, filter map[string]string) ([]*domain.FileRecord, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}
	cur, err := r.coll.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	results := []*domain.FileRecord{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *fileRepo) Create(ctx context.Context, file *domain.FileRecord) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, file)
	if err != nil {
		return domain.InsertResult{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		file.ID = oid
	}
	return insertResult(res), nil
}

func (r *fileRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *fileRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return deleteResult(res), nil
}
