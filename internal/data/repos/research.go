package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type ResearchRepo interface {
	List(ctx context.Context) ([]domain.ResearchItem, error)
	Create(ctx context.Context, item domain.ResearchItem) (domain.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type researchRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewResearchRepo(db *mongo.Database, baseLog *logger.Logger) ResearchRepo {
	repoLog := baseLog.With("repo", "ResearchRepo")
	return &researchRepo{coll: db.Collection(domain.CollectionResearch), log: repoLog}
}

func (r *researchRepo) List(ctx context.Context) ([]domain.ResearchItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	results := []domain.ResearchItem{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *researchRepo) Create(ctx context.Context, item domain.ResearchItem) (domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *researchRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *researchRepo) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *researchRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
