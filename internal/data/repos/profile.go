package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// ProfileRepo stores the site owner's profile. The collection is expected to
// hold one document; reads and writes always target the first match.
type ProfileRepo interface {
	// Get returns nil, nil when no profile exists yet.
	Get(ctx context.Context) (domain.Profile, error)
	Set(ctx context.Context, set bson.M, upsert bool) (domain.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type profileRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewProfileRepo(db *mongo.Database, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{coll: db.Collection(domain.CollectionProfile), log: repoLog}
}

func (r *profileRepo) Get(ctx context.Context) (domain.Profile, error) {
	var out bson.M
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) Set(ctx context.Context, set bson.M, upsert bool) (domain.UpdateResult, error) {
	opts := options.Update().SetUpsert(upsert)
	res, err := r.coll.UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, opts)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func (r *profileRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
