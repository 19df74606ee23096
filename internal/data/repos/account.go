package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type AccountRepo interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, account *domain.Account) error
	// GetByEmail returns nil, nil when no account matches.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type accountRepo struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewAccountRepo(db *mongo.Database, baseLog *logger.Logger) AccountRepo {
	repoLog := baseLog.With("repo", "AccountRepo")
	return &accountRepo{coll: db.Collection(domain.CollectionUsers), log: repoLog}
}

func (r *accountRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	res, err := r.coll.InsertOne(ctx, account)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var out domain.Account
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
