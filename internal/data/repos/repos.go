package repos

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yungbote/portfolio-backend/internal/domain"
)

func insertResult(res *mongo.InsertOneResult) domain.InsertResult {
	if res == nil {
		return domain.InsertResult{}
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) domain.UpdateResult {
	if res == nil {
		return domain.UpdateResult{}
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) domain.DeleteResult {
	if res == nil {
		return domain.DeleteResult{}
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
