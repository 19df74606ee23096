package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// DB returns a throwaway database on the integration Mongo instance. It is
// dropped when the test finishes.
func DB(tb testing.TB) *mongo.Database {
	tb.Helper()
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("PB_RUN_MONGO_INTEGRATION")), "true") {
		tb.Skip("set PB_RUN_MONGO_INTEGRATION=true and PB_MONGO_URI to run repo integration tests")
	}
	uri := strings.TrimSpace(os.Getenv("PB_MONGO_URI"))
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}

	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		opts := options.Client().
			ApplyURI(uri).
			SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
		client, clientErr = mongo.Connect(ctx, opts)
		if clientErr != nil {
			return
		}
		clientErr = client.Ping(ctx, nil)
	})
	if clientErr != nil {
		tb.Fatalf("failed to init test mongo: %v", clientErr)
	}

	db := client.Database(fmt.Sprintf("pb_it_%d", time.Now().UnixNano()))
	tb.Cleanup(func() {
		_ = db.Drop(context.Background())
	})
	return db
}
