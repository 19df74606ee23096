package app

import (
	"context"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/clients/redis"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/mongodb"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type Clients struct {
	Mongo         *mongodb.Client
	Relay         services.UploadRelay
	LoginAttempts redis.LoginAttempts
}

// wireClients fails only on configuration errors. An unreachable database,
// relay or redis is logged and the server comes up degraded.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	mongoClient, err := mongodb.Connect(ctx, log, mongodb.Config{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDatabase,
		ConnectTimeout: cfg.MongoConnectTimeout,
	})
	if mongoClient == nil {
		return Clients{}, fmt.Errorf("init mongo: %w", err)
	}
	if err != nil {
		log.Error("Database connection failed", "error", err)
	}
	out.Mongo = mongoClient

	relay, err := resolveUploadRelay(ctx, log, cfg)
	if err != nil {
		log.Warn("Uploads disabled until the relay is configured", "error", err)
	}
	out.Relay = relay

	if cfg.RedisAddr != "" {
		attempts, err := redis.NewLoginAttempts(log, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Warn("Login throttle disabled", "error", err)
		} else {
			out.LoginAttempts = attempts
		}
	}
	return out, nil
}

func (c Clients) Close(ctx context.Context, log *logger.Logger) {
	if c.LoginAttempts != nil {
		if err := c.LoginAttempts.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if closer, ok := c.Relay.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn("upload relay close failed", "error", err)
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil {
			log.Warn("mongo disconnect failed", "error", err)
		}
	}
}
