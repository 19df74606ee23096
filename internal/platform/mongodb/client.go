package mongodb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// URIFromParts builds an Atlas SRV connection string from credentials and a
// cluster host.
func URIFromParts(user, pass, host, appName string) string {
	if strings.TrimSpace(host) == "" {
		return ""
	}
	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if appName != "" {
		q.Set("appName", appName)
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     host,
		Path:     "/",
		RawQuery: q.Encode(),
	}
	if user != "" {
		u.User = url.UserPassword(user, pass)
	}
	return u.String()
}

type Client struct {
	log    *logger.Logger
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the driver client and pings once. A bad URI is returned as an
// error; a failed ping is returned alongside a usable *Client so callers can
// keep serving and report the outage on /health.
func Connect(ctx context.Context, log *logger.Logger, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, fmt.Errorf("mongo uri is empty")
	}
	if strings.TrimSpace(cfg.Database) == "" {
		return nil, fmt.Errorf("mongo database name is empty")
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	c := &Client{
		log:    log.With("client", "MongoClient", "database", cfg.Database),
		client: mc,
		db:     mc.Database(cfg.Database),
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		return c, fmt.Errorf("mongo ping: %w", err)
	}
	c.log.Info("Connected to MongoDB")
	return c, nil
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Disconnect(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
