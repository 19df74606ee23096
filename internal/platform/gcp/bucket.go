package gcp

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type BucketConfig struct {
	Bucket string
	// Folder is the object key prefix uploads land under.
	Folder string
	// PublicBaseURL overrides https://storage.googleapis.com when set.
	PublicBaseURL string
	// EmulatorHost points the client at a fake-gcs style emulator.
	EmulatorHost string
}

// BucketRelay stores uploads as objects in a GCS bucket and returns their
// public URL.
type BucketRelay struct {
	log           *logger.Logger
	client        *storage.Client
	bucket        string
	folder        string
	publicBaseURL string
	newKey        func(filename string) string
}

func NewBucketRelay(ctx context.Context, log *logger.Logger, cfg BucketConfig) (*BucketRelay, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("missing env var GCS_BUCKET")
	}
	client, err := newStorageClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	publicBase := strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if publicBase == "" && cfg.EmulatorHost != "" {
		publicBase = strings.TrimSuffix(emulatorEndpoint(cfg.EmulatorHost), "/storage/v1/")
	}
	relayLog := log.With("relay", "BucketRelay", "bucket", cfg.Bucket)
	relayLog.Info("GCS upload relay initialized", "folder", cfg.Folder, "public_base_url", publicBase)
	return &BucketRelay{
		log:           relayLog,
		client:        client,
		bucket:        cfg.Bucket,
		folder:        strings.Trim(strings.TrimSpace(cfg.Folder), "/"),
		publicBaseURL: publicBase,
		newKey:        uniqueKey,
	}, nil
}

func newStorageClient(ctx context.Context, cfg BucketConfig) (*storage.Client, error) {
	return storage.NewClient(ctx, clientOptions(cfg)...)
}

func clientOptions(cfg BucketConfig) []option.ClientOption {
	if endpoint := emulatorEndpoint(cfg.EmulatorHost); endpoint != "" {
		return []option.ClientOption{option.WithEndpoint(endpoint), option.WithoutAuthentication()}
	}
	opts := ClientOptionsFromEnv()
	return append(opts, option.WithScopes(storage.ScopeReadWrite))
}

// emulatorEndpoint turns an emulator host ("localhost:4443" or a full URL)
// into the JSON API base the storage client expects.
func emulatorEndpoint(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return ""
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return host + "/storage/v1/"
}

func uniqueKey(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return uuid.New().String() + "-" + name
}

func (b *BucketRelay) Name() string { return "gcs" }

func (b *BucketRelay) Upload(ctx context.Context, filename, mimeType string, body io.Reader) (string, error) {
	key := b.objectKey(filename)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := b.client.Bucket(b.bucket).Object(key).NewWriter(ctx)
	w.ContentType = mimeType
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	b.log.Debug("Uploaded object", "key", key)
	return b.PublicURL(key), nil
}

func (b *BucketRelay) objectKey(filename string) string {
	key := b.newKey(filename)
	if b.folder == "" {
		return key
	}
	return b.folder + "/" + key
}

func (b *BucketRelay) PublicURL(key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if b.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", b.publicBaseURL, b.bucket, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucket, key)
}

func (b *BucketRelay) Close() error {
	return b.client.Close()
}
