package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/yungbote/portfolio-backend/internal/platform/gcp"
	"github.com/yungbote/portfolio-backend/internal/platform/gdrive"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

var (
	newDriveRelay = func(ctx context.Context, log *logger.Logger, cfg gdrive.Config) (services.UploadRelay, error) {
		return gdrive.New(ctx, log, cfg)
	}
	newBucketRelay = func(ctx context.Context, log *logger.Logger, cfg gcp.BucketConfig) (services.UploadRelay, error) {
		return gcp.NewBucketRelay(ctx, log, cfg)
	}
)

type UploadProviderBootstrapErrorCode string

const (
	UploadProviderBootstrapErrorInvalidProvider UploadProviderBootstrapErrorCode = "invalid_provider"
	UploadProviderBootstrapErrorMissingConfig   UploadProviderBootstrapErrorCode = "missing_config"
	UploadProviderBootstrapErrorConnectFailed   UploadProviderBootstrapErrorCode = "connect_failed"
)

type UploadProviderBootstrapError struct {
	Code     UploadProviderBootstrapErrorCode
	Provider string
	Cause    error
}

func (e *UploadProviderBootstrapError) Error() string {
	if e == nil {
		return "upload relay bootstrap failed"
	}
	return fmt.Sprintf("upload relay bootstrap failed (code=%s provider=%q): %v", e.Code, e.Provider, e.Cause)
}

func (e *UploadProviderBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// errMissingRelayConfig marks a relay constructor failure caused by absent
// settings rather than an unreachable provider.
var errMissingRelayConfig = errors.New("missing relay config")

func resolveUploadRelay(ctx context.Context, log *logger.Logger, cfg Config) (services.UploadRelay, error) {
	log.Info("Selecting upload relay", "provider", cfg.UploadProvider)

	var (
		relay services.UploadRelay
		err   error
	)
	switch cfg.UploadProvider {
	case UploadProviderDrive:
		if cfg.Drive.RefreshToken == "" || cfg.Drive.ClientID == "" || cfg.Drive.FolderID == "" {
			err = fmt.Errorf("%w: drive needs GOOGLE_CLIENT_ID, GOOGLE_REFRESH_TOKEN and GOOGLE_DRIVE_FOLDER_ID", errMissingRelayConfig)
			break
		}
		relay, err = newDriveRelay(ctx, log, cfg.Drive)
	case UploadProviderGCS:
		if cfg.Bucket.Bucket == "" {
			err = fmt.Errorf("%w: gcs needs GCS_BUCKET", errMissingRelayConfig)
			break
		}
		relay, err = newBucketRelay(ctx, log, cfg.Bucket)
	default:
		bootstrapErr := &UploadProviderBootstrapError{
			Code:     UploadProviderBootstrapErrorInvalidProvider,
			Provider: cfg.UploadProvider,
			Cause:    fmt.Errorf("unsupported upload provider %q", cfg.UploadProvider),
		}
		log.Error("Upload relay selection failed", "provider", cfg.UploadProvider, "error_code", bootstrapErr.Code, "error", bootstrapErr)
		return nil, bootstrapErr
	}
	if err != nil {
		classified := classifyUploadProviderBootstrapError(cfg.UploadProvider, err)
		log.Error("Upload relay bootstrap failed", "provider", cfg.UploadProvider, "error_code", classified.Code, "error", classified)
		return nil, classified
	}
	return relay, nil
}

func classifyUploadProviderBootstrapError(provider string, err error) *UploadProviderBootstrapError {
	code := UploadProviderBootstrapErrorConnectFailed
	if errors.Is(err, errMissingRelayConfig) {
		code = UploadProviderBootstrapErrorMissingConfig
	}
	return &UploadProviderBootstrapError{Code: code, Provider: provider, Cause: err}
}
