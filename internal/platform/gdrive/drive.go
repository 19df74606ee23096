package gdrive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	RefreshToken string
	FolderID     string
}

func (c Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if strings.TrimSpace(c.RefreshToken) == "" {
		missing = append(missing, "GOOGLE_REFRESH_TOKEN")
	}
	if strings.TrimSpace(c.FolderID) == "" {
		missing = append(missing, "GOOGLE_DRIVE_FOLDER_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing drive config: %s", strings.Join(missing, ", "))
	}
	return nil
}

// OAuthConfig is the installed-app client used both for refreshing the
// server's access token and for minting a new refresh token.
func OAuthConfig(c Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{drive.DriveScope},
	}
}

// Relay uploads files into a single Drive folder and hands back the
// webViewLink of each created file.
type Relay struct {
	log      *logger.Logger
	svc      *drive.Service
	folderID string
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*Relay, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ts := OAuthConfig(cfg).TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	return NewWithOptions(ctx, log, cfg.FolderID, option.WithTokenSource(ts))
}

// NewWithOptions builds a relay over an explicitly configured Drive client.
func NewWithOptions(ctx context.Context, log *logger.Logger, folderID string, opts ...option.ClientOption) (*Relay, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init drive service: %w", err)
	}
	relayLog := log.With("relay", "DriveRelay", "folder_id", folderID)
	relayLog.Info("Drive upload relay initialized")
	return &Relay{log: relayLog, svc: svc, folderID: folderID}, nil
}

func (r *Relay) Name() string { return "drive" }

func (r *Relay) Upload(ctx context.Context, filename, mimeType string, body io.Reader) (string, error) {
	meta := &drive.File{
		Name:    filename,
		Parents: []string{r.folderID},
	}
	call := r.svc.Files.Create(meta).
		Media(body, googleapi.ContentType(mimeType)).
		Fields("id", "webViewLink").
		Context(ctx)
	created, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("drive files.create: %w", err)
	}
	if created.WebViewLink == "" {
		return "", fmt.Errorf("drive files.create: no webViewLink returned for %s", created.Id)
	}
	r.log.Debug("Uploaded file to drive", "file_id", created.Id, "name", filename)
	return created.WebViewLink, nil
}
