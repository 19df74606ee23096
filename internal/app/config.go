package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/envutil"
	"github.com/yungbote/portfolio-backend/internal/platform/gcp"
	"github.com/yungbote/portfolio-backend/internal/platform/gdrive"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/mongodb"
)

const (
	UploadProviderDrive = "drive"
	UploadProviderGCS   = "gcs"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://mustofa-mamun-website-react.vercel.app",
	"https://www.mustofamamun.com",
	"https://mustofamamun.com",
}

type Config struct {
	Port           string
	SiteName       string
	AllowedOrigins []string

	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string

	UploadProvider     string
	Drive              gdrive.Config
	Bucket             gcp.BucketConfig
	MaxMultipartMemory int64

	FilesRequireAuth    bool
	FilesValidateFields bool
	ProfileUpsert       bool
	SeedFile            string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	LoginMaxAttempts int
	LoginWindow      time.Duration

	MetricsEnabled bool
	Otel           observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	siteName := envutil.String("SITE_NAME", "Mustofa")
	mongoURI := envutil.String("MONGO_URI", "")
	if mongoURI == "" {
		mongoURI = mongodb.URIFromParts(
			envutil.String("DB_USER", ""),
			envutil.String("DB_PASS", ""),
			envutil.String("MONGO_HOST", "cluster0.zedvr4o.mongodb.net"),
			envutil.String("MONGO_APP_NAME", "Cluster0"),
		)
	}

	cfg := Config{
		Port:           envutil.String("PORT", "5000"),
		SiteName:       siteName,
		AllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),

		MongoURI:            mongoURI,
		MongoDatabase:       envutil.String("MONGO_DB", "Mustofa_Mamun_DB"),
		MongoConnectTimeout: time.Duration(envutil.Int("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,

		JWTSecret:     envutil.String("JWT_SECRET", ""),
		TokenTTL:      time.Duration(envutil.Int("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		AdminEmail:    envutil.String("USER_EMAIL", ""),
		AdminPassword: envutil.String("USER_PASSWORD", ""),

		UploadProvider: strings.ToLower(envutil.String("UPLOAD_PROVIDER", UploadProviderDrive)),
		Drive: gdrive.Config{
			ClientID:     envutil.String("GOOGLE_CLIENT_ID", ""),
			ClientSecret: envutil.String("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  envutil.String("GOOGLE_REDIRECT_URI", ""),
			RefreshToken: envutil.String("GOOGLE_REFRESH_TOKEN", ""),
			FolderID:     envutil.String("GOOGLE_DRIVE_FOLDER_ID", ""),
		},
		Bucket: gcp.BucketConfig{
			Bucket:        envutil.String("GCS_BUCKET", ""),
			Folder:        envutil.String("GCS_FOLDER", "files"),
			PublicBaseURL: envutil.String("GCS_PUBLIC_BASE_URL", ""),
			EmulatorHost:  envutil.String("STORAGE_EMULATOR_HOST", ""),
		},
		MaxMultipartMemory: int64(envutil.Int("MAX_MULTIPART_MEMORY_MB", 32)) << 20,

		FilesRequireAuth:    envutil.Bool("FILES_REQUIRE_AUTH", false),
		FilesValidateFields: envutil.Bool("FILES_VALIDATE_FIELDS", false),
		ProfileUpsert:       envutil.Bool("PROFILE_UPSERT", true),
		SeedFile:            envutil.String("SEED_FILE", ""),

		RedisAddr:        envutil.String("REDIS_ADDR", ""),
		RedisPassword:    envutil.String("REDIS_PASSWORD", ""),
		RedisDB:          envutil.Int("REDIS_DB", 0),
		LoginMaxAttempts: envutil.Int("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:      time.Duration(envutil.Int("LOGIN_WINDOW_SECONDS", 900)) * time.Second,

		MetricsEnabled: envutil.Bool("METRICS_ENABLED", false),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "portfolio-backend"),
			Environment: envutil.String("OTEL_ENVIRONMENT", envutil.String("LOG_MODE", "development")),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
	}

	log.Info("Configuration loaded",
		"port", cfg.Port,
		"database", cfg.MongoDatabase,
		"upload_provider", cfg.UploadProvider,
		"files_require_auth", cfg.FilesRequireAuth,
		"files_validate_fields", cfg.FilesValidateFields,
		"profile_upsert", cfg.ProfileUpsert,
		"login_throttle", cfg.RedisAddr != "",
		"allowed_origins", strings.Join(cfg.AllowedOrigins, ","),
	)
	return cfg
}

// Validate reports settings the server cannot start without. Storage and
// relay outages are tolerated at runtime; these are not.
func (c Config) Validate() error {
	var problems []string
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		problems = append(problems, "TOKEN_TTL_SECONDS must be positive")
	}
	if c.MongoURI == "" {
		problems = append(problems, "MONGO_URI or MONGO_HOST is required")
	}
	switch c.UploadProvider {
	case UploadProviderDrive, UploadProviderGCS:
	default:
		problems = append(problems, fmt.Sprintf("UPLOAD_PROVIDER %q is not one of drive, gcs", c.UploadProvider))
	}
	if len(c.AllowedOrigins) == 0 {
		problems = append(problems, "CORS_ALLOWED_ORIGINS is empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
