package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/portfolio-backend/internal/http"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

const (
	bootstrapTimeout = 30 * time.Second
	shutdownTimeout  = 10 * time.Second
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Router   *gin.Engine

	server       *http.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics(prometheus.NewRegistry())
	}

	clientset, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, err
	}

	reposet := wireRepos(clientset.Mongo.Database(), log)
	serviceset := wireServices(log, cfg, reposet, clientset, metrics)
	handlerset := wireHandlers(log, cfg, serviceset, clientset.Mongo, metrics)
	middleware := wireMiddleware(log, serviceset)
	router := wireRouter(log, cfg, handlerset, middleware, metrics)

	a := &App{
		Log:          log,
		Cfg:          cfg,
		Clients:      clientset,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Router:       router,
		server:       http.NewServer(log, ":"+cfg.Port, router),
		otelShutdown: otelShutdown,
	}
	a.bootstrap(ctx)
	return a, nil
}

// bootstrap seeds the admin account and the optional content set. Failures
// are logged; the routes are served regardless.
func (a *App) bootstrap(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	created, err := a.Services.Auth.EnsureAdmin(ctx, a.Cfg.AdminEmail, a.Cfg.AdminPassword)
	switch {
	case err != nil:
		a.Log.Error("Admin bootstrap failed", "error", err)
	case created:
		a.Log.Info("Admin account seeded")
	}

	if a.Cfg.SeedFile == "" {
		return
	}
	data, err := services.LoadSeedFile(a.Cfg.SeedFile)
	if err != nil {
		a.Log.Error("Seed file unreadable", "path", a.Cfg.SeedFile, "error", err)
		return
	}
	if _, err := a.Services.Seed.Seed(ctx, data); err != nil {
		a.Log.Error("Seeding failed", "path", a.Cfg.SeedFile, "error", err)
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Clients.Close(ctx, a.Log)
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
