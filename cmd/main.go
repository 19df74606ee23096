package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/portfolio-backend/internal/app"
	"github.com/yungbote/portfolio-backend/internal/platform/envutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func main() {
	// A missing .env is normal in deployed environments.
	_ = godotenv.Load()

	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Loading environment variables...")
	cfg := app.LoadConfig(log)

	ctx := context.Background()
	a, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("Failed to init app", "error", err)
		log.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
