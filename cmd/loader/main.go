// Command loader builds the dashboard dataset from Notion CSV exports: it
// parses the five export files, resolves cross-references, normalizes
// free-text fields, computes the rollup aggregates, and optionally caches
// the finished snapshot as JSON.
//
// Per the data contract the loader takes no CLI flags; all settings come
// from YAML config and environment variables (LOADER_CONFIG_PATH points at
// the loader YAML file).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/redacademy/academy-backend/internal/app"
	"github.com/redacademy/academy-backend/internal/app/loader"
	"github.com/redacademy/academy-backend/internal/config"
)

func main() {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log).With(
		slog.String("run_id", uuid.NewString()),
	)
	logger.Info("starting loader", slog.String("version", app.BuildVersion()))

	loaderCfg, err := loader.LoadConfig(os.Getenv("LOADER_CONFIG_PATH"))
	if err != nil {
		logger.Error("load loader config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pipeline := loader.NewPipeline(logger, *loaderCfg)
	snap, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if loaderCfg.SnapshotPath != "" && !loaderCfg.DryRun {
		if err := loader.WriteSnapshot(loaderCfg.SnapshotPath, snap); err != nil {
			logger.Error("write snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("snapshot written", slog.String("path", loaderCfg.SnapshotPath))
	}

	logger.Info("pipeline completed successfully")
}
