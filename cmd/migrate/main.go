package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"dryclean-api/internal/handler/middleware"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB  config.DBConfig
	Log config.LogConfig

	AtlasBin string        `envconfig:"ATLAS_BIN" default:"atlas"`
	DevURL   string        `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev?search_path=public"`
	Dir      string        `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
	DryRun   bool          `envconfig:"MIGRATE_DRY_RUN" default:"false"`
	Timeout  time.Duration `envconfig:"MIGRATE_TIMEOUT" default:"2m"`
}

// Brings the database schema in line with migrations/ through the atlas CLI.
func main() {
	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load migrate config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	applied, err := apply(ctx, cfg)
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	logger.Info("schema applied", "statements", len(applied), "dry_run", cfg.DryRun)
	for _, stmt := range applied {
		logger.Debug("applied", "sql", stmt)
	}
}

func apply(ctx context.Context, cfg migrateConfig) ([]string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errs.Wrap(err, "resolve working directory")
	}

	client, err := atlasexec.NewClient(wd, cfg.AtlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "init atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Dir,
		DevURL:      cfg.DevURL,
		DryRun:      cfg.DryRun,
		AutoApprove: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "atlas schema apply")
	}
	return res.Changes.Applied, nil
}
