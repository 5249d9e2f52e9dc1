package cmd

import (
	"context"
	"fmt"
	"net/http"

	"size-sync/core/config"
	"size-sync/core/database"
	"size-sync/core/shopify"
	"size-sync/core/storage"
	"size-sync/feature/audit"
	"size-sync/feature/metafields"
	"size-sync/feature/sizechart"
	"size-sync/feature/webhook"

	"go.uber.org/zap"
)

// loadSizeChart builds the configured chart source and reads it once.
func loadSizeChart(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*sizechart.Service, error) {
	var client storage.Client
	if cfg.SizeChart.Source == "storage" {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	source, err := sizechart.NewSource(cfg.SizeChart, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	svc := sizechart.NewService(source, logg)
	if _, err := svc.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load size chart: %w", err)
	}
	return svc, nil
}

// openAudit connects the optional audit database. Failures are logged and leave the
// audit trail disabled.
func openAudit(cfg *config.Config, logg *zap.Logger) *audit.Service {
	if !cfg.Database.Enabled {
		return audit.NewService(nil, logg)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return audit.NewService(nil, logg)
	}

	svc := audit.NewService(db, logg)
	if err := svc.Migrate(); err != nil {
		logg.Warn("Audit table migration failed", zap.Error(err))
		return audit.NewService(nil, logg)
	}
	logg.Info("Connected to audit database", zap.String("driver", cfg.Database.Driver))
	return svc
}

// newWebhookService wires the chart, the Shopify client and the audit trail.
func newWebhookService(cfg *config.Config, chart *sizechart.Service, recorder audit.Recorder, logg *zap.Logger, dryRun bool) *webhook.Service {
	client := shopify.NewClient(cfg.Shopify, &http.Client{}, logg)
	syncer := metafields.NewSynchronizer(client, logg, metafields.Options{DryRun: dryRun})
	return webhook.NewService(chart, syncer, recorder, logg)
}
