package cmd

import (
	"bytes"
	"fmt"
	"os"

	"size-sync/core/config"
	"size-sync/core/logger"
	"size-sync/core/storage"
	"size-sync/feature/sizechart"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// chartCmd is the parent command for size chart maintenance.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Manage the size chart",
}

// chartPushCmd validates a local CSV and uploads it to the storage bucket.
var chartPushCmd = &cobra.Command{
	Use:   "push <size_chart.csv>",
	Short: "Validate a size chart and upload it to the storage bucket",
	Long: `Parses the CSV the same way the server does and, when it is valid, uploads it to
storage.bucket as sizechart.object. Servers running with sizechart.source=storage pick
it up on POST /sizechart/reload or on restart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read size chart: %w", err)
		}
		rows, err := sizechart.ParseCSV(bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("invalid size chart: %w", err)
		}
		table := sizechart.NewTable(rows)

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}

		info, err := client.PutObject(ctx, cfg.Storage.Bucket, cfg.SizeChart.Object, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
			ContentType: "text/csv",
		})
		if err != nil {
			return fmt.Errorf("failed to upload size chart: %w", err)
		}

		logg.Info("Size chart uploaded",
			zap.String("bucket", info.Bucket),
			zap.String("object", info.Key),
			zap.Int("rows", table.Len()),
			zap.Int("brands", table.Brands()),
		)
		return nil
	},
}

func init() {
	chartCmd.AddCommand(chartPushCmd)
	RootCmd.AddCommand(chartCmd)
}
