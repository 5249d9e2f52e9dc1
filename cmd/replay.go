package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"size-sync/core/config"
	"size-sync/core/logger"
	"size-sync/feature/webhook"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replayDryRun bool

// replayCmd runs a saved product payload through the sync pipeline.
var replayCmd = &cobra.Command{
	Use:   "replay <event.json>",
	Short: "Replay a saved product webhook payload",
	Long: `Processes a product payload saved to disk exactly as the webhook would,
then prints the summary.

Examples:
  # Show what would be written
  replay product.json --dry-run

  # Write the metafields
  replay product.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		var event webhook.ProductEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return fmt.Errorf("failed to decode event: %w", err)
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		chart, err := loadSizeChart(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		svc := newWebhookService(cfg, chart, openAudit(cfg, logg), logg, replayDryRun)
		summary := svc.Handle(cmd.Context(), &event)
		logg.Info("Replay finished", zap.String("status", summary.Status), zap.Bool("dry_run", replayDryRun))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	replayCmd.Flags().BoolVar(&replayDryRun, "dry-run", false, "Plan metafield writes without sending them")
	RootCmd.AddCommand(replayCmd)
}
