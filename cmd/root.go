package cmd

import (
	"fmt"
	"os"

	"size-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "size-sync",
	Short: "Footwear size sync service",
	Long: `Size Sync listens for product creation webhooks and writes the US, USW, UK, EUR
and CM sizes of every footwear variant into its custom metafields, using a brand
size chart as the reference.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config, so CLI failures read well
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
