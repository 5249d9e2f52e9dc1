package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"size-sync/core/config"
	"size-sync/core/logger"
	"size-sync/feature/sizechart"

	"github.com/spf13/cobra"
)

var (
	resolveBrand  string
	resolveGender string
	resolveSize   string
)

// resolveCmd looks a single size up in the size chart.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a size against the size chart",
	Long: `Loads the configured size chart and prints the US/USW/UK/EUR/CM mapping for a
brand, gender and size, exactly as the webhook would resolve it.

Examples:
  resolve --brand Nike --gender uomo --size 9.5
  resolve --brand "New Balance" --gender FEMALE --size "10 US"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := sizechart.ParseGender(resolveGender)
		if err != nil {
			return err
		}
		size, ok := sizechart.ParseLabel(resolveSize)
		if !ok {
			return fmt.Errorf("size %q has no usable number", resolveSize)
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		chart, err := loadSizeChart(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		mapping, ok := chart.Resolve(resolveBrand, gender, size)
		if !ok {
			return fmt.Errorf("no size chart row for brand %q, gender %s, size %s", resolveBrand, gender, size)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(mapping)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveBrand, "brand", "", "Brand as written on the product vendor")
	resolveCmd.Flags().StringVar(&resolveGender, "gender", "", "Gender (MALE, FEMALE, uomo, donna)")
	resolveCmd.Flags().StringVar(&resolveSize, "size", "", "Size label (e.g. 9.5 or '9.5 US')")
	_ = resolveCmd.MarkFlagRequired("brand")
	_ = resolveCmd.MarkFlagRequired("gender")
	_ = resolveCmd.MarkFlagRequired("size")

	RootCmd.AddCommand(resolveCmd)
}
