package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openxpd/catalogctl/internal/display"
	"github.com/openxpd/catalogctl/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate per-category CSV summaries from the catalog",
	Long: `Scans every region and category under the base path, extracts the
product name, gwp and declared_unit fields from each YAML file, and
writes one sorted CSV per non-empty category into the region folder.
State-subdivision CSVs (<region>-XX.csv) are relocated into the
region's states folder afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		display.PrintBanner()
		log.Info("=== catalogctl v%s ===", version)
		log.Info("Base: %s", cfg.BasePath)
		log.Info("Generating category CSV files...")
		log.Info("")

		stats := report.Run(&cfg, log)
		if stats.Errors > 0 {
			return fmt.Errorf("report completed with %d errors", stats.Errors)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVarP(&cfg.Master, "master", "m", false, "Also generate the all_products.csv master CSV")
}
