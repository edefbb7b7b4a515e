package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openxpd/catalogctl/internal/display"
	"github.com/openxpd/catalogctl/internal/rename"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename YAML files from long identifiers to their short open_xpd_uuid",
	Long: `Reads every catalog YAML file, extracts the top-level open_xpd_uuid,
and renames the file to <open_xpd_uuid>.yaml. When the target name is
already taken, the long-named duplicate is DELETED and the existing
short-named file is kept.

Without --yes or --dry-run, an explicit "yes" is required before any
file is touched; any other answer aborts with no changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		display.PrintBanner()
		log.Info("=== catalogctl v%s ===", version)
		log.Info("Base: %s", cfg.BasePath)

		if cfg.DryRun {
			log.Warn("DRY RUN - no files will be modified")
		} else if !cfg.AssumeYes {
			if !confirmRename() {
				log.Info("Operation cancelled.")
				return nil
			}
		}

		log.Info("Starting YAML file renaming...")
		stats := rename.Run(&cfg, log)

		if cfg.DryRun {
			log.Info("Dry run complete. Run without --dry-run to apply the changes above.")
		}
		if stats.Errored > 0 {
			return fmt.Errorf("rename completed with %d errors", stats.Errored)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVarP(&cfg.AssumeYes, "yes", "y", false, "Skip the confirmation prompt")
	renameCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Report intended actions without touching any file")
}
