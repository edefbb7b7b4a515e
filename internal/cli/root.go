// Package cli wires the catalogctl commands: cobra flag binding,
// environment bootstrap, logger construction, and the interactive
// confirmation used by the rename command.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openxpd/catalogctl/internal/config"
	"github.com/openxpd/catalogctl/internal/logging"
)

// version is set at build time via -ldflags (e.g. Makefile).
var version = "1.0.0-dev"

var (
	cfg = config.DefaultConfig()
	log *logging.Logger

	// Raw flag values finalized in setup.
	regionsFlag string
	forceColor  bool
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Batch utilities for a region/category product catalog",
	Long: `catalogctl maintains a product-data catalog laid out as
<base>/<region>/<category>/<id>.yaml.

The report command generates per-category CSV summaries (and optionally
one master CSV); the rename command reconciles filenames with each
document's short open_xpd_uuid identifier.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	cobra.OnInitialize(initEnv)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.BasePath, "path", "p", cfg.BasePath, "Base path containing the region folders")
	pf.StringVar(&regionsFlag, "regions", strings.Join(cfg.Regions, ","), "Comma-separated region codes to process")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	pf.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	pf.BoolVar(&forceColor, "color", false, "Force colored logs")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored logs")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(renameCmd)
}

// initEnv loads an optional .env file and applies CATALOG_* overrides
// for flags the user did not set explicitly.
func initEnv() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("CATALOG_PATH"); v != "" && !rootCmd.PersistentFlags().Changed("path") {
		cfg.BasePath = v
	}
	if v := os.Getenv("CATALOG_REGIONS"); v != "" && !rootCmd.PersistentFlags().Changed("regions") {
		regionsFlag = v
	}
}

// setup finalizes cfg from raw flag values, validates it, and builds the
// logger. Runs before every subcommand.
func setup() error {
	cfg.BasePath = config.NormalizeDirArg(cfg.BasePath)
	cfg.Regions = config.ParseRegions(regionsFlag)
	if noColor {
		cfg.ColorMode = config.ColorNever
	} else if forceColor {
		cfg.ColorMode = config.ColorAlways
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	log, err = logging.NewLogger(&cfg)
	return err
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if log != nil {
		log.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogctl: %v\n", err)
		return 1
	}
	return 0
}
