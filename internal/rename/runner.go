package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openxpd/catalogctl/internal/catalog"
	"github.com/openxpd/catalogctl/internal/config"
	"github.com/openxpd/catalogctl/internal/logging"
)

// Run applies the identifier normalizer to every category of every
// region under cfg.BasePath. In dry-run mode the full decision logic
// executes and every intended action is reported, but nothing on disk
// is touched. A single file's failure never aborts its category or the
// run; rerunning converges because short-named files become noops.
func Run(cfg *config.Config, log *logging.Logger) Stats {
	var total Stats

	for _, region := range cfg.Regions {
		regionPath := filepath.Join(cfg.BasePath, region)
		if !catalog.RegionExists(cfg.BasePath, region) {
			log.Warn("Skipping %s - directory not found", region)
			continue
		}
		log.Info("==============================")
		log.Info("Processing region: %s", region)

		cats, err := catalog.Categories(regionPath)
		if err != nil {
			log.Error("Cannot list %s: %v", regionPath, err)
			total.Errored++
			continue
		}
		if len(cats) == 0 {
			log.Info("  No categories found")
			continue
		}
		for _, cat := range cats {
			log.Info("Category: %s", cat)
			cs := runCategory(cfg, log, filepath.Join(regionPath, cat))
			logCategorySummary(log, cs)
			total.Add(cs)
		}
	}

	logRunSummary(cfg, log, total)
	return total
}

// runCategory processes every YAML file in one category directory.
// Renames within a category are strictly sequential: each collision
// check sees the directory state left by the previous file.
func runCategory(cfg *config.Config, log *logging.Logger, categoryPath string) Stats {
	var stats Stats
	files, err := catalog.YAMLFiles(categoryPath)
	if err != nil {
		log.Error("  Cannot list %s: %v", categoryPath, err)
		stats.Errored++
		return stats
	}
	if len(files) == 0 {
		log.Info("  No YAML files found")
		return stats
	}
	for _, name := range files {
		stats.Files++
		processFile(cfg, log, categoryPath, name, &stats)
	}
	return stats
}

// processFile loads one document, decides its action, and applies it
// (unless dry-run). Dry-run and live runs share the same decision path.
func processFile(cfg *config.Config, log *logging.Logger, dir, name string, stats *Stats) {
	path := filepath.Join(dir, name)

	doc, err := catalog.LoadDocument(path)
	if err != nil {
		log.Warn("  Skipping %s - empty or invalid YAML (%v)", name, err)
		stats.Skipped++
		return
	}

	d := Decide(doc, name, func(target string) bool {
		_, err := os.Stat(filepath.Join(dir, target))
		return err == nil
	})

	switch d.Action {
	case ActionSkipMissingID:
		log.Warn("  Skipping %s - no open_xpd_uuid field at top level", name)
		stats.Errored++
	case ActionSkipInvalidID:
		log.Warn("  Skipping %s - invalid open_xpd_uuid value", name)
		stats.Errored++
	case ActionSkipNoop:
		log.Debug(cfg.Verbose, "  Already short: %s", name)
		stats.Skipped++
	case ActionDelete:
		if cfg.DryRun {
			log.Info("  Would delete (duplicate): %s", name)
			stats.Deleted++
			return
		}
		log.Warn("  File already exists: %s, deleting old: %s", d.NewName, name)
		if err := os.Remove(path); err != nil {
			log.Error("  Error deleting %s: %v", name, err)
			stats.Errored++
			return
		}
		log.Warn("  Deleted: %s", name)
		stats.Deleted++
	case ActionRename:
		if cfg.DryRun {
			log.Info("  Would rename: %s -> %s", name, d.NewName)
			stats.Renamed++
			return
		}
		if err := os.Rename(path, filepath.Join(dir, d.NewName)); err != nil {
			log.Error("  Error renaming %s: %v", name, err)
			stats.Errored++
			return
		}
		log.Success("  Renamed: %s -> %s", name, d.NewName)
		stats.Renamed++
	}
}

// logCategorySummary prints the per-category tally line, omitted when
// the category needed no attention at all.
func logCategorySummary(log *logging.Logger, s Stats) {
	if s.Renamed == 0 && s.Deleted == 0 && s.Errored == 0 {
		return
	}
	var parts []string
	if s.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("%d renamed", s.Renamed))
	}
	if s.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", s.Deleted))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	if s.Errored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", s.Errored))
	}
	log.Info("  %s", strings.Join(parts, ", "))
}

func logRunSummary(cfg *config.Config, log *logging.Logger, total Stats) {
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Dry run: %d would be renamed, %d would be deleted, %d skipped, %d errors",
			total.Renamed, total.Deleted, total.Skipped, total.Errored)
		return
	}
	log.Info("Done: %d renamed, %d deleted, %d skipped, %d errors",
		total.Renamed, total.Deleted, total.Skipped, total.Errored)
}
