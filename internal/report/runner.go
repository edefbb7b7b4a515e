package report

import (
	"path/filepath"

	"github.com/openxpd/catalogctl/internal/catalog"
	"github.com/openxpd/catalogctl/internal/config"
	"github.com/openxpd/catalogctl/internal/display"
	"github.com/openxpd/catalogctl/internal/logging"
)

// Run is the top-level report entry point: walk every region and
// category, write one CSV per non-empty category, archive state reports,
// and optionally write the master CSV. Per-file failures are logged and
// counted, never fatal.
func Run(cfg *config.Config, log *logging.Logger) Stats {
	var stats Stats
	var all []catalog.ProductRecord

	for _, region := range cfg.Regions {
		regionPath := filepath.Join(cfg.BasePath, region)
		if !catalog.RegionExists(cfg.BasePath, region) {
			log.Warn("Skipping %s - directory not found", region)
			continue
		}
		stats.Regions++
		log.Info("Processing region: %s", region)

		cats, err := catalog.Categories(regionPath)
		if err != nil {
			log.Error("Cannot list %s: %v", regionPath, err)
			stats.Errors++
			continue
		}
		for _, cat := range cats {
			stats.Categories++
			log.Info("  Category: %s", cat)
			records := collectCategory(cfg, log, regionPath, region, cat, &stats)
			all = append(all, records...)
			if len(records) == 0 {
				log.Info("  No products found in %s", filepath.Join(regionPath, cat))
				continue
			}
			writeCategoryReport(log, regionPath, region, cat, records, &stats)
		}

		archiveRegion(log, regionPath, region, &stats)
	}

	if cfg.Master {
		writeMasterReport(cfg, log, all, &stats)
	}

	logSummary(log, &stats)
	return stats
}

// collectCategory extracts records from every valid YAML file in one
// category, logging and counting load failures.
func collectCategory(
	cfg *config.Config,
	log *logging.Logger,
	regionPath, region, cat string,
	stats *Stats,
) []catalog.ProductRecord {
	var records []catalog.ProductRecord
	for e := range catalog.WalkCategory(filepath.Join(regionPath, cat), region, cat) {
		if e.Err != nil {
			log.Error("  Error processing %s: %v", e.Path, e.Err)
			stats.Errors++
			continue
		}
		rec := catalog.RecordFrom(e)
		log.Debug(cfg.Verbose, "  %s: %s", rec.UUID, rec.Name)
		records = append(records, rec)
		stats.Products++
	}
	return records
}

func writeCategoryReport(
	log *logging.Logger,
	regionPath, region, cat string,
	records []catalog.ProductRecord,
	stats *Stats,
) {
	data, err := BuildCategoryReport(records)
	if err != nil {
		log.Error("  Cannot build report for %s/%s: %v", region, cat, err)
		stats.Errors++
		return
	}
	csvPath := filepath.Join(regionPath, region+"-"+cat+".csv")
	if err := WriteFileAtomic(csvPath, data); err != nil {
		log.Error("  Cannot write %s: %v", csvPath, err)
		stats.Errors++
		return
	}
	stats.Written++
	stats.BytesWritten += int64(len(data))
	log.Success("  Generated: %s (%s)", csvPath, display.FormatCount(len(records), "product"))
}

func archiveRegion(log *logging.Logger, regionPath, region string, stats *Stats) {
	moved, err := ArchiveStateReports(regionPath, region)
	if err != nil {
		log.Error("Cannot archive state reports for %s: %v", region, err)
		stats.Errors++
	}
	for _, name := range moved {
		log.Info("  Archived state report: %s -> %s", name, filepath.Join(region, catalog.StatesDir, name))
	}
	stats.Archived += len(moved)
}

func writeMasterReport(cfg *config.Config, log *logging.Logger, all []catalog.ProductRecord, stats *Stats) {
	if len(all) == 0 {
		log.Warn("No products found anywhere; master CSV not written")
		return
	}
	data, err := BuildMasterReport(all)
	if err != nil {
		log.Error("Cannot build master report: %v", err)
		stats.Errors++
		return
	}
	masterPath := filepath.Join(cfg.BasePath, "all_products.csv")
	if err := WriteFileAtomic(masterPath, data); err != nil {
		log.Error("Cannot write %s: %v", masterPath, err)
		stats.Errors++
		return
	}
	stats.Written++
	stats.BytesWritten += int64(len(data))
	log.Success("Generated master CSV: %s (%s)", masterPath, display.FormatCount(len(all), "total product"))
}

func logSummary(log *logging.Logger, stats *Stats) {
	log.Info("==============================")
	log.Info("Done: %d regions, %d categories, %d products", stats.Regions, stats.Categories, stats.Products)
	log.Info("  CSV files written: %d (%s)", stats.Written, display.FormatBytes(stats.BytesWritten))
	if stats.Archived > 0 {
		log.Info("  State reports archived: %d", stats.Archived)
	}
	if stats.Errors > 0 {
		log.Warn("  Errors: %d (see log above)", stats.Errors)
	}
}
