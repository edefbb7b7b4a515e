package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/openxpd/catalogctl/internal/catalog"
)

// IsStateReport reports whether name looks like a state-subdivision CSV
// for the region: "<regionCode>-XX.csv" with XX exactly two characters.
// The check is purely structural; XX is not validated against a real
// subdivision list.
func IsStateReport(name, regionCode string) bool {
	rest, ok := strings.CutPrefix(name, regionCode+"-")
	if !ok {
		return false
	}
	code, ok := strings.CutSuffix(rest, ".csv")
	if !ok {
		return false
	}
	return len(code) == 2 && !strings.Contains(code, "-")
}

// ArchiveStateReports relocates state-subdivision CSVs from the region's
// top level into its states subfolder, creating it on first use. Returns
// the names moved.
func ArchiveStateReports(regionPath, regionCode string) ([]string, error) {
	entries, err := os.ReadDir(regionPath)
	if err != nil {
		return nil, err
	}
	statesPath := filepath.Join(regionPath, catalog.StatesDir)
	var moved []string
	for _, e := range entries {
		if e.IsDir() || !IsStateReport(e.Name(), regionCode) {
			continue
		}
		if len(moved) == 0 {
			if err := os.MkdirAll(statesPath, 0o755); err != nil {
				return moved, err
			}
		}
		if err := os.Rename(filepath.Join(regionPath, e.Name()), filepath.Join(statesPath, e.Name())); err != nil {
			return moved, err
		}
		moved = append(moved, e.Name())
	}
	return moved, nil
}
