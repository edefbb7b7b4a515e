package catalog

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// StatesDir is the reserved per-region subfolder holding state-level
// reports. It is never treated as a category.
const StatesDir = "states"

// Entry is one walked catalog file: either a parsed document or the
// error that kept it from loading. Err set means Doc is nil.
type Entry struct {
	Region   string
	Category string
	Filename string
	Path     string
	Doc      Document
	Err      error
}

// RegionExists reports whether the region directory is present under basePath.
func RegionExists(basePath, region string) bool {
	fi, err := os.Stat(filepath.Join(basePath, region))
	return err == nil && fi.IsDir()
}

// Categories lists the category subdirectories of a region in name order,
// excluding the reserved states folder. Plain files are ignored.
func Categories(regionPath string) ([]string, error) {
	entries, err := os.ReadDir(regionPath)
	if err != nil {
		return nil, err
	}
	var cats []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == StatesDir {
			continue
		}
		cats = append(cats, e.Name())
	}
	return cats, nil
}

// IsYAML reports whether name carries a .yaml or .yml suffix.
// Matching is case-sensitive: product files are lowercase by convention
// and anything else is not catalog data.
func IsYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// YAMLFiles lists the YAML files directly inside dir in name order.
// Subdirectories and non-YAML files are ignored.
func YAMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsYAML(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// WalkCategory lazily yields one Entry per YAML file in a category
// directory. A file that fails to load yields an Entry with Err set and
// the walk continues; a listing failure yields a single error Entry.
func WalkCategory(categoryPath, region, category string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		files, err := YAMLFiles(categoryPath)
		if err != nil {
			yield(Entry{Region: region, Category: category, Path: categoryPath, Err: err})
			return
		}
		for _, name := range files {
			path := filepath.Join(categoryPath, name)
			doc, err := LoadDocument(path)
			e := Entry{
				Region:   region,
				Category: category,
				Filename: name,
				Path:     path,
				Doc:      doc,
				Err:      err,
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Walk lazily yields every catalog file under basePath: regions in the
// given order, categories and files in name order. Missing region
// directories are skipped silently; callers wanting a diagnostic check
// [RegionExists] up front. The sequence is finite and single-use.
func Walk(basePath string, regions []string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, region := range regions {
			regionPath := filepath.Join(basePath, region)
			if !RegionExists(basePath, region) {
				continue
			}
			cats, err := Categories(regionPath)
			if err != nil {
				if !yield(Entry{Region: region, Path: regionPath, Err: err}) {
					return
				}
				continue
			}
			for _, cat := range cats {
				for e := range WalkCategory(filepath.Join(regionPath, cat), region, cat) {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}
