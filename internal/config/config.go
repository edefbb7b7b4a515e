// Package config holds runtime configuration: defaults, environment
// overrides, and validation. Flag binding lives in the cli package; this
// package only defines the shape and the rules.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultRegions is the fixed set of known catalog regions, in processing order.
var DefaultRegions = []string{"US", "IN", "CN", "EU"}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the cli flag bindings before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Catalog layout.
	BasePath string   // Root directory holding the region folders.
	Regions  []string // Region codes to process, in order.

	// Report behavior.
	Master bool // Also emit the all-regions master CSV.

	// Rename behavior.
	DryRun    bool // Decide and report, but never touch the filesystem.
	AssumeYes bool // Skip the interactive confirmation prompt.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// catalog scripts: current directory as base path, the known region set,
// and no destructive shortcuts enabled.
func DefaultConfig() Config {
	return Config{
		BasePath:  ".",
		Regions:   append([]string(nil), DefaultRegions...),
		Master:    false,
		DryRun:    false,
		AssumeYes: false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParseRegions parses a comma-separated region list: entries are trimmed,
// uppercased, and deduplicated; empty entries are dropped. Order is preserved.
func ParseRegions(raw string) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		regions = append(regions, code)
	}
	return regions
}

// Validate checks that the base path, region list, and enum fields hold
// usable values. It does not check that the base path exists; missing
// regions are a per-run diagnostic, not a configuration error.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.BasePath == "" {
		return errors.New("base path must not be empty")
	}
	if len(c.Regions) == 0 {
		return errors.New("need at least one region code")
	}
	for _, r := range c.Regions {
		if r == "" || strings.ContainsAny(r, "/\\") {
			return fmt.Errorf("invalid region code %q", r)
		}
	}
	return nil
}
