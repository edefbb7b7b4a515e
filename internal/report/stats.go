package report

// Stats tracks aggregate counters and byte totals across a report run.
type Stats struct {
	Regions      int // Regions found and processed.
	Categories   int // Category directories visited.
	Products     int // Valid product records extracted.
	Written      int // CSV files written (per-category plus master).
	Archived     int // State reports relocated into states folders.
	Errors       int // Per-file or per-directory failures.
	BytesWritten int64
}
