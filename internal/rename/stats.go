package rename

// Stats tracks tallies for one category pass or an entire run.
type Stats struct {
	Files   int // YAML files examined.
	Renamed int // Files renamed (or that would be, in dry-run).
	Deleted int // Duplicates deleted (or that would be, in dry-run).
	Skipped int // Noop skips plus unparseable files.
	Errored int // Missing/invalid ids and filesystem failures.
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Files += o.Files
	s.Renamed += o.Renamed
	s.Deleted += o.Deleted
	s.Skipped += o.Skipped
	s.Errored += o.Errored
}
