package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/openxpd/catalogctl/internal/config"
	"github.com/openxpd/catalogctl/internal/logging"
)

func writeYAML(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T, base string, regions ...string) (config.Config, *logging.Logger) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.BasePath = base
	cfg.Regions = regions
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return cfg, log
}

func TestRun_RenamesLongToShort(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	long := uuid.NewString() + ".yaml"
	writeYAML(t, cat, long, "open_xpd_uuid: short-1\nname: Apple Tile\n")

	cfg, log := testConfig(t, base, "US")
	stats := Run(&cfg, log)

	if stats.Renamed != 1 || stats.Errored != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(cat, "short-1.yaml")); err != nil {
		t.Errorf("short-1.yaml missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cat, long)); !os.IsNotExist(err) {
		t.Errorf("%s should be gone", long)
	}
}

func TestRun_CollisionDeletesLongNamedFile(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	writeYAML(t, cat, "short-1.yaml", "open_xpd_uuid: short-1\nname: Keeper\n")
	writeYAML(t, cat, "long-uuid-1.yaml", "open_xpd_uuid: short-1\nname: Stale Duplicate\n")

	cfg, log := testConfig(t, base, "US")
	stats := Run(&cfg, log)

	if stats.Deleted != 1 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(cat, "long-uuid-1.yaml")); !os.IsNotExist(err) {
		t.Error("long-named duplicate should be deleted")
	}
	data, err := os.ReadFile(filepath.Join(cat, "short-1.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "open_xpd_uuid: short-1\nname: Keeper\n" {
		t.Errorf("pre-existing target was modified: %q", string(data))
	}
}

func TestRun_DryRunMutatesNothing(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	writeYAML(t, cat, "short-1.yaml", "open_xpd_uuid: short-1\nname: Keeper\n")
	writeYAML(t, cat, "long-uuid-1.yaml", "open_xpd_uuid: short-1\nname: Stale Duplicate\n")
	writeYAML(t, cat, "long-uuid-2.yaml", "open_xpd_uuid: short-2\nname: Fresh\n")

	cfg, log := testConfig(t, base, "US")
	cfg.DryRun = true
	stats := Run(&cfg, log)

	// Same decisions as the live run would take.
	if stats.Renamed != 1 || stats.Deleted != 1 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	for _, name := range []string{"short-1.yaml", "long-uuid-1.yaml", "long-uuid-2.yaml"} {
		if _, err := os.Stat(filepath.Join(cat, name)); err != nil {
			t.Errorf("dry run touched %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cat, "short-2.yaml")); !os.IsNotExist(err) {
		t.Error("dry run must not create rename targets")
	}
}

func TestRun_Idempotent(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	for i := 0; i < 3; i++ {
		long := uuid.NewString() + ".yaml"
		writeYAML(t, cat, long, "open_xpd_uuid: id-"+string(rune('a'+i))+"\nname: P\n")
	}

	cfg, log := testConfig(t, base, "US")
	first := Run(&cfg, log)
	if first.Renamed != 3 {
		t.Fatalf("first pass: %+v", first)
	}

	second := Run(&cfg, log)
	if second.Renamed != 0 || second.Deleted != 0 {
		t.Errorf("second pass should be all noops: %+v", second)
	}
	if second.Skipped != 3 {
		t.Errorf("second pass Skipped = %d, want 3", second.Skipped)
	}
}

func TestRun_SkipsAndErrorsDoNotAbort(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	writeYAML(t, cat, "aa-bad.yaml", "name: [unclosed\n")
	writeYAML(t, cat, "bb-noid.yaml", "name: No ID Here\n")
	writeYAML(t, cat, "cc-badid.yaml", "open_xpd_uuid: 123\nname: Numeric ID\n")
	writeYAML(t, cat, "dd-good.yaml", "open_xpd_uuid: good-1\nname: Good\n")

	cfg, log := testConfig(t, base, "US")
	stats := Run(&cfg, log)

	if stats.Renamed != 1 {
		t.Errorf("Renamed = %d, want 1 (later files must still be processed)", stats.Renamed)
	}
	if stats.Errored != 2 {
		t.Errorf("Errored = %d, want 2 (missing id, invalid id)", stats.Errored)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (unparseable file)", stats.Skipped)
	}
	if _, err := os.Stat(filepath.Join(cat, "good-1.yaml")); err != nil {
		t.Errorf("good file not renamed: %v", err)
	}
}

func TestRun_StatesFolderNotProcessed(t *testing.T) {
	base := t.TempDir()
	writeYAML(t, filepath.Join(base, "US", "states"), "long-x.yaml",
		"open_xpd_uuid: short-x\nname: Should Not Move\n")

	cfg, log := testConfig(t, base, "US")
	stats := Run(&cfg, log)

	if stats.Files != 0 {
		t.Errorf("Files = %d, want 0 (states is not a category)", stats.Files)
	}
	if _, err := os.Stat(filepath.Join(base, "US", "states", "long-x.yaml")); err != nil {
		t.Errorf("file inside states was touched: %v", err)
	}
}

func TestRun_YmlNoopKeepsExtension(t *testing.T) {
	base := t.TempDir()
	cat := filepath.Join(base, "US", "brick")
	writeYAML(t, cat, "short-1.yml", "open_xpd_uuid: short-1\nname: P\n")

	cfg, log := testConfig(t, base, "US")
	stats := Run(&cfg, log)

	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if _, err := os.Stat(filepath.Join(cat, "short-1.yml")); err != nil {
		t.Errorf("noop must not re-extension the file: %v", err)
	}
}
