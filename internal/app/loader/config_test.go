package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYAML(t *testing.T) {
	yaml := `
batches_path: "data/batches.csv"
trainees_path: "data/trainees.csv"
daily_path: "data/daily.csv"
ten_day_path: "data/tenday.csv"
assessments_path: "data/assessments.csv"
snapshot_path: "out/snapshot.json"
dry_run: true
`
	path := filepath.Join(t.TempDir(), "loader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/batches.csv", cfg.BatchesPath)
	assert.Equal(t, "out/snapshot.json", cfg.SnapshotPath)
	assert.True(t, cfg.DryRun)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOADER_BATCHES_PATH", "b.csv")
	t.Setenv("LOADER_TRAINEES_PATH", "t.csv")
	t.Setenv("LOADER_DAILY_PATH", "d.csv")
	t.Setenv("LOADER_TEN_DAY_PATH", "x.csv")
	t.Setenv("LOADER_ASSESSMENTS_PATH", "a.csv")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "b.csv", cfg.BatchesPath)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfigMissingRequiredPath(t *testing.T) {
	t.Setenv("LOADER_BATCHES_PATH", "b.csv")
	// The other four required paths stay unset.

	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
