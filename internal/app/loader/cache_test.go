package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCacheRoundTrip(t *testing.T) {
	p := NewPipeline(discardLogger(), testdataConfig(t))
	snap, err := p.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteSnapshot(path, snap))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, snap.Stats, got.Stats)
	assert.Equal(t, len(snap.Trainees), len(got.Trainees))
	require.NotEmpty(t, got.Batches)
	assert.Equal(t, snap.Batches[0].BatchName, got.Batches[0].BatchName)
}

func TestReadSnapshotMissing(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
