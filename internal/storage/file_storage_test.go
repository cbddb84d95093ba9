package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/botscope/internal/models"
)

func newTestStorage(t *testing.T) *FileStorage {
	t.Helper()
	t.Setenv("DATA_DIR", t.TempDir())

	fs := NewLocalStorage(filepath.Join("graphs", "archived", "2020-05-26-0002"))
	require.NoError(t, fs.EnsureLocalDir())
	return fs
}

func TestPathLayout(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/botscope-data")
	fs := NewLocalStorage("daily/2020-01-23")

	assert.Equal(t, filepath.Join("/tmp/botscope-data", "daily/2020-01-23"), fs.LocalDirpath)
	assert.Equal(t, "storage/data/daily/2020-01-23", fs.GCSDirpath)
	assert.Equal(t, "storage/data/daily/2020-01-23/graph.gob", fs.GCSPath("graph.gob"))
}

func TestExists(t *testing.T) {
	fs := newTestStorage(t)

	assert.False(t, fs.Exists("metadata.json"))
	require.NoError(t, os.WriteFile(fs.LocalPath("metadata.json"), []byte("{}"), 0o644))
	assert.True(t, fs.Exists("metadata.json"))
}

func TestSaveJSON(t *testing.T) {
	fs := newTestStorage(t)

	meta := models.JobMetadata{AppEnv: "test", JobID: "2020-05-26-0002", BatchSize: 100}
	require.NoError(t, fs.SaveJSON("metadata.json", meta))

	data, err := os.ReadFile(fs.LocalPath("metadata.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"job_id":"2020-05-26-0002"`)

	// no temp file left behind
	assert.NoFileExists(t, fs.LocalPath("metadata.json")+".tmp")
}

func TestCSVRoundtrip(t *testing.T) {
	fs := newTestStorage(t)

	samples := []models.ProgressSample{
		{Timestamp: "2020-05-26 00:02:00", Counter: 100, EdgeCount: 1500},
		{Timestamp: "2020-05-26 00:03:00", Counter: 200, EdgeCount: 3100},
	}
	require.NoError(t, fs.SaveCSV("results.csv", &samples))

	var loaded []models.ProgressSample
	require.NoError(t, fs.LoadCSV("results.csv", &loaded))
	assert.Equal(t, samples, loaded)
}

func TestUploadWithoutBucket(t *testing.T) {
	fs := newTestStorage(t)

	err := fs.Upload(context.Background(), "missing.csv")
	assert.ErrorContains(t, err, "no bucket configured")
}
