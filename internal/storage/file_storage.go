// Package storage persists job artifacts to a local data directory and
// mirrors them to a Google Cloud Storage bucket under the same relative path.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	gcs "cloud.google.com/go/storage"

	"github.com/spacesedan/botscope/config"
)

type FileStorage struct {
	LocalDirpath string
	GCSDirpath   string

	bucketName string
	client     *gcs.Client
}

// NewFileStorage roots a local artifact directory under DATA_DIR and the
// matching bucket prefix under storage/data, creating the local directory
// and connecting to GCS when a bucket is configured.
func NewFileStorage(ctx context.Context, dirpath string) (*FileStorage, error) {
	fs := NewLocalStorage(dirpath)
	if err := fs.EnsureLocalDir(); err != nil {
		return nil, err
	}

	fs.bucketName = config.GetString("GCS_BUCKET_NAME", "")
	if fs.bucketName != "" {
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("[Storage] failed to create GCS client: %w", err)
		}
		fs.client = client
		slog.Info("[Storage] Connected to bucket", slog.String("bucket", fs.bucketName))
	}

	return fs, nil
}

// NewLocalStorage builds the path layout without touching disk or the
// network. Upload and Download fail until a bucket is connected.
func NewLocalStorage(dirpath string) *FileStorage {
	dataDir := config.GetString("DATA_DIR", "./data")
	return &FileStorage{
		LocalDirpath: filepath.Join(dataDir, dirpath),
		GCSDirpath:   path.Join("storage", "data", dirpath),
	}
}

// HasBucket reports whether uploads are configured for this run.
func (fs *FileStorage) HasBucket() bool {
	return fs.client != nil
}

func (fs *FileStorage) Close() error {
	if fs.client != nil {
		return fs.client.Close()
	}
	return nil
}

func (fs *FileStorage) EnsureLocalDir() error {
	if err := os.MkdirAll(fs.LocalDirpath, 0o755); err != nil {
		return fmt.Errorf("[Storage] failed to create local dir: %w", err)
	}
	return nil
}

func (fs *FileStorage) LocalPath(name string) string {
	return filepath.Join(fs.LocalDirpath, name)
}

func (fs *FileStorage) GCSPath(name string) string {
	return path.Join(fs.GCSDirpath, name)
}

// Exists reports whether the named local artifact is already on disk. Jobs
// use this to skip re-downloading or re-building.
func (fs *FileStorage) Exists(name string) bool {
	_, err := os.Stat(fs.LocalPath(name))
	return err == nil
}

// SaveJSON writes v to a temp file and renames it into place, so a partial
// write never looks like a finished artifact.
func (fs *FileStorage) SaveJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("[Storage] failed to marshal %s: %w", name, err)
	}
	return fs.writeAtomic(name, data)
}

func (fs *FileStorage) writeAtomic(name string, data []byte) error {
	target := fs.LocalPath(name)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("[Storage] failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("[Storage] failed to rename %s into place: %w", name, err)
	}
	return nil
}

// Upload copies the named local artifact to the mirrored bucket path.
func (fs *FileStorage) Upload(ctx context.Context, name string) error {
	if fs.client == nil {
		return fmt.Errorf("[Storage] no bucket configured, cannot upload %s", name)
	}

	f, err := os.Open(fs.LocalPath(name))
	if err != nil {
		return fmt.Errorf("[Storage] failed to open %s for upload: %w", name, err)
	}
	defer f.Close()

	objectPath := fs.GCSPath(name)
	w := fs.client.Bucket(fs.bucketName).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return fmt.Errorf("[Storage] failed to upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("[Storage] failed to finalize upload of %s: %w", name, err)
	}

	slog.Info("[Storage] Uploaded",
		slog.String("bucket", fs.bucketName),
		slog.String("object", objectPath))
	return nil
}

// Download copies the mirrored bucket object back to the local path.
func (fs *FileStorage) Download(ctx context.Context, name string) error {
	if fs.client == nil {
		return fmt.Errorf("[Storage] no bucket configured, cannot download %s", name)
	}

	r, err := fs.client.Bucket(fs.bucketName).Object(fs.GCSPath(name)).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("[Storage] failed to read %s from bucket: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("[Storage] failed to download %s: %w", name, err)
	}
	return fs.writeAtomic(name, data)
}
