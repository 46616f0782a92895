// Package storage manages the image files attached to sauce records. It is
// the only component that creates or deletes files in the upload directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	"github.com/PointonKaren/OCR-Projet6/internal/metrics"
)

// urlPrefix is the public route the stored files are served under.
const urlPrefix = "/images/"

// allowedTypes maps accepted MIME types to the stored file extension.
var allowedTypes = map[string]string{
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// DiskStore stores images as uniquely named files in a local directory.
type DiskStore struct {
	dir     string
	baseURL string
	clock   clockwork.Clock
}

func NewDiskStore(dir, baseURL string, clock clockwork.Clock) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), clock: clock}, nil
}

// Save writes the upload to disk under a collision-free name built from the
// sanitized original name plus a millisecond timestamp, mirroring how the
// upload middleware names files. Original names are not unique across
// uploads; the timestamp suffix is what keeps stored names distinct.
func (s *DiskStore) Save(ctx context.Context, upload *domain.Upload) (string, error) {
	ext, ok := allowedTypes[upload.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, upload.ContentType)
	}

	name := fmt.Sprintf("%s_%d.%s", sanitizeBase(upload.Filename), s.clock.Now().UnixMilli(), ext)
	dest := filepath.Join(s.dir, name)

	f, err := os.Create(dest)
	if err != nil {
		metrics.AssetOperationsTotal.WithLabelValues("save", "error").Inc()
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(f, upload.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		metrics.AssetOperationsTotal.WithLabelValues("save", "error").Inc()
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		metrics.AssetOperationsTotal.WithLabelValues("save", "error").Inc()
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	metrics.AssetOperationsTotal.WithLabelValues("save", "ok").Inc()
	slog.Debug("Image stored", "file", name)
	return name, nil
}

// Remove deletes a stored file. A file that is already gone counts as removed.
func (s *DiskStore) Remove(ctx context.Context, storedName string) error {
	// Stored names never contain separators; reject anything that would
	// escape the upload directory.
	if storedName == "" || storedName != filepath.Base(storedName) {
		return fmt.Errorf("invalid stored name %q", storedName)
	}

	err := os.Remove(filepath.Join(s.dir, storedName))
	if err != nil && !os.IsNotExist(err) {
		metrics.AssetOperationsTotal.WithLabelValues("remove", "error").Inc()
		return fmt.Errorf("failed to remove image file: %w", err)
	}

	metrics.AssetOperationsTotal.WithLabelValues("remove", "ok").Inc()
	return nil
}

func (s *DiskStore) URL(storedName string) string {
	return s.baseURL + urlPrefix + storedName
}

// StoredName extracts the stored file name back out of an image URL. Returns
// "" when the URL does not point into the upload route.
func (s *DiskStore) StoredName(imageURL string) string {
	idx := strings.LastIndex(imageURL, urlPrefix)
	if idx < 0 {
		return ""
	}
	return imageURL[idx+len(urlPrefix):]
}

func sanitizeBase(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." {
		base = "image"
	}
	return base
}
