package dirsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/metrics"
)

const sourceLabel = "dir"

// Source reads content documents from a directory tree.
type Source struct {
	fsys fs.FS
	root string
}

// New creates a source rooted at dir.
func New(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return &Source{fsys: os.DirFS(dir), root: dir}, nil
}

// NewFS creates a source over an arbitrary file system.
func NewFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys, root: "fs"}
}

// Fetch implements domain.Source.
func (s *Source) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}

	name := strings.TrimLeft(path, "/")
	if !fs.ValidPath(name) {
		metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "not_found").Inc()
		return nil, fmt.Errorf("%w: invalid path %q", domain.ErrNotFound, path)
	}

	start := time.Now()
	data, err := fs.ReadFile(s.fsys, name)
	metrics.SourceFetchDuration.WithLabelValues(sourceLabel).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "not_found").Inc()
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
		}
		metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "error").Inc()
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrSourceUnavailable, name, err)
	}

	metrics.SourceFetchTotal.WithLabelValues(sourceLabel, "ok").Inc()
	return data, nil
}

// HealthCheck verifies that the root is still readable.
func (s *Source) HealthCheck(_ context.Context) error {
	if _, err := fs.Stat(s.fsys, "."); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, s.root, err)
	}
	return nil
}
