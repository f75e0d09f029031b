package dirsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterContentMetrics()
	os.Exit(m.Run())
}

func TestFetch_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "blog", "posts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "blog", "posts", "index.json"), []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data, err := s.Fetch(context.Background(), "/blog/posts/index.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestFetch_NotFound(t *testing.T) {
	s := NewFS(fstest.MapFS{})

	_, err := s.Fetch(context.Background(), "missing.json")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetch_RejectsTraversal(t *testing.T) {
	s := NewFS(fstest.MapFS{"a.md": {Data: []byte("a")}})

	for _, p := range []string{"../a.md", "x/../../a.md", "a.md/"} {
		if _, err := s.Fetch(context.Background(), p); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Fetch(%q): expected ErrNotFound, got %v", p, err)
		}
	}
}

func TestFetch_CanceledContext(t *testing.T) {
	s := NewFS(fstest.MapFS{"a.md": {Data: []byte("a")}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Fetch(ctx, "a.md"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_NotADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(f); err == nil {
		t.Fatal("expected error for a regular file")
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestHealthCheck(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
