package blog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/domain/post"
	"github.com/kailas-cloud/pagedex/internal/markdown"
)

// --- Mocks ---

type mockPosts struct {
	index    post.Index
	indexErr error
	bodies   map[string]string
	bodyErr  error
	fetched  []string
}

func (m *mockPosts) PostIndex(_ context.Context) (post.Index, error) {
	return m.index, m.indexErr
}

func (m *mockPosts) PostBody(_ context.Context, slug string) ([]byte, error) {
	m.fetched = append(m.fetched, slug)
	if m.bodyErr != nil {
		return nil, m.bodyErr
	}
	b, ok := m.bodies[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(b), nil
}

type failingRenderer struct{}

func (failingRenderer) Render(_ []byte) (string, error) { return "", errors.New("render failed") }

func newIndex() post.Index {
	return post.Index{
		{Slug: "first", Post: post.Post{Title: "First", PublishedAt: "2024/01/01"}},
		{Slug: "second", Post: post.Post{Title: "Second", PublishedAt: "2024/02/01"}},
	}
}

// --- Tests ---

func TestList_NewestFirst(t *testing.T) {
	svc := New(&mockPosts{index: newIndex()}, markdown.New())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "second" || list[1].Slug != "first" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestList_Empty(t *testing.T) {
	svc := New(&mockPosts{}, markdown.New())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no posts, got %d", len(list))
	}
}

func TestList_IndexError(t *testing.T) {
	svc := New(&mockPosts{indexErr: domain.ErrSourceUnavailable}, markdown.New())

	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestGet_RendersMarkdown(t *testing.T) {
	repo := &mockPosts{index: newIndex(), bodies: map[string]string{"first": "Hello [x](https://x.example)"}}
	svc := New(repo, markdown.New())

	a, err := svc.Get(context.Background(), "first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title != "First" || a.Slug != "first" {
		t.Errorf("unexpected article: %+v", a.Entry)
	}
	if !strings.Contains(a.HTML, `class="external"`) {
		t.Errorf("expected rendered external link, got %s", a.HTML)
	}
}

func TestGet_UnknownSlugNeverFetches(t *testing.T) {
	repo := &mockPosts{index: newIndex()}
	svc := New(repo, markdown.New())

	_, err := svc.Get(context.Background(), "../../etc/passwd")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if len(repo.fetched) != 0 {
		t.Errorf("body must not be fetched for unknown slugs, fetched %v", repo.fetched)
	}
}

func TestGet_MissingBody(t *testing.T) {
	svc := New(&mockPosts{index: newIndex(), bodies: map[string]string{}}, markdown.New())

	_, err := svc.Get(context.Background(), "second")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestGet_BodySourceError(t *testing.T) {
	svc := New(&mockPosts{index: newIndex(), bodyErr: domain.ErrSourceUnavailable}, markdown.New())

	_, err := svc.Get(context.Background(), "first")
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if errors.Is(err, domain.ErrPostNotFound) {
		t.Error("source failures must not look like a missing post")
	}
}

func TestGet_RenderError(t *testing.T) {
	repo := &mockPosts{index: newIndex(), bodies: map[string]string{"first": "x"}}
	svc := New(repo, failingRenderer{})

	if _, err := svc.Get(context.Background(), "first"); err == nil {
		t.Fatal("expected error")
	}
}
