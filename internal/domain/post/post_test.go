package post

import "testing"

const indexDoc = `{
	"hello-world": {"title": "Hello", "publishedAt": "2024/01/02"},
	"second": {"title": "Second", "description": "more", "publishedAt": "2024/03/04", "lastUpdatedAt": "2024/05/06"},
	"third": {"title": "Third", "publishedAt": "2024/07/08"}
}`

func TestParseIndex_PreservesOrder(t *testing.T) {
	idx, err := ParseIndex([]byte(indexDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(idx))
	}
	want := []string{"hello-world", "second", "third"}
	for i, slug := range want {
		if idx[i].Slug != slug {
			t.Errorf("idx[%d].Slug = %q, want %q", i, idx[i].Slug, slug)
		}
	}
	if idx[1].Description != "more" {
		t.Errorf("description = %q", idx[1].Description)
	}
}

func TestParseIndex_Empty(t *testing.T) {
	idx, err := ParseIndex([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) != 0 {
		t.Fatalf("expected empty index, got %d", len(idx))
	}
}

func TestParseIndex_Invalid(t *testing.T) {
	tests := map[string]string{
		"array":         `[]`,
		"missing title": `{"a": {"publishedAt": "2024/01/01"}}`,
		"truncated":     `{"a": {"title": "x"}`,
		"not json":      `nope`,
		"empty slug":    `{"": {"title": "x"}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseIndex([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseIndex_DuplicateSlugKeepsFirstPosition(t *testing.T) {
	idx, err := ParseIndex([]byte(`{"a": {"title": "A1"}, "b": {"title": "B"}, "a": {"title": "A2"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(idx) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(idx))
	}
	if idx[0].Slug != "a" || idx[0].Title != "A2" {
		t.Errorf("idx[0] = %+v", idx[0])
	}
}

func TestIndex_Newest(t *testing.T) {
	idx, _ := ParseIndex([]byte(indexDoc))
	newest := idx.Newest()
	if newest[0].Slug != "third" || newest[2].Slug != "hello-world" {
		t.Errorf("unexpected order: %v, %v", newest[0].Slug, newest[2].Slug)
	}
	if idx[0].Slug != "hello-world" {
		t.Error("Newest must not reorder the receiver")
	}
}

func TestIndex_Lookup(t *testing.T) {
	idx, _ := ParseIndex([]byte(indexDoc))
	p, ok := idx.Lookup("second")
	if !ok || p.Title != "Second" {
		t.Fatalf("Lookup(second) = %+v, %v", p, ok)
	}
	if _, ok := idx.Lookup("missing"); ok {
		t.Error("expected miss")
	}
}

func TestPost_DateLine(t *testing.T) {
	p := Post{PublishedAt: "2024/03/04"}
	if got := p.DateLine(); got != "2024/03/04" {
		t.Errorf("DateLine() = %q", got)
	}
	p.LastUpdatedAt = "2024/05/06"
	if got := p.DateLine(); got != "2024/03/04 (last updated 2024/05/06)" {
		t.Errorf("DateLine() = %q", got)
	}
}
