package post

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Post is the metadata of one blog post. Dates use the YYYY/MM/DD form.
type Post struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	PublishedAt   string `json:"publishedAt"`
	LastUpdatedAt string `json:"lastUpdatedAt,omitempty"`
}

// DateLine returns the publication date, followed by the last update date when there is one.
func (p Post) DateLine() string {
	if p.LastUpdatedAt == "" {
		return p.PublishedAt
	}
	return p.PublishedAt + " (last updated " + p.LastUpdatedAt + ")"
}

// Entry is a post together with its slug.
type Entry struct {
	Slug string `json:"slug"`
	Post
}

// Index is the ordered list of posts as declared in the index document.
type Index []Entry

// ParseIndex decodes an index document: a JSON object mapping slugs to posts.
// Key order is preserved.
func ParseIndex(data []byte) (Index, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("index must be a JSON object")
	}

	var idx Index
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read slug: %w", err)
		}
		slug, _ := tok.(string)
		if slug == "" {
			return nil, errors.New("post slug must be a non-empty string")
		}

		var p Post
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode post %q: %w", slug, err)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("post %q: title is required", slug)
		}

		if _, dup := seen[slug]; dup {
			// Later keys win, keeping the position of the first one.
			for i := range idx {
				if idx[i].Slug == slug {
					idx[i].Post = p
				}
			}
			continue
		}
		seen[slug] = struct{}{}
		idx = append(idx, Entry{Slug: slug, Post: p})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read index end: %w", err)
	}
	return idx, nil
}

// Lookup finds a post by slug.
func (idx Index) Lookup(slug string) (Post, bool) {
	for _, e := range idx {
		if e.Slug == slug {
			return e.Post, true
		}
	}
	return Post{}, false
}

// Newest returns the entries in reverse declaration order, the newest post first.
func (idx Index) Newest() Index {
	out := make(Index, len(idx))
	for i, e := range idx {
		out[len(idx)-1-i] = e
	}
	return out
}
