package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/domain/post"
)

// Article is a post with its rendered body.
type Article struct {
	post.Entry
	HTML string `json:"html"`
}

// Service serves the blog.
type Service struct {
	posts    PostRepository
	renderer Renderer
}

// New creates a blog service.
func New(posts PostRepository, renderer Renderer) *Service {
	return &Service{posts: posts, renderer: renderer}
}

// List returns the posts, newest first.
func (s *Service) List(ctx context.Context) (post.Index, error) {
	idx, err := s.posts.PostIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load post index: %w", err)
	}
	return idx.Newest(), nil
}

// Get returns the post with the given slug. Only slugs declared in the index are served.
func (s *Service) Get(ctx context.Context, slug string) (Article, error) {
	idx, err := s.posts.PostIndex(ctx)
	if err != nil {
		return Article{}, fmt.Errorf("load post index: %w", err)
	}

	p, ok := idx.Lookup(slug)
	if !ok {
		return Article{}, fmt.Errorf("%w: %q", domain.ErrPostNotFound, slug)
	}

	src, err := s.posts.PostBody(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Article{}, fmt.Errorf("%w: body of %q: %w", domain.ErrPostNotFound, slug, err)
		}
		return Article{}, fmt.Errorf("load post body: %w", err)
	}

	html, err := s.renderer.Render(src)
	if err != nil {
		return Article{}, fmt.Errorf("render post %q: %w", slug, err)
	}

	return Article{Entry: post.Entry{Slug: slug, Post: p}, HTML: html}, nil
}
