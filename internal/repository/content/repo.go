package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/domain/portfolio"
	"github.com/kailas-cloud/pagedex/internal/domain/post"
)

// Paths locates the content documents within a source.
type Paths struct {
	Methods   string
	PostIndex string
	PostDir   string
	Portfolio string
}

// DefaultPaths returns the layout of the published site.
func DefaultPaths() Paths {
	return Paths{
		Methods:   "lyah/lyah.json",
		PostIndex: "blog/posts/index.json",
		PostDir:   "blog/posts",
		Portfolio: "portfolio/data.json",
	}
}

// Repository decodes content documents into domain types.
type Repository struct {
	src   domain.Source
	paths Paths
}

// New creates a content repository. Empty paths fall back to DefaultPaths.
func New(src domain.Source, paths Paths) *Repository {
	def := DefaultPaths()
	if paths.Methods == "" {
		paths.Methods = def.Methods
	}
	if paths.PostIndex == "" {
		paths.PostIndex = def.PostIndex
	}
	if paths.PostDir == "" {
		paths.PostDir = def.PostDir
	}
	if paths.Portfolio == "" {
		paths.Portfolio = def.Portfolio
	}
	return &Repository{src: src, paths: paths}
}

// Methods loads the reference list.
func (r *Repository) Methods(ctx context.Context) ([]method.Method, error) {
	data, err := r.fetch(ctx, r.paths.Methods)
	if err != nil {
		return nil, err
	}

	var methods []method.Method
	if err := json.Unmarshal(data, &methods); err != nil {
		return nil, domain.NewDocumentError(r.paths.Methods, err)
	}
	for i, m := range methods {
		if m.Signature == "" {
			return nil, domain.NewDocumentError(r.paths.Methods, fmt.Errorf("method %d: signature is required", i))
		}
	}
	return methods, nil
}

// PostIndex loads the blog index.
func (r *Repository) PostIndex(ctx context.Context) (post.Index, error) {
	data, err := r.fetch(ctx, r.paths.PostIndex)
	if err != nil {
		return nil, err
	}

	idx, err := post.ParseIndex(data)
	if err != nil {
		return nil, domain.NewDocumentError(r.paths.PostIndex, err)
	}
	return idx, nil
}

// PostBody loads the Markdown source of a post. Callers must only pass slugs from the index.
func (r *Repository) PostBody(ctx context.Context, slug string) ([]byte, error) {
	return r.fetch(ctx, path.Join(r.paths.PostDir, slug+".md"))
}

// Portfolio loads the portfolio document.
func (r *Repository) Portfolio(ctx context.Context) (portfolio.Data, error) {
	data, err := r.fetch(ctx, r.paths.Portfolio)
	if err != nil {
		return portfolio.Data{}, err
	}

	var d portfolio.Data
	if err := json.Unmarshal(data, &d); err != nil {
		return portfolio.Data{}, domain.NewDocumentError(r.paths.Portfolio, err)
	}
	return d, nil
}

func (r *Repository) fetch(ctx context.Context, p string) ([]byte, error) {
	data, err := r.src.Fetch(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("document %s: %w", p, err)
		}
		return nil, fmt.Errorf("load %s: %w", p, err)
	}
	return data, nil
}
