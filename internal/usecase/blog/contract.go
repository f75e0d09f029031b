package blog

import (
	"context"

	"github.com/kailas-cloud/pagedex/internal/domain/post"
)

// PostRepository loads the blog index and post sources.
type PostRepository interface {
	PostIndex(ctx context.Context) (post.Index, error)
	PostBody(ctx context.Context, slug string) ([]byte, error)
}

// Renderer converts a post source to HTML.
type Renderer interface {
	Render(src []byte) (string, error)
}
