package chi

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/domain/portfolio"
	"github.com/kailas-cloud/pagedex/internal/domain/post"
	bloguc "github.com/kailas-cloud/pagedex/internal/usecase/blog"
	healthuc "github.com/kailas-cloud/pagedex/internal/usecase/health"
	referenceuc "github.com/kailas-cloud/pagedex/internal/usecase/reference"
)

// ReferenceSearcher ranks the method reference.
type ReferenceSearcher interface {
	Search(ctx context.Context, rawQuery string, std method.Standard) (referenceuc.Result, error)
	DefaultStandard() method.Standard
}

// BlogReader serves blog posts.
type BlogReader interface {
	List(ctx context.Context) (post.Index, error)
	Get(ctx context.Context, slug string) (bloguc.Article, error)
}

// PortfolioReader serves the portfolio page.
type PortfolioReader interface {
	Page(ctx context.Context) (portfolio.Page, error)
}

// HealthReporter runs health checks.
type HealthReporter interface {
	Check(ctx context.Context) healthuc.Report
}

// CachePurger drops cached documents.
type CachePurger interface {
	Purge(ctx context.Context) (int64, error)
}

// PageRenderer executes HTML page templates.
type PageRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// Server serves the JSON API and the HTML pages.
type Server struct {
	reference     ReferenceSearcher
	blog          BlogReader
	portfolio     PortfolioReader
	health        HealthReporter
	cache         CachePurger
	pages         PageRenderer
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates a server. cache may be nil when documents are not cached.
func NewServer(
	reference ReferenceSearcher,
	blog BlogReader,
	portfolio PortfolioReader,
	health HealthReporter,
	cache CachePurger,
	pages PageRenderer,
	logger *zap.Logger,
) *Server {
	return &Server{
		reference:     reference,
		blog:          blog,
		portfolio:     portfolio,
		health:        health,
		cache:         cache,
		pages:         pages,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}
