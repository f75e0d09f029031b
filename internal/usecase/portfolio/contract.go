package portfolio

import (
	"context"

	domportfolio "github.com/kailas-cloud/pagedex/internal/domain/portfolio"
)

// DataLoader loads the portfolio document.
type DataLoader interface {
	Portfolio(ctx context.Context) (domportfolio.Data, error)
}
