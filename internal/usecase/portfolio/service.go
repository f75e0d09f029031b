package portfolio

import (
	"context"
	"fmt"

	domportfolio "github.com/kailas-cloud/pagedex/internal/domain/portfolio"
)

// Service projects the portfolio document into a page.
type Service struct {
	data DataLoader
}

// New creates a portfolio service.
func New(data DataLoader) *Service {
	return &Service{data: data}
}

// Page loads the portfolio and resolves its technology references.
func (s *Service) Page(ctx context.Context) (domportfolio.Page, error) {
	d, err := s.data.Portfolio(ctx)
	if err != nil {
		return domportfolio.Page{}, fmt.Errorf("load portfolio: %w", err)
	}

	page, err := d.Resolve()
	if err != nil {
		return domportfolio.Page{}, fmt.Errorf("resolve portfolio: %w", err)
	}
	return page, nil
}
