package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
	"github.com/kailas-cloud/pagedex/internal/domain/search/query"
	"github.com/kailas-cloud/pagedex/internal/metrics"
)

// Hit is a matched method prepared for display.
type Hit struct {
	Method          method.Method
	Score           int
	Signature       string // formatted for the requested standard
	SignatureHTML   string
	DescriptionHTML string
}

// Result is the outcome of one search.
type Result struct {
	Query    query.Query
	Standard method.Standard
	Total    int // size of the reference list
	Hits     []Hit
}

// Service searches the method reference.
type Service struct {
	methods    MethodLoader
	defaultStd method.Standard
}

// New creates a reference service. defaultStd applies when a search names no standard.
func New(methods MethodLoader, defaultStd method.Standard) *Service {
	return &Service{methods: methods, defaultStd: defaultStd}
}

// DefaultStandard returns the standard used when none is requested.
func (s *Service) DefaultStandard() method.Standard { return s.defaultStd }

// Search loads the reference list and ranks it against rawQuery.
func (s *Service) Search(ctx context.Context, rawQuery string, std method.Standard) (Result, error) {
	methods, err := s.methods.Methods(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load methods: %w", err)
	}

	q := query.New(rawQuery)

	start := time.Now()
	scored := Filter(methods, q, std)
	metrics.FilterDuration.Observe(time.Since(start).Seconds())
	metrics.FilterResults.Observe(float64(len(scored)))

	hits := make([]Hit, 0, len(scored))
	for _, sc := range scored {
		m := methods[sc.Index()]
		formatted := method.FormatSignature(m.Signature, std)
		hits = append(hits, Hit{
			Method:          m,
			Score:           sc.Score(),
			Signature:       formatted,
			SignatureHTML:   method.HighlightSignature(formatted),
			DescriptionHTML: method.FormatDescription(m.Description),
		})
	}

	return Result{Query: q, Standard: std, Total: len(methods), Hits: hits}, nil
}
