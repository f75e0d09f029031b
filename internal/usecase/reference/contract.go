package reference

import (
	"context"

	"github.com/kailas-cloud/pagedex/internal/domain/method"
)

// MethodLoader loads the reference list.
type MethodLoader interface {
	Methods(ctx context.Context) ([]method.Method, error)
}
