package health

import "context"

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// SourceChecker checks content source availability.
type SourceChecker interface {
	HealthCheck(ctx context.Context) error
}
