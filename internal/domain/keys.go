package domain

import "context"

// KeyPrefix namespaces every key pagedex writes to the cache store.
var KeyPrefix = "pagedex:"

// HealthChecker is implemented by collaborators that can report their own availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
