package domain

import "context"

// Source is the shared contract for reading content documents by slash-separated path.
// A missing document yields an error wrapping ErrNotFound.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}
