package ports

import "context"

// IdempotencyStore remembers which client a create request key produced.
type IdempotencyStore interface {
	// Lookup returns the client id recorded for key, and false when the key
	// has not been seen.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, clientID int64) error
}
