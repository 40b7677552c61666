// Package cache defines the store interface for encoded WKT results.
// Encoding is a pure function of the geometry, so entries never go
// stale; TTLs only bound memory on the shared tier.
package cache

import "context"

type Store interface {
	// Get returns the cached WKT for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (wkt string, ok bool)
	// Set stores the WKT for key. Callers treat Set as best effort.
	Set(ctx context.Context, key, wkt string)
}
