// Package keys builds cache keys for encoded geometries.
package keys

import (
	"fmt"
	"strings"

	"github.com/bloomberg/mapnik/internal/geometry"
)

// Key returns the cache key for g: kind, vertex count, and the 64-bit
// content fingerprint in hex. The count is redundant with the hash but
// makes keys readable in redis-cli.
func Key(g geometry.Geometry) string {
	kind := strings.ToLower(g.Type.String())
	return fmt.Sprintf("wkt:%s:n=%d:f=%016x", kind, g.VertexCount(), g.Fingerprint())
}
