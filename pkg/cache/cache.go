// Package cache provides content-addressed caching of rendered artifacts.
//
// Rendering the same diagram twice produces byte-identical output, so
// artifacts are cached under a hash of everything that feeds the render:
// layer counts, style, viewport, and format. Entries are ephemeral and
// TTL-bound; the cache never stores user diagrams, only derivations.
//
// Backends:
//   - FileCache: per-user directory, for the CLI
//   - RedisCache: shared TTL store, for the HTTP host
//   - NullCache: disabled caching, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Renders are
// cheap to recompute, so a day is generous.
const TTLArtifact = 24 * time.Hour

// Cache is the storage interface shared by all backends.
// Get reports a miss with ok=false and a nil error; errors are reserved
// for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts carries the render settings that distinguish artifacts
// computed from the same scene input.
type ArtifactKeyOpts struct {
	Format        string `json:"format"`
	NoTransitions bool   `json:"no_transitions,omitempty"`
}

// Keyer generates cache keys. The default implementation hashes its
// inputs; wrap or replace it to change key layout.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact given the hash
	// of the layout inputs and the render options.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}
