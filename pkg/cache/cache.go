// Package cache provides response caching for the export service client and
// the renderer.
//
// Backends share one interface: [FileCache] for local CLI usage, [RedisCache]
// when several importers share a service, and [NullCache] to disable caching.
// Keys are built by a [Keyer] so every consumer hashes request identity the
// same way.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTL.
//
// Get returns (nil, false, nil) on a miss; errors are reserved for backend
// failures. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys for the request shapes the tool issues.
type Keyer interface {
	// ExportKey identifies an export-record fetch (service base URL + asset path).
	ExportKey(service, path string) string

	// RawKey identifies a raw-payload fetch.
	RawKey(service, path string) string

	// RenderKey identifies a rendered artifact for a graph content hash.
	RenderKey(graphHash, format string) string
}

// DefaultKeyer hashes request identity with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ExportKey generates a key for an export-record fetch.
func (k *DefaultKeyer) ExportKey(service, path string) string {
	return hashKey("export", service, path)
}

// RawKey generates a key for a raw-payload fetch.
func (k *DefaultKeyer) RawKey(service, path string) string {
	return hashKey("raw", service, path)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(graphHash, format string) string {
	return hashKey("render", graphHash, format)
}
