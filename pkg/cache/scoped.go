package cache

// ScopedKeyer wraps a Keyer with a prefix so separate projects or users can
// share one backend without key collisions.
//
// Example usage:
//
//	// Keys for one project tree
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:fortnite:")
//
//	// Unscoped keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ExportKey generates a prefixed key for an export-record fetch.
func (k *ScopedKeyer) ExportKey(service, path string) string {
	return k.prefix + k.inner.ExportKey(service, path)
}

// RawKey generates a prefixed key for a raw-payload fetch.
func (k *ScopedKeyer) RawKey(service, path string) string {
	return k.prefix + k.inner.RawKey(service, path)
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(graphHash, format string) string {
	return k.prefix + k.inner.RenderKey(graphHash, format)
}
