// Package cache stores generated trees and rendered artifacts between runs.
//
// Growth is deterministic for a given settings file and seed, so a tree
// grown once can be served from cache on every later run with the same
// inputs. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON entry per key under ~/.cache/arbor (CLI default)
//   - [RedisCache]: shared cache for several machines
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer] so that every input that changes the output
// also changes the key.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with found == false and a nil error. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLs for cached entries. Trees never go stale, but entries are bounded so
// an abandoned cache directory shrinks over time.
const (
	TreeTTL     = 30 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// AppName names the cache directory.
const AppName = "arbor"

// DefaultDir returns the cache directory following the XDG convention
// ($XDG_CACHE_HOME/arbor, falling back to ~/.cache/arbor).
func DefaultDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
