package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/arbor/pkg/cache"
	"github.com/matzehuels/arbor/pkg/errors"
	treeio "github.com/matzehuels/arbor/pkg/io"
	"github.com/matzehuels/arbor/pkg/observability"
	"github.com/matzehuels/arbor/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
// Cancellation is checked between stages; a growth run is never interrupted.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Generate
	growStart := time.Now()
	t, treeHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Tree = t
	result.Stats.GrowTime = time.Since(growStart)
	result.CacheInfo.TreeHit = treeHit
	fillTreeStats(&result.Stats, t)

	if hash, err := treeHash(t); err == nil {
		result.TreeHash = hash
	}

	logger.Info("grew tree",
		"nodes", result.Stats.Nodes,
		"iterations", result.Stats.Iterations,
		"unreached", result.Stats.Unreached,
		"cached", treeHit,
		"duration", result.Stats.GrowTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, t, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo grows a tree with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*tree.Tree, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}

	settingsHash, err := opts.SettingsHash()
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.TreeKey(settingsHash, opts.TreeKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			doc, err := treeio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "tree")
				return doc.Tree, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached tree", "err", err)
		} else if err != nil {
			opts.Logger.Debug("cache read failed", "err", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "tree")

	t, err := Generate(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := treeio.WriteJSON(treeio.Document{Tree: t}, &buf); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TreeTTL); err != nil {
			opts.Logger.Debug("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "tree", buf.Len())
		}
	}

	return t, false, nil
}

// Generate grows a tree without touching any cache.
func Generate(ctx context.Context, opts Options) (*tree.Tree, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnGrowStart(ctx, opts.Settings.AttractionPoints)
	start := time.Now()

	t, err := opts.Settings.Generate(tree.WithLogger(opts.Logger))
	if err != nil {
		hooks.OnGrowComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnGrowComplete(ctx, t.Len(), t.Iterations, time.Since(start), nil)
	return t, nil
}

// RenderWithCacheInfo renders t in every requested format with caching and
// returns whether all artifacts came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *tree.Tree, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hash, err := treeHash(t)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash tree for cache key")
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, t, renderOpts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func fillTreeStats(s *Stats, t *tree.Tree) {
	ts := t.Stats()
	s.Nodes = ts.Nodes
	s.Segments = max(ts.Nodes-1, 0)
	s.Leaves = ts.Leaves
	s.Depth = ts.Depth
	s.Iterations = ts.Iterations
	s.Unreached = ts.Unreached
}

// treeHash hashes the settings-free JSON encoding of t.
func treeHash(t *tree.Tree) (string, error) {
	var buf bytes.Buffer
	if err := treeio.WriteJSON(treeio.Document{Tree: t}, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}
