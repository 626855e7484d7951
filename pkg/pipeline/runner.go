package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/cache"
	"github.com/matzehuels/pedigree/pkg/chart"
	pio "github.com/matzehuels/pedigree/pkg/io"
	"github.com/matzehuels/pedigree/pkg/observability"
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

// Execute runs the complete load → draw → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	root, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Root = root
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PersonCount = root.Count()

	treeHash, err := TreeHash(root)
	if err != nil {
		return nil, err
	}
	result.TreeHash = treeHash

	r.Logger.Info("loaded records",
		"persons", result.Stats.PersonCount,
		"generations", root.Depth(),
		"duration", result.Stats.LoadTime)

	layoutHash := cache.Hash([]byte(r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())))

	// Animated SVG depends on the previous drawing, so it is never cached.
	useCache := !opts.Refresh && opts.Transitions == nil
	if useCache {
		if artifacts, ok := r.cachedArtifacts(ctx, layoutHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			r.Logger.Info("using cached outputs", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 2: Draw
	drawStart := time.Now()
	d, err := Draw(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	result.Drawing = d
	result.Stats.DrawTime = time.Since(drawStart)
	result.Stats.NodeCount = len(d.Nodes)
	result.Stats.LinkCount = len(d.Links)

	r.Logger.Info("computed layout",
		"orientation", d.Orientation,
		"boxes", len(d.Nodes),
		"duration", result.Stats.DrawTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	r.storeArtifacts(ctx, layoutHash, opts, artifacts)
	return result, nil
}

// cachedArtifacts returns every requested format from the cache, or false
// if any of them is missing.
func (r *Runner) cachedArtifacts(ctx context.Context, layoutHash string, opts Options) (map[string][]byte, bool) {
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, "artifact")
			return nil, false
		}
		hooks.OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}
	return artifacts, true
}

func (r *Runner) storeArtifacts(ctx context.Context, layoutHash string, opts Options, artifacts map[string][]byte) {
	if opts.Transitions != nil {
		return
	}
	hooks := observability.Cache()
	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
}

// Draw loads and draws without rendering or caching.
func (r *Runner) Draw(ctx context.Context, opts Options) (*chart.Drawing, error) {
	r.applyLogger(&opts)
	root, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return Draw(ctx, root, opts)
}

// TreeHash returns the content hash of the wire form of root.
func TreeHash(root *ancestry.Person) (string, error) {
	var buf bytes.Buffer
	if err := pio.WriteJSON(root, &buf); err != nil {
		return "", fmt.Errorf("hash tree: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

// ClearCache removes every cached artifact.
func (r *Runner) ClearCache(ctx context.Context) error {
	return r.Cache.Clear(ctx)
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
