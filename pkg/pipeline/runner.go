package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toolradar/pkg/cache"
	"github.com/matzehuels/toolradar/pkg/dataset"
	"github.com/matzehuels/toolradar/pkg/observability"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
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

// Execute runs the complete load → position → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Title = ds.Title
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ToolCount = len(ds.Tools)
	result.Stats.Unrecognized = ds.Unrecognized()
	result.CacheInfo.LoadHit = loadHit

	// Content hash for cache keys and API responses
	if data, err := json.Marshal(ds); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("loaded dataset",
		"source", opts.Source(),
		"tools", len(ds.Tools),
		"duration", result.Stats.LoadTime)

	// Stage 2: Position
	positionStart := time.Now()
	layout, positionHit, err := r.PositionWithCacheInfo(ctx, ds, result.DatasetHash, opts)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	result.Layout = layout
	result.Stats.PositionTime = time.Since(positionStart)
	result.Stats.PlacedCount = len(layout.Placements)
	result.CacheInfo.PositionHit = positionHit

	r.Logger.Info("computed layout",
		"viz_type", opts.VizType,
		"placed", len(layout.Placements),
		"duration", result.Stats.PositionTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads the dataset with caching and returns cache hit info.
// Only remote datasets are cached; local files are read directly.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*dataset.Dataset, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnLoadStart(ctx, opts.Source())
	start := time.Now()

	if opts.URL == "" {
		ds, err := Load(ctx, opts)
		observability.Pipeline().OnLoadComplete(ctx, opts.Source(), toolCount(ds), time.Since(start), err)
		return ds, false, err
	}

	cacheKey := r.Keyer.DatasetKey(opts.URL)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var ds dataset.Dataset
			if err := json.Unmarshal(data, &ds); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				observability.Pipeline().OnLoadComplete(ctx, opts.Source(), len(ds.Tools), time.Since(start), nil)
				return &ds, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	ds, err := Load(ctx, opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.Source(), toolCount(ds), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(ds); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset)
		observability.Cache().OnCacheSet(ctx, "dataset", len(data))
	}

	return ds, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	ds, _, err := r.LoadWithCacheInfo(ctx, opts)
	return ds, err
}

// PositionWithCacheInfo computes a layout with caching and returns cache hit info.
// datasetHash may be "" to derive it from the dataset.
func (r *Runner) PositionWithCacheInfo(ctx context.Context, ds *dataset.Dataset, datasetHash string, opts Options) (*radar.Layout, bool, error) {
	if err := opts.ValidateForPosition(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if datasetHash == "" {
		if data, err := json.Marshal(ds); err == nil {
			datasetHash = cache.Hash(data)
		}
	}
	cacheKey := r.Keyer.LayoutKey(datasetHash, opts.LayoutKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		cached, err := radar.ReadLayout(bytes.NewReader(data))
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	observability.Pipeline().OnPositionStart(ctx, opts.VizType, toolCount(ds))
	start := time.Now()
	layout, err := Position(ds, opts)
	observability.Pipeline().OnPositionComplete(ctx, opts.VizType, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := radar.WriteLayout(layout, &buf); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", buf.Len())
	}

	return layout, false, nil
}

// Position is a convenience wrapper that calls PositionWithCacheInfo and discards the cache hit info.
func (r *Runner) Position(ctx context.Context, ds *dataset.Dataset, opts Options) (*radar.Layout, error) {
	layout, _, err := r.PositionWithCacheInfo(ctx, ds, "", opts)
	return layout, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout *radar.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	var layoutBuf bytes.Buffer
	if err := radar.WriteLayout(layout, &layoutBuf); err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutBuf.Bytes())

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(layout, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout *radar.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
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

func toolCount(ds *dataset.Dataset) int {
	if ds == nil {
		return 0
	}
	return len(ds.Tools)
}
