// Package cache provides pluggable caching for the visualization pipeline.
//
// # Overview
//
// The pipeline caches expensive artifacts (rendered SVG/PNG bytes, computed
// layouts) keyed by content hashes of their inputs, so repeated renders of
// an unchanged dataset are instant. Three backends implement [Cache]:
//
//   - [FileCache]: on-disk cache for CLI usage (XDG cache directory)
//   - [RedisCache]: shared cache for multi-instance preview deployments
//   - [NullCache]: disabled caching for tests and --no-cache
//
// Keys are produced by a [Keyer], which hashes the inputs that influence a
// stage's output. Use [NewScopedKeyer] to namespace keys per dataset or
// deployment.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per pipeline stage. Layouts and artifacts are keyed by content
// hashes of their inputs, so they never go stale and get no expiry. Fetched
// datasets are keyed by source and can change upstream.
const (
	TTLDataset  = 15 * time.Minute
	TTLLayout   = time.Duration(0)
	TTLArtifact = time.Duration(0)
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts captures the options that influence layout computation.
type LayoutKeyOpts struct {
	VizType       string  `json:"viz_type"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	OpenOutermost bool    `json:"open_outermost"`
	Detailed      bool    `json:"detailed"`
}

// ArtifactKeyOpts captures the options that influence rendered output.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style"`
	Popups bool   `json:"popups"`
	Search bool   `json:"search"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a fetched dataset.
	DatasetKey(source string) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes inputs into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for a fetched dataset.
func (k *DefaultKeyer) DatasetKey(source string) string {
	return hashKey("dataset", source)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
