// Package pipeline provides the core visualization pipeline for Toolradar.
//
// This package implements the complete load → position → render pipeline that
// can be used by CLI, API, and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate the tool dataset from a file, URL, or store
//  2. Position: Compute deterministic placements for the dataset
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dataset: "tools.toml",
//	    VizType: "radar",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	ds, err := runner.Load(ctx, opts)
//
//	// Position with an existing dataset
//	layout, err := runner.Position(ctx, ds, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toolradar/pkg/cache"
	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Server
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 600.0

	// frameMargin is the gap between the radar quadrant and the frame edge.
	frameMargin = 20.0
)

// DefaultVizType is the default visualization type.
const DefaultVizType = radar.VizTypeRadar

// DefaultStyle is the default visual style.
const DefaultStyle = radar.StyleLight

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	radar.StyleLight: true,
	radar.StyleDark:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	radar.VizTypeRadar: true,
	radar.VizTypeFlow:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Dataset string `json:"dataset,omitempty"` // Local dataset file path
	URL     string `json:"url,omitempty"`     // Remote dataset URL
	Refresh bool   `json:"refresh,omitempty"` // Bypass the dataset cache

	// Position options
	VizType       string  `json:"viz_type,omitempty"`
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	OpenOutermost bool    `json:"open_outermost,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Popups   bool     `json:"popups,omitempty"`
	Search   bool     `json:"search,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Flow board labels with details

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Title is the dataset title.
	Title string

	// DatasetHash is the content hash of the loaded dataset.
	DatasetHash string

	// Layout contains the computed layout (placements or DOT).
	Layout *radar.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ToolCount    int
	PlacedCount  int
	Unrecognized []string
	LoadTime     time.Duration
	PositionTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit     bool // Whether the dataset came from cache
	PositionHit bool // Whether the layout came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: light, dark)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: radar, flow)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetPositionDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for dataset loading.
func (o *Options) ValidateForLoad() error {
	if o.Dataset == "" && o.URL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "dataset path or url is required")
	}
	if o.Dataset != "" && o.URL != "" {
		return errors.New(errors.ErrCodeInvalidInput, "dataset path and url are mutually exclusive")
	}
	if o.URL != "" {
		if err := errors.ValidateURL(o.URL); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetPositionDefaults sets default values for position computation.
func (o *Options) SetPositionDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForPosition validates and sets defaults for position computation.
func (o *Options) ValidateForPosition() error {
	o.SetPositionDefaults()
	return ValidateVizType(o.VizType)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetPositionDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// IsRadar returns true if this is a radar visualization.
func (o *Options) IsRadar() bool {
	return o.VizType == "" || o.VizType == radar.VizTypeRadar
}

// IsFlow returns true if this is a flow board visualization.
func (o *Options) IsFlow() bool {
	return o.VizType == radar.VizTypeFlow
}

// Source returns the dataset source identifier for logging and cache keys.
func (o *Options) Source() string {
	if o.URL != "" {
		return o.URL
	}
	return o.Dataset
}

// Quadrant returns the radar center and maximum ring radius for the frame.
// The center sits in the bottom-right corner so placements fill the up-left
// quadrant.
func (o *Options) Quadrant() (cx, cy, maxRadius float64) {
	cx = o.Width - frameMargin
	cy = o.Height - frameMargin
	maxRadius = math.Min(cx, cy) - frameMargin
	return cx, cy, maxRadius
}

// LayoutKeyOpts returns cache key options for position computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:       o.VizType,
		Width:         o.Width,
		Height:        o.Height,
		OpenOutermost: o.OpenOutermost,
		Detailed:      o.Detailed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Popups: o.Popups,
		Search: o.Search,
	}
}
