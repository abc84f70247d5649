package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/toolradar/pkg/dataset"
	"github.com/matzehuels/toolradar/pkg/radar"
	"github.com/matzehuels/toolradar/pkg/radar/position"
	"github.com/matzehuels/toolradar/pkg/render"
	"github.com/matzehuels/toolradar/pkg/render/flowboard"
	"github.com/matzehuels/toolradar/pkg/render/radarview"
	"github.com/matzehuels/toolradar/pkg/render/radarview/styles"
)

// pngScale is the raster resolution multiplier for PNG export.
const pngScale = 2.0

// Load reads and validates a dataset from the configured source.
func Load(ctx context.Context, opts Options) (*dataset.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	var (
		ds  *dataset.Dataset
		err error
	)
	if opts.URL != "" {
		ds, err = dataset.Fetch(ctx, opts.URL)
	} else {
		ds, err = dataset.Load(opts.Dataset)
	}
	if err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	if dropped := ds.Unrecognized(); len(dropped) > 0 {
		opts.Logger.Warn("dropping tools with unrecognized categories",
			"tools", dropped)
	}

	return ds, nil
}

// Position computes a layout for the dataset. For radar layouts each
// recognized tool gets a deterministic placement; for flow boards the
// dataset is compiled to Graphviz DOT.
func Position(ds *dataset.Dataset, opts Options) (*radar.Layout, error) {
	if err := opts.ValidateForPosition(); err != nil {
		return nil, err
	}

	l := &radar.Layout{
		VizType: opts.VizType,
		Width:   opts.Width,
		Height:  opts.Height,
		Style:   opts.Style,
		Title:   ds.Title,
	}

	if opts.IsFlow() {
		l.DOT = flowboard.ToDOT(ds.Tools, flowboard.Options{
			Detailed: opts.Detailed,
			Title:    ds.Title,
		})
		l.Engine = "dot"
		return l, nil
	}

	cx, cy, maxRadius := opts.Quadrant()
	rings := radar.DefaultRings(maxRadius)
	rings.OpenOutermost = opts.OpenOutermost
	if err := rings.Validate(); err != nil {
		return nil, err
	}

	l.CenterX = cx
	l.CenterY = cy
	l.Rings = rings
	l.Placements = position.Assign(ds.Tools, rings, cx, cy)
	return l, nil
}

// RenderFromLayout renders the layout into each requested format.
func RenderFromLayout(l *radar.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	needsSVG := false
	for _, f := range opts.Formats {
		if f == FormatSVG || f == FormatPNG || f == FormatPDF {
			needsSVG = true
		}
	}
	if needsSVG {
		var err error
		svg, err = renderSVG(l, opts)
		if err != nil {
			return nil, err
		}
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[FormatSVG] = svg
		case FormatPNG:
			png, err := render.ToPNG(svg, pngScale)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[FormatPNG] = png
		case FormatPDF:
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[FormatPDF] = pdf
		case FormatJSON:
			var buf bytes.Buffer
			if err := radar.WriteLayout(l, &buf); err != nil {
				return nil, err
			}
			artifacts[FormatJSON] = buf.Bytes()
		}
	}

	return artifacts, nil
}

func renderSVG(l *radar.Layout, opts Options) ([]byte, error) {
	if l.IsFlow() {
		return flowboard.RenderSVG(l.DOT)
	}

	style, err := styles.Parse(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []radarview.SVGOption{radarview.WithStyle(style)}
	if opts.Popups {
		svgOpts = append(svgOpts, radarview.WithPopups())
	}
	if opts.Search {
		svgOpts = append(svgOpts, radarview.WithSearch())
	}
	return radarview.RenderSVG(l, svgOpts...), nil
}
