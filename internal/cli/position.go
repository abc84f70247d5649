package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/pipeline"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// positionCommand creates the position command for computing layouts.
func (c *CLI) positionCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "position [dataset.toml]",
		Short: "Compute tool positions from a dataset",
		Long: `Compute tool positions from a dataset.

The position command loads a TOML dataset, assigns every recognized tool a
deterministic position inside its category band, and writes the result as a
layout.json file. The same dataset always produces the same layout.

Use 'render' as a shortcut to go directly from dataset to visual output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Dataset = args[0]
			}
			if opts.VizType != "" {
				if err := pipeline.ValidateVizType(opts.VizType); err != nil {
					return err
				}
			}
			return c.runPosition(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: derived from dataset name)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "fetch the dataset from a URL instead of a file")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: radar (default), flow")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height")
	cmd.Flags().BoolVar(&opts.OpenOutermost, "open-outermost", false, "extend the outermost band to the frame edge")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include descriptions in flow board labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the dataset cache when fetching from a URL")

	return cmd
}

// runPosition loads the dataset, computes the layout, and writes layout.json.
func (c *CLI) runPosition(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := opts.ValidateForLoad(); err != nil {
		return err
	}
	if err := opts.ValidateForPosition(); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Positioning %s...", opts.Source()))
	spinner.Start()

	ds, _, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Load failed")
		return err
	}

	layout, cacheHit, err := runner.PositionWithCacheInfo(ctx, ds, "", opts)
	if err != nil {
		spinner.StopWithError("Positioning failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Placed %d tools", len(layout.Placements)))

	path := output
	if path == "" && opts.URL != "" {
		path = appName + "_layout.json"
	}
	if path == "" {
		path = basePath("", opts.Source()) + "_layout.json"
	}
	if err := radar.WriteLayoutFile(layout, path); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	printSuccess("Computed %s layout", layout.VizType)
	printFile(path)
	printStats(len(ds.Tools), len(layout.Placements), cacheHit)
	for _, id := range ds.Unrecognized() {
		printWarning("Skipped %q (unrecognized category)", id)
	}
	printNextStep("Render it", fmt.Sprintf("toolradar visualize %s", path))
	return nil
}
