package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/toolradar/pkg/pipeline"
)

// renderCommand creates the render command, the full dataset-to-artifact
// pipeline in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{Popups: true}

	cmd := &cobra.Command{
		Use:   "render [dataset.toml]",
		Short: "Render a dataset to SVG, PNG, PDF, or JSON",
		Long: `Render a dataset to SVG, PNG, PDF, or JSON.

The render command runs the full pipeline: load the dataset, assign every
recognized tool a deterministic position, and render the requested output
formats. Results are cached locally for faster subsequent runs.

Examples:

  toolradar render tools.toml
  toolradar render tools.toml -f svg,png -o radar
  toolradar render tools.toml --type flow --detailed
  toolradar render --url https://example.com/tools.toml --style dark`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Dataset = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "fetch the dataset from a URL instead of a file")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: radar (default), flow")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: light (default), dark")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "frame height")
	cmd.Flags().BoolVar(&opts.OpenOutermost, "open-outermost", false, "extend the outermost band to the frame edge")
	cmd.Flags().BoolVar(&opts.Popups, "popups", opts.Popups, "show hover popups with tool details")
	cmd.Flags().BoolVar(&opts.Search, "search", false, "embed a search box in the SVG")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include descriptions in flow board labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the dataset cache when fetching from a URL")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	// Remote datasets have no usable input path to derive file names from.
	if opts.URL != "" && output == "" {
		output = appName
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Source()))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, id := range result.Stats.Unrecognized {
		printWarning("Skipped %q (unrecognized category)", id)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts:   result.Artifacts,
		formats:     opts.Formats,
		input:       opts.Source(),
		output:      output,
		toolCount:   result.Stats.ToolCount,
		placedCount: result.Stats.PlacedCount,
		cacheHit:    result.CacheInfo.RenderHit,
	})
}
