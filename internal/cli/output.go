package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/toolradar/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., radar.svg, radar.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs to writeArtifacts.
type artifactWriteParams struct {
	artifacts   map[string][]byte
	formats     []string
	input       string // source file path, used to derive output names
	output      string // explicit output path or base path
	toolCount   int
	placedCount int
	cacheHit    bool
}

// writeArtifacts writes rendered artifacts to files and prints a summary.
// A single format goes to the explicit output path (or one derived from the
// input name); multiple formats share a base path with per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	single := len(p.formats) == 1

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		var path string
		if single && p.output != "" {
			path = p.output
		} else {
			path = basePath(p.output, p.input) + "." + format
		}

		out, err := openOutput(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		written = append(written, path)
	}

	printSuccess("Generated %d file(s)", len(written))
	for _, path := range written {
		printFile(path)
	}
	printStats(p.toolCount, p.placedCount, p.cacheHit)
	return nil
}
