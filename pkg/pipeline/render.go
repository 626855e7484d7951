package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/config"
	"github.com/matzehuels/pedigree/pkg/observability"
	"github.com/matzehuels/pedigree/pkg/render/nodelink"
	"github.com/matzehuels/pedigree/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, d *chart.Drawing, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, d, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, d *chart.Drawing, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(d, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case config.FormatSVG:
			data = sink.RenderSVG(d, svgOpts...)
		case config.FormatPNG:
			data, err = sink.RenderPNG(d, sink.WithScale(opts.Scale))
		case config.FormatPDF:
			data, err = sink.RenderPDF(ctx, d)
		case config.FormatJSON:
			data, err = sink.RenderJSON(d, sink.WithJSONRecords(), sink.WithJSONRows())
		case config.FormatDOT:
			data = []byte(nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(d *chart.Drawing, opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.EmbedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}
	if opts.Transitions != nil && slices.Contains(opts.Formats, config.FormatSVG) {
		svgOpts = append(svgOpts, sink.WithTransitions(opts.Transitions.Plan(d)))
	}
	return svgOpts
}
