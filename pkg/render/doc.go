// Package render turns chart drawings into output files.
//
// # Overview
//
// A [chart.Drawing] is plain geometry. The subpackages render it:
//
//   - [sink]: SVG, PNG, PDF and JSON output of the pedigree chart
//   - [nodelink]: a Graphviz node-link diagram of the same tree
//   - [transition]: previous positions for animated redraws
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(drawing)
//	pdf, err := render.ToPDF(ctx, svg)
//
// Charts rendered to PNG by [sink.RenderPNG] are drawn natively and do not
// need librsvg.
//
// [chart.Drawing]: github.com/matzehuels/pedigree/pkg/chart.Drawing
// [sink]: github.com/matzehuels/pedigree/pkg/render/sink
// [sink.RenderPNG]: github.com/matzehuels/pedigree/pkg/render/sink.RenderPNG
// [nodelink]: github.com/matzehuels/pedigree/pkg/render/nodelink
// [transition]: github.com/matzehuels/pedigree/pkg/render/transition
package render
