// Package nodelink renders a pedigree drawing as a plain node-link diagram.
//
// # Overview
//
// Instead of the fixed box geometry of [chart.Drawing], Graphviz lays out
// the same persons and parent links. This is useful for quick inspection of
// a record tree and for tools that consume DOT.
//
// # Usage
//
// Convert a drawing to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// The rank direction follows the drawing's orientation: down maps to TB,
// up to BT, right to LR and left to RL.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [chart.Drawing]: github.com/matzehuels/pedigree/pkg/chart.Drawing
package nodelink
