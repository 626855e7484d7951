package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the dates and the Ahnentafel number to node labels.
	// When false, only the name is shown.
	Detailed bool
}

var rankdirs = map[orientation.Kind]string{
	orientation.TopBottom: "TB",
	orientation.BottomTop: "BT",
	orientation.LeftRight: "LR",
	orientation.RightLeft: "RL",
}

var fills = map[string]string{
	"male":    "\"#dbe8f6\"",
	"female":  "\"#f9dde6\"",
	"unknown": "\"#eeeeee\"",
}

// ToDOT converts a drawing to Graphviz DOT format. Edges point from each
// person to their parents and the rank direction follows the drawing's
// orientation. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
//
// Placeholder boxes are rendered with dashed outlines and no fill.
func ToDOT(d *chart.Drawing, opts Options) string {
	rankdir := "TB"
	if d != nil {
		if r, ok := rankdirs[d.Orientation]; ok {
			rankdir = r
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph pedigree {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if !d.Empty() {
		for _, n := range d.Nodes {
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n.ID), strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
		}
		buf.WriteString("\n")
		for _, l := range d.Links {
			if l.Target == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(l.Source), nodeID(l.Target))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string { return "p" + strconv.Itoa(id) }

func fmtLabel(n chart.NodeView, detailed bool) string {
	p := n.Person
	if p == nil {
		return ""
	}
	name := p.Name
	if name == "" {
		name = strings.TrimSpace(strings.Join(append(append([]string{}, p.FirstNames...), p.LastNames...), " "))
	}
	if !detailed {
		return name
	}

	lines := []string{name}
	if p.Timespan != "" {
		lines = append(lines, p.Timespan)
	}
	lines = append(lines, fmt.Sprintf("sosa: %d", n.Sosa))
	return strings.Join(lines, "\n")
}

func fmtAttrs(n chart.NodeView, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Placeholder {
		return append(attrs, "style=\"rounded,dashed\"", "color=grey")
	}
	if fill, ok := fills[n.Class]; ok {
		attrs = append(attrs, "fillcolor="+fill)
	}
	if n.Person != nil && n.Person.URL != "" {
		attrs = append(attrs, fmt.Sprintf("URL=%q", n.Person.URL))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose
// viewBox starts at the origin and whose size matches the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
