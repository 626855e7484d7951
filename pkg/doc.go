// Package pkg provides the core libraries for Pedigree ancestor charts.
//
// # Overview
//
// Pedigree turns an ancestor tree (a person, their parents, their parents'
// parents) into a chart of boxes joined by elbow connectors, growing in one
// of four directions. The pkg directory is organized into four main areas:
//
//  1. [ancestry] and [io] - The record model and its JSON wire form
//  2. [chart] - Geometry, layout and text fitting
//  3. [render] - Output sinks (SVG, PNG, PDF, JSON, Graphviz DOT)
//  4. [pipeline] - Orchestration (load → draw → render) with caching
//
// # Architecture
//
// The typical data flow through Pedigree:
//
//	JSON records
//	     ↓
//	[io] package (decode, normalize, validate)
//	     ↓
//	[chart/hierarchy] package (balanced parent slots, placeholders)
//	     ↓
//	[chart/layout] package (tidy tree, orientation mapping)
//	     ↓
//	[chart] package (box geometry, fitted labels, routed links)
//	     ↓
//	SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Draw a chart and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/pedigree/pkg/chart"
//	    "github.com/matzehuels/pedigree/pkg/chart/orientation"
//	    "github.com/matzehuels/pedigree/pkg/io"
//	    "github.com/matzehuels/pedigree/pkg/render/sink"
//	)
//
//	// 1. Load the records
//	root, _ := io.ImportJSON("family.json")
//
//	// 2. Draw
//	c := chart.New(chart.Options{Orientation: orientation.LeftRight}, nil, nil)
//	d := c.Draw(root)
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(d)
//
// # Main Packages
//
// ## Records
//
// [ancestry] - The [ancestry.Person] record with up to two parents, plus
// pruning to a generation limit, normalization (pre-order IDs, father
// before mother) and structural validation.
//
// [io] - JSON import and export of record trees. Both the enveloped
// {"data": ..., "parents": [...]} form and flat records are accepted.
//
// ## Chart
//
// [chart] - Assembles a [chart.Drawing] from a record tree. The drawing
// pipeline: hierarchy → layout → geometry → labels → links.
//
//   - [chart/orientation]: The four growth directions and their box sizes
//   - [chart/hierarchy]: Parent slots balanced with placeholder boxes
//   - [chart/layout]: Tidy tree positions and Ahnentafel numbers
//   - [chart/geometry]: Box, image and text rectangles
//   - [chart/text]: Width measurement and name/date fitting
//   - [chart/label]: Text rows of a box
//   - [chart/elbow]: Orthogonal connector paths
//   - [chart/link]: Routing connectors between box edges
//
// ## Visualization
//
// [render/sink] - SVG, PNG and JSON output of a drawing.
//
// [render/nodelink] - Graphviz DOT output and Graphviz-rendered diagrams.
//
// [render/transition] - Previous box positions for animated redraws.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [fonts] - The embedded label font.
//
// ## Infrastructure
//
// [pipeline] - Complete chart pipeline (load → draw → render) used by the
// CLI and any batch worker. Ensures consistent behavior across all entry
// points.
//
// [cache] - Artifact cache with file, Redis and no-op backends, plus the
// key derivation shared by all of them.
//
// [config] - TOML/YAML configuration overlaid with PEDIGREE_* environment
// variables.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for pipeline stages and cache events.
//
// # Common Workflows
//
// Render every format through the cached pipeline:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Input:   "family.json",
//	    Formats: []string{"svg", "png", "pdf"},
//	})
//
// Inspect the geometry without rendering:
//
//	d, _ := runner.Draw(ctx, pipeline.Options{Input: "family.json"})
//	data, _ := sink.RenderJSON(d, sink.WithJSONRows())
package pkg
