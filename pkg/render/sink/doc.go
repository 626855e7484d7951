// Package sink renders a computed [chart.Drawing] into output formats.
//
// # Overview
//
// A sink turns the plain geometry of a drawing into bytes. This package
// provides:
//
//   - SVG: standalone document with CSS classes per sex and row kind
//   - PNG: native rasterization with the embedded Go fonts
//   - PDF: print output via SVG conversion (requires rsvg-convert)
//   - JSON: node and link geometry for external tools
//
// # SVG Output
//
// [RenderSVG] draws the links first, then one group per box. Each group
// carries the box id, its Ahnentafel number in data-sosa, and a translate
// transform to the box centre, so a client can restyle or animate boxes
// without recomputing the layout:
//
//	svg := sink.RenderSVG(d,
//	    sink.WithEmbeddedFont(),
//	    sink.WithTransitions(table.Plan(d)),
//	)
//
// Name rows keep one tspan per name part. Preferred names and family names
// get their own classes, and abbreviated rows carry the full text in a
// title element.
//
// # PNG Output
//
// [RenderPNG] draws the same geometry with gg at a configurable scale.
// Thumbnails are not downloaded; only their frame is drawn.
//
// # JSON Output
//
// [RenderJSON] exports the flat node list with per-box geometry and the
// link list with SVG path data. [WithJSONRecords] and [WithJSONRows] add the
// person records and the fitted text rows.
//
// [chart.Drawing]: github.com/matzehuels/pedigree/pkg/chart.Drawing
package sink
