package sink

import (
	"encoding/json"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/label"
	pio "github.com/matzehuels/pedigree/pkg/io"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	records bool
	rows    bool
}

// WithJSONRecords includes the full person record of every box, not only
// its xref and name.
func WithJSONRecords() JSONOption { return func(r *jsonRenderer) { r.records = true } }

// WithJSONRows includes the fitted text rows of every box.
func WithJSONRows() JSONOption { return func(r *jsonRenderer) { r.rows = true } }

type jsonOutput struct {
	BuildID     string     `json:"build_id"`
	Orientation string     `json:"orientation"`
	BoxWidth    float64    `json:"box_width"`
	BoxHeight   float64    `json:"box_height"`
	Bounds      jsonRect   `json:"bounds"`
	Nodes       []jsonNode `json:"nodes"`
	Links       []jsonLink `json:"links"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius,omitempty"`
}

type jsonNode struct {
	ID          int       `json:"id"`
	Sosa        int       `json:"sosa"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Generation  int       `json:"generation"`
	Class       string    `json:"class"`
	Placeholder bool      `json:"placeholder,omitempty"`
	Xref        string    `json:"xref,omitempty"`
	Name        string    `json:"name,omitempty"`
	Data        any       `json:"data,omitempty"`
	Box         jsonRect  `json:"box"`
	Image       *jsonRect `json:"image,omitempty"`
	Rows        []jsonRow `json:"rows,omitempty"`
}

type jsonRow struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Anchor string  `json:"anchor"`
	Text   string  `json:"text"`
	Title  string  `json:"title,omitempty"`
	Marker string  `json:"marker,omitempty"`
	RTL    bool    `json:"rtl,omitempty"`
	Abbrev bool    `json:"abbreviated,omitempty"`
}

type jsonLink struct {
	Source int    `json:"source"`
	Target int    `json:"target,omitempty"`
	Path   string `json:"path"`
}

// RenderJSON exports the drawing as a pretty-printed JSON document: the
// flat node list with box geometry, and the link list with SVG path data.
// It does not modify d and is safe to call concurrently.
func RenderJSON(d *chart.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Nodes: []jsonNode{},
		Links: []jsonLink{},
	}
	if d != nil {
		out.BuildID = d.BuildID.String()
		out.Orientation = d.Orientation.String()
		out.BoxWidth, out.BoxHeight = d.BoxWidth, d.BoxHeight
		out.Bounds = toJSONRect(d.Bounds)
		for _, n := range d.Nodes {
			out.Nodes = append(out.Nodes, r.node(n))
		}
		for _, l := range d.Links {
			out.Links = append(out.Links, jsonLink{Source: l.Source, Target: l.Target, Path: l.Path.String()})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) node(n chart.NodeView) jsonNode {
	jn := jsonNode{
		ID:          n.ID,
		Sosa:        n.Sosa,
		X:           n.X,
		Y:           n.Y,
		Generation:  n.Generation,
		Class:       n.Class,
		Placeholder: n.Placeholder,
		Box:         toJSONRect(n.Box),
	}
	if p := n.Person; p != nil {
		jn.Xref, jn.Name = p.Xref, p.Name
		if r.records {
			jn.Data = pio.Record(p)
		}
	}
	if n.Image.W > 0 {
		img := toJSONRect(n.Image)
		jn.Image = &img
	}
	if r.rows {
		for _, row := range n.Rows {
			jn.Rows = append(jn.Rows, toJSONRow(row))
		}
	}
	return jn
}

func toJSONRect(r geometry.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.W, Height: r.H, Radius: r.Radius}
}

func toJSONRow(row label.Row) jsonRow {
	return jsonRow{
		Kind:   row.Kind.Class(),
		X:      row.X,
		Y:      row.Y,
		Anchor: row.Anchor,
		Text:   row.Content(),
		Title:  row.Title,
		Marker: row.Marker,
		RTL:    row.RTL,
		Abbrev: row.Title != "" && row.Title != row.Content(),
	}
}
