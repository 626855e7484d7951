// Package chart assembles a pedigree drawing from an ancestor record tree.
//
// [Chart.Draw] runs the whole geometry pipeline: the record tree is
// expanded into a hierarchy, positioned for the configured orientation,
// and every node gets its box, thumbnail and text rows while every link
// gets its routed connector. The resulting [Drawing] is plain data that
// the renderers in pkg/render turn into SVG, PNG, PDF or JSON.
//
// Subpackages hold the individual steps:
//
//   - [hierarchy] balances the tree with placeholders and assigns IDs
//   - [layout] runs the tidy tree algorithm
//   - [orientation] owns all axis and direction math
//   - [geometry] has the box formulas
//   - [text] and [label] fit the names and dates
//   - [link] and [elbow] route connectors
//
// [hierarchy]: github.com/matzehuels/pedigree/pkg/chart/hierarchy
// [layout]: github.com/matzehuels/pedigree/pkg/chart/layout
// [orientation]: github.com/matzehuels/pedigree/pkg/chart/orientation
// [geometry]: github.com/matzehuels/pedigree/pkg/chart/geometry
// [text]: github.com/matzehuels/pedigree/pkg/chart/text
// [label]: github.com/matzehuels/pedigree/pkg/chart/label
// [link]: github.com/matzehuels/pedigree/pkg/chart/link
// [elbow]: github.com/matzehuels/pedigree/pkg/chart/elbow
package chart

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/hierarchy"
	"github.com/matzehuels/pedigree/pkg/chart/label"
	"github.com/matzehuels/pedigree/pkg/chart/layout"
	"github.com/matzehuels/pedigree/pkg/chart/link"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/chart/text"
)

// Options configures a chart.
type Options struct {
	Orientation    orientation.Kind
	RTL            bool
	ShowEmptyBoxes bool
	// BoxWidth and BoxHeight override the orientation's default box size.
	BoxWidth, BoxHeight float64
}

// Chart draws pedigree charts with a fixed configuration.
type Chart struct {
	Orientation    orientation.Orientation
	ShowEmptyBoxes bool
	Fitter         *text.Fitter
	Router         *link.Router
	Logger         *log.Logger
}

// New returns a chart for opts. A nil measurer selects [text.Estimate]; a
// nil logger discards output. New panics if opts.Orientation is invalid.
func New(opts Options, m text.Measurer, logger *log.Logger) *Chart {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if m == nil {
		m = text.EstimateMeasurer
	}
	o := orientation.New(opts.Orientation, orientation.Options{
		BoxWidth:  opts.BoxWidth,
		BoxHeight: opts.BoxHeight,
		RTL:       opts.RTL,
	})
	return &Chart{
		Orientation:    o,
		ShowEmptyBoxes: opts.ShowEmptyBoxes,
		Fitter:         text.NewFitter(m, logger),
		Router:         link.NewRouter(logger),
		Logger:         logger,
	}
}

// NodeView is the derived geometry of one box. Rectangles are relative to
// the box centre (X, Y).
type NodeView struct {
	ID          int
	Sosa        int
	X, Y        float64
	Generation  int
	Person      *ancestry.Person
	Placeholder bool
	Class       string
	Box         geometry.Rect
	// Image is the thumbnail rectangle; zero when there is no thumbnail.
	Image geometry.Rect
	Rows  []label.Row
}

// LinkView is a routed connector between two boxes.
type LinkView struct {
	Source, Target int
	Path           geometry.Path
}

// Drawing is the complete derived geometry of one chart.
type Drawing struct {
	BuildID     uuid.UUID
	Orientation orientation.Kind
	BoxWidth    float64
	BoxHeight   float64
	Nodes       []NodeView
	Links       []LinkView
	Bounds      geometry.Rect
}

// Empty reports whether the drawing has nothing to render.
func (d *Drawing) Empty() bool { return d == nil || len(d.Nodes) == 0 }

// Draw computes the drawing of root. A nil root yields an empty drawing.
func (c *Chart) Draw(root *ancestry.Person) *Drawing {
	h := hierarchy.Build(root, hierarchy.Options{ShowEmptyBoxes: c.ShowEmptyBoxes})
	res := layout.Layout(h, c.Orientation)

	d := &Drawing{
		BuildID:     res.BuildID,
		Orientation: c.Orientation.Kind(),
		BoxWidth:    c.Orientation.BoxWidth(),
		BoxHeight:   c.Orientation.BoxHeight(),
		Bounds:      res.Bounds(c.Orientation),
	}
	if h == nil {
		c.Logger.Debug("nothing to draw")
		return d
	}

	box := geometry.Box(c.Orientation)
	for _, n := range res.Nodes {
		d.Nodes = append(d.Nodes, c.nodeView(n, box))
	}
	for _, r := range c.Router.Paths(res, c.Orientation) {
		lv := LinkView{Source: r.Link.Source.ID, Path: r.Path}
		if r.Link.Target != nil {
			lv.Target = r.Link.Target.ID
		}
		d.Links = append(d.Links, lv)
	}

	c.Logger.Debug("chart drawn", "build", d.BuildID, "orientation", d.Orientation, "nodes", len(d.Nodes), "links", len(d.Links))
	return d
}

func (c *Chart) nodeView(n *layout.Positioned, box geometry.Rect) NodeView {
	v := NodeView{
		ID:          n.ID,
		Sosa:        n.Node.Sosa,
		X:           n.X,
		Y:           n.Y,
		Generation:  n.Node.Generation(),
		Person:      n.Node.Person(),
		Placeholder: n.Node.IsPlaceholder(),
		Box:         box,
	}
	v.Class = n.Node.Payload.SexSlot().Class()
	if v.Placeholder {
		v.Class += " placeholder"
	}
	if v.Person.HasImage() {
		v.Image = geometry.Image(c.Orientation)
	}
	v.Rows = label.Rows(v.Person, c.Orientation, c.Fitter)
	return v
}
