package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"git.sr.ht/~sbinet/gg"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/label"
	"github.com/matzehuels/pedigree/pkg/fonts"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme   Theme
	padding float64
	scale   float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGTheme sets the colours.
func WithPNGTheme(t Theme) PNGOption {
	return func(r *pngRenderer) { r.theme = t }
}

// WithPNGPadding sets the margin around the chart.
func WithPNGPadding(p float64) PNGOption {
	return func(r *pngRenderer) { r.padding = p }
}

// RenderPNG rasterizes d with the embedded Go fonts. Thumbnails are not
// fetched; their frame is drawn instead.
func RenderPNG(d *chart.Drawing, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: DefaultTheme, padding: DefaultPadding, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v", r.scale)
	}

	view := viewport(d, r.padding)
	c := raster{
		dc:    gg.NewContext(int(view.W*r.scale), int(view.H*r.scale)),
		view:  view,
		scale: r.scale,
	}
	c.dc.SetColor(r.theme.Background)
	c.dc.Clear()

	if !d.Empty() {
		c.dc.SetColor(r.theme.Link)
		c.dc.SetLineWidth(2 * r.scale)
		for _, l := range d.Links {
			c.path(l.Path)
		}
		for _, n := range d.Nodes {
			if err := c.node(n, r.theme); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

type raster struct {
	dc    *gg.Context
	view  geometry.Rect
	scale float64
}

func (c raster) pt(p geometry.Point) (float64, float64) {
	return (p.X - c.view.X) * c.scale, (p.Y - c.view.Y) * c.scale
}

func (c raster) path(p geometry.Path) {
	for _, pl := range p {
		for i, pt := range pl {
			x, y := c.pt(pt)
			if i == 0 {
				c.dc.MoveTo(x, y)
			} else {
				c.dc.LineTo(x, y)
			}
		}
		c.dc.Stroke()
	}
}

func (c raster) rect(r geometry.Rect, at geometry.Point) (x, y, w, h, radius float64) {
	x, y = c.pt(at.Add(r.Min()))
	return x, y, r.W * c.scale, r.H * c.scale, r.Radius * c.scale
}

func (c raster) node(n chart.NodeView, t Theme) error {
	at := geometry.Point{X: n.X, Y: n.Y}
	fill, stroke := t.fill(n.Class)

	x, y, w, h, radius := c.rect(n.Box, at)
	if fill.A > 0 {
		c.dc.SetColor(fill)
		c.dc.DrawRoundedRectangle(x, y, w, h, radius)
		c.dc.Fill()
	}
	c.dc.SetColor(stroke)
	c.dc.SetLineWidth(2 * c.scale)
	if n.Placeholder {
		c.dc.SetDash(5*c.scale, 3*c.scale)
	}
	c.dc.DrawRoundedRectangle(x, y, w, h, radius)
	c.dc.Stroke()
	c.dc.SetDash()

	if n.Image.W > 0 {
		x, y, w, h, radius := c.rect(n.Image, at)
		c.dc.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
		c.dc.DrawRoundedRectangle(x, y, w, h, radius)
		c.dc.FillPreserve()
		c.dc.SetColor(stroke)
		c.dc.SetLineWidth(c.scale)
		c.dc.Stroke()
	}

	c.dc.SetColor(t.Text)
	for _, row := range n.Rows {
		if err := c.row(row, at); err != nil {
			return err
		}
	}
	return nil
}

func (c raster) row(row label.Row, at geometry.Point) error {
	face, err := fonts.Face(row.Font.Weight, row.Font.Size*c.scale)
	if err != nil {
		return err
	}
	c.dc.SetFontFace(face)

	if row.Marker != "" {
		x, y := c.pt(at.Add(geometry.Point{X: row.MarkerX, Y: row.Y}))
		c.dc.DrawStringAnchored(row.Marker, x, y, 0.5, 0.35)
	}

	x, y := c.pt(at.Add(geometry.Point{X: row.X, Y: row.Y}))
	c.dc.DrawStringAnchored(strings.TrimSpace(row.Content()), x, y, anchorX(row.Anchor, row.RTL), 0.35)
	return nil
}

// anchorX maps an SVG text-anchor to a gg anchor, where start follows the
// text direction.
func anchorX(anchor string, rtl bool) float64 {
	switch anchor {
	case "middle":
		return 0.5
	case "end":
		if rtl {
			return 0
		}
		return 1
	}
	if rtl {
		return 1
	}
	return 0
}
