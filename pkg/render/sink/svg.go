package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/label"
	"github.com/matzehuels/pedigree/pkg/fonts"
	"github.com/matzehuels/pedigree/pkg/render/transition"
)

// DefaultPadding is the margin around the chart, in pixels.
const DefaultPadding = 20.0

// TransitionDuration is the length of the redraw animation, in seconds.
const TransitionDuration = 0.5

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme     Theme
	padding   float64
	embedFont bool
	moves     []transition.Move
}

func WithTheme(t Theme) SVGOption     { return func(r *svgRenderer) { r.theme = t } }
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }
func WithEmbeddedFont() SVGOption     { return func(r *svgRenderer) { r.embedFont = true } }
func WithTransitions(moves []transition.Move) SVGOption {
	return func(r *svgRenderer) { r.moves = moves }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{theme: DefaultTheme, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders d as a standalone SVG document. Links are drawn first so
// the boxes cover the connector ends. An empty drawing renders an empty
// document.
func RenderSVG(d *chart.Drawing, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	canvas := svg.New(&buf)

	view := viewport(d, r.padding)
	canvas.Startview(view.W, view.H, view.X, view.Y, view.W, view.H)

	canvas.Def()
	css := r.theme.css()
	if r.embedFont {
		css = fontFace() + css
	}
	canvas.Style("text/css", css)
	if !d.Empty() {
		img := clipRect(d)
		canvas.ClipPath(`id="clip-image"`)
		canvas.Roundrect(img.X, img.Y, img.W, img.H, img.Radius, img.Radius)
		canvas.ClipEnd()
	}
	canvas.DefEnd()

	if d.Empty() {
		canvas.End()
		return buf.Bytes()
	}

	canvas.Gid("links")
	for _, l := range d.Links {
		canvas.Path(l.Path.String(), `class="link"`, fmt.Sprintf(`data-source="%d"`, l.Source), fmt.Sprintf(`data-target="%d"`, l.Target))
	}
	canvas.Gend()

	moves := r.movesByID()
	canvas.Gid("persons")
	for _, n := range d.Nodes {
		renderNode(canvas, n, moves[n.ID])
	}
	canvas.Gend()

	canvas.End()
	return buf.Bytes()
}

func (r svgRenderer) movesByID() map[int]transition.Move {
	out := make(map[int]transition.Move, len(r.moves))
	for _, m := range r.moves {
		if !m.Exiting {
			out[m.ID] = m
		}
	}
	return out
}

// viewport returns the chart bounds grown by padding and snapped outwards to
// whole pixels.
func viewport(d *chart.Drawing, padding float64) geometry.Rect {
	if d.Empty() {
		return geometry.Rect{W: 2 * padding, H: 2 * padding}
	}
	b := d.Bounds
	x0, y0 := math.Floor(b.X-padding), math.Floor(b.Y-padding)
	x1, y1 := math.Ceil(b.X+b.W+padding), math.Ceil(b.Y+b.H+padding)
	return geometry.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clipRect(d *chart.Drawing) geometry.Rect {
	for _, n := range d.Nodes {
		if n.Image.W > 0 {
			return n.Image
		}
	}
	return geometry.Rect{}
}

func renderNode(canvas *svg.SVG, n chart.NodeView, m transition.Move) {
	canvas.Group(
		fmt.Sprintf(`id="person-%d"`, n.ID),
		fmt.Sprintf(`class="person %s"`, n.Class),
		fmt.Sprintf(`data-sosa="%d"`, n.Sosa),
		fmt.Sprintf(`transform="translate(%s,%s)"`, num(n.X), num(n.Y)),
	)
	if m.ID != 0 && m.From != m.To {
		canvas.AnimateTranslate(fmt.Sprintf("#person-%d", n.ID), m.From.X, m.From.Y, m.To.X, m.To.Y,
			TransitionDuration, 1, `fill="freeze"`)
	}

	if n.Person != nil {
		title := n.Person.Name
		if n.Person.Timespan != "" {
			title += " (" + n.Person.Timespan + ")"
		}
		canvas.Title(title)
	}

	b := n.Box
	canvas.Roundrect(b.X, b.Y, b.W, b.H, b.Radius, b.Radius, `class="box"`)

	if n.Person.HasImage() {
		img := n.Image
		canvas.Image(img.X, img.Y, int(math.Round(img.W)), int(math.Round(img.H)), escape(n.Person.Thumbnail),
			`clip-path="url(#clip-image)"`, `preserveAspectRatio="xMidYMid slice"`)
	}

	for _, row := range n.Rows {
		renderRow(canvas, row)
	}
	canvas.Gend()
}

func renderRow(canvas *svg.SVG, row label.Row) {
	dir := "ltr"
	if row.RTL {
		dir = "rtl"
	}
	if row.Marker != "" {
		canvas.Text(row.MarkerX, row.Y, row.Marker, `class="marker"`, `text-anchor="middle"`,
			`dominant-baseline="middle"`, fmt.Sprintf(`font-size="%s"`, num(row.Font.Size)))
	}
	canvas.Textspan(row.X, row.Y, "",
		fmt.Sprintf(`class="%s"`, row.Kind.Class()),
		fmt.Sprintf(`text-anchor="%s"`, row.Anchor),
		fmt.Sprintf(`direction="%s"`, dir),
		`dominant-baseline="middle"`,
		fmt.Sprintf(`font-family="%s"`, escape(fonts.FallbackFontFamily)),
		fmt.Sprintf(`font-size="%s"`, num(row.Font.Size)),
		fmt.Sprintf(`font-weight="%s"`, row.Font.Weight),
	)
	if row.Title != "" && row.Title != row.Content() {
		canvas.Title(row.Title)
	}

	if row.Kind == label.Date {
		canvas.Span(row.Text)
	} else {
		for i, p := range row.Parts {
			var attrs, classes []string
			if p.IsPreferred {
				classes = append(classes, "preferred")
			}
			if p.IsLastName {
				classes = append(classes, "lastName")
			}
			if len(classes) > 0 {
				attrs = append(attrs, fmt.Sprintf(`class="%s"`, strings.Join(classes, " ")))
			}
			if i > 0 {
				sign := 1.0
				if p.IsRTL {
					sign = -1
				}
				attrs = append(attrs, fmt.Sprintf(`dx="%sem"`, num(sign*0.25)))
			}
			canvas.Span(p.Label, attrs...)
		}
	}
	canvas.TextEnd()
}

func fontFace() string {
	var b strings.Builder
	for _, weight := range []fonts.Weight{fonts.Regular, fonts.Bold} {
		fmt.Fprintf(&b, "@font-face { font-family: %q; font-weight: %s; src: url(data:font/ttf;base64,%s) format(\"truetype\"); }\n",
			fonts.FontFamily, weight, fonts.TTFBase64(weight))
	}
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func num(f float64) string {
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
