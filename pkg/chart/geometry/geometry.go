// Package geometry holds the pure arithmetic shared by everything that draws
// or connects person boxes: points, rectangles, polyline paths and the
// box/image/text placement formulas.
//
// All coordinates are relative to the centre of a box. The layout engine
// positions box centres; drawing code translates each box to its centre and
// then uses the rectangles returned here.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Box and content constants.
const (
	// CornerRadius is the corner radius of every person box.
	CornerRadius = 20.0

	// ImagePadding is the inset of the thumbnail from the box border.
	ImagePadding = 5.0

	// MaxImageRadius caps the thumbnail radius in horizontal layouts.
	MaxImageRadius = 40.0

	// MaxImageRadiusVertical caps the thumbnail radius in vertical layouts.
	MaxImageRadiusVertical = 35.0

	// DateGutter is the width reserved in front of a birth/death row for the
	// symbol (★/†) in horizontal layouts.
	DateGutter = 25.0
)

// Frame describes the box a person is drawn in. Orientation values satisfy it.
type Frame interface {
	BoxWidth() float64
	BoxHeight() float64
	IsHorizontal() bool
	IsRTL() bool
}

// Point is a position in chart pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is an axis-aligned rectangle with an optional corner radius.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"width"`
	H      float64 `json:"height"`
	Radius float64 `json:"rx,omitempty"`
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the centre of r.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Translate returns r moved by p.
func (r Rect) Translate(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Box returns the person box of f, centred on the origin.
func Box(f Frame) Rect {
	w, h := f.BoxWidth(), f.BoxHeight()
	return Rect{X: -w / 2, Y: -h / 2, W: w, H: h, Radius: CornerRadius}
}

// Image returns the thumbnail rectangle of f. Horizontal layouts place a
// rounded square at the leading edge; vertical layouts centre a circle at
// the top of the box.
func Image(f Frame) Rect {
	w, h := f.BoxWidth(), f.BoxHeight()
	if f.IsHorizontal() {
		r := math.Min(MaxImageRadius, h/2-ImagePadding)
		x := -w/2 + ImagePadding
		if f.IsRTL() {
			x = w/2 - ImagePadding - 2*r
		}
		return Rect{X: x, Y: -r, W: 2 * r, H: 2 * r, Radius: CornerRadius - ImagePadding}
	}
	r := math.Min(MaxImageRadiusVertical, w/2-ImagePadding)
	return Rect{X: -r, Y: -h/2 + ImagePadding, W: 2 * r, H: 2 * r, Radius: r}
}

// Padding returns the horizontal and vertical text padding for f.
func Padding(f Frame) (x, y float64) {
	if f.IsHorizontal() {
		return 15, 15
	}
	return 5, 15
}

// Text returns the text area of f. Its width is the space available to
// labels: the box width minus padding, minus the thumbnail when one is shown
// next to the text (horizontal layouts only).
func Text(f Frame, withImage bool) Rect {
	padX, padY := Padding(f)
	w := f.BoxWidth()

	r := Rect{X: -w/2 + padX, W: w - 2*padX}
	if f.IsHorizontal() {
		r.Y = -padY
		if withImage {
			img := Image(f)
			r.W -= img.W
			if !f.IsRTL() {
				r.X += img.W
			}
		}
		return r
	}

	if withImage {
		// The first baseline sits a full line below the thumbnail.
		img := Image(f)
		r.Y = img.Y + img.H + 2*padY
	} else {
		r.Y = -f.BoxHeight()/2 + padY
	}
	return r
}

// TextX returns the x coordinate text is anchored at. Horizontal layouts
// start text after the thumbnail; vertical layouts centre it. Right-to-left
// hosts mirror the anchor.
func TextX(f Frame, withImage bool) float64 {
	if !f.IsHorizontal() {
		return 0
	}
	x := Text(f, withImage).X
	if f.IsRTL() {
		return x + Text(f, withImage).W
	}
	return x
}

// DateWidth returns the width available to a birth or death row in
// horizontal layouts, or to the timespan row in vertical ones.
func DateWidth(f Frame, withImage bool) float64 {
	t := Text(f, withImage)
	if f.IsHorizontal() {
		return t.W - DateGutter
	}
	return t.W
}

// Polyline is a single connected run of line segments.
type Polyline []Point

// Path is an ordered list of polylines. Each polyline is emitted as one
// move-to followed by line-tos.
type Path []Polyline

// First returns the first point of p, or false if p is empty.
func (p Path) First() (Point, bool) {
	for _, pl := range p {
		if len(pl) > 0 {
			return pl[0], true
		}
	}
	return Point{}, false
}

// Last returns the last point of p, or false if p is empty.
func (p Path) Last() (Point, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if pl := p[i]; len(pl) > 0 {
			return pl[len(pl)-1], true
		}
	}
	return Point{}, false
}

// Points returns all points of p in drawing order.
func (p Path) Points() []Point {
	var out []Point
	for _, pl := range p {
		out = append(out, pl...)
	}
	return out
}

// String returns p in SVG path data syntax.
func (p Path) String() string {
	var b strings.Builder
	for _, pl := range p {
		for i, pt := range pl {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			if i == 0 {
				b.WriteByte('M')
			} else {
				b.WriteByte('L')
			}
			b.WriteString(formatFloat(pt.X))
			b.WriteByte(',')
			b.WriteString(formatFloat(pt.Y))
		}
	}
	return b.String()
}

func formatFloat(f float64) string {
	if f == 0 {
		// avoid "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
