// Package orientation encapsulates the four growth directions of a pedigree
// chart.
//
// An [Orientation] knows which axis is "depth" (generations) and which is
// "breadth" (siblings and cousins), which sign points toward older
// generations, how large a layout cell is and how connectors are routed.
// The layout engine and the link router stay orientation-agnostic by asking
// this interface instead of branching on the kind.
//
// # Kinds
//
//	TopBottom  "down"   root at the top, ancestors below
//	BottomTop  "up"     root at the bottom, ancestors above
//	LeftRight  "right"  root on the left, ancestors to the right
//	RightLeft  "left"   root on the right, ancestors to the left
//
// Values returned by [New] are immutable and safe for concurrent use.
package orientation

import (
	"github.com/matzehuels/pedigree/pkg/chart/elbow"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
)

// Default box sizes and cell offsets.
const (
	HorizontalBoxWidth  = 325.0
	HorizontalBoxHeight = 95.0
	VerticalBoxWidth    = 160.0
	VerticalBoxHeight   = 175.0

	// Offsets between neighbouring boxes, in box coordinates (x along the
	// box width, y along the box height).
	VerticalXOffset   = 30.0
	VerticalYOffset   = 40.0
	HorizontalXOffset = 40.0
	HorizontalYOffset = 20.0
)

// Orientation is the contract shared by all four growth directions.
type Orientation interface {
	geometry.Frame

	// Kind reports which of the four orientations this is.
	Kind() Kind

	// Direction is +1 when ancestors grow toward positive coordinates and
	// -1 otherwise.
	Direction() float64

	// NodeWidth and NodeHeight are the fixed layout cell size along the
	// breadth and depth axes of the generic tree layout.
	NodeWidth() float64
	NodeHeight() float64

	// XOffset and YOffset are the gaps between neighbouring boxes.
	XOffset() float64
	YOffset() float64

	// SplitNames reports whether first and last names go on separate lines.
	SplitNames() bool

	// Norm converts a generic (breadth, depth) layout position into chart
	// pixels.
	Norm(breadth, depth float64) geometry.Point

	// Elbow routes a connector from a child box centred at src to a parent
	// box centred at dst.
	Elbow(src, dst geometry.Point) geometry.Path

	// Stacked routes a connector through boxes stacked along the breadth
	// axis.
	Stacked(stack []geometry.Point) geometry.Path
}

// Options adjusts an orientation. Zero sizes select the defaults for the
// orientation's axis.
type Options struct {
	BoxWidth  float64
	BoxHeight float64

	// RTL marks a right-to-left host text direction. It flips LeftRight
	// growth and mirrors text placement.
	RTL bool
}

// New returns the orientation for kind. It panics for kinds outside the
// four defined values.
func New(kind Kind, opts Options) Orientation {
	if !kind.Valid() {
		panic("orientation: unknown kind " + kind.String())
	}

	s := strategy{kind: kind, rtl: opts.RTL}
	if kind.IsHorizontal() {
		s.boxWidth, s.boxHeight = HorizontalBoxWidth, HorizontalBoxHeight
		s.xOffset, s.yOffset = HorizontalXOffset, HorizontalYOffset
	} else {
		s.boxWidth, s.boxHeight = VerticalBoxWidth, VerticalBoxHeight
		s.xOffset, s.yOffset = VerticalXOffset, VerticalYOffset
	}
	if opts.BoxWidth > 0 {
		s.boxWidth = opts.BoxWidth
	}
	if opts.BoxHeight > 0 {
		s.boxHeight = opts.BoxHeight
	}

	switch {
	case kind == BottomTop, kind == RightLeft:
		s.direction = -1
	case kind == LeftRight && opts.RTL:
		s.direction = -1
	default:
		s.direction = 1
	}
	return s
}

// strategy is the single concrete implementation; the kind selects its
// behaviour.
type strategy struct {
	kind                Kind
	direction           float64
	rtl                 bool
	boxWidth, boxHeight float64
	xOffset, yOffset    float64
}

func (s strategy) Kind() Kind         { return s.kind }
func (s strategy) Direction() float64 { return s.direction }
func (s strategy) BoxWidth() float64  { return s.boxWidth }
func (s strategy) BoxHeight() float64 { return s.boxHeight }
func (s strategy) XOffset() float64   { return s.xOffset }
func (s strategy) YOffset() float64   { return s.yOffset }
func (s strategy) IsHorizontal() bool { return s.kind.IsHorizontal() }
func (s strategy) IsRTL() bool        { return s.rtl }
func (s strategy) SplitNames() bool   { return !s.kind.IsHorizontal() }

// NodeWidth swaps to the box height in horizontal layouts because the
// generic tree grows sideways there.
func (s strategy) NodeWidth() float64 {
	if s.IsHorizontal() {
		return s.boxHeight + s.yOffset
	}
	return s.boxWidth + s.xOffset
}

func (s strategy) NodeHeight() float64 {
	if s.IsHorizontal() {
		return s.boxWidth + s.xOffset
	}
	return s.boxHeight + s.yOffset
}

func (s strategy) Norm(breadth, depth float64) geometry.Point {
	if s.IsHorizontal() {
		return geometry.Point{X: depth * s.direction, Y: breadth}
	}
	return geometry.Point{X: breadth, Y: depth * s.direction}
}

func (s strategy) Elbow(src, dst geometry.Point) geometry.Path {
	if s.IsHorizontal() {
		return elbow.Horizontal(src, dst, s.boxWidth, s.direction)
	}
	return elbow.Vertical(src, dst, s.boxHeight, s.direction)
}

func (s strategy) Stacked(stack []geometry.Point) geometry.Path {
	if s.IsHorizontal() {
		return elbow.Stacked(stack, s.boxHeight, true)
	}
	return elbow.Stacked(stack, s.boxWidth, false)
}

// Base is the unconfigured orientation. Every capability panics: using it
// means a chart was drawn before an orientation was selected.
type Base struct{}

func unconfigured() { panic("orientation: capability called on unconfigured orientation") }

func (Base) Kind() Kind                                         { unconfigured(); return 0 }
func (Base) Direction() float64                                 { unconfigured(); return 0 }
func (Base) NodeWidth() float64                                 { unconfigured(); return 0 }
func (Base) NodeHeight() float64                                { unconfigured(); return 0 }
func (Base) BoxWidth() float64                                  { unconfigured(); return 0 }
func (Base) BoxHeight() float64                                 { unconfigured(); return 0 }
func (Base) XOffset() float64                                   { unconfigured(); return 0 }
func (Base) YOffset() float64                                   { unconfigured(); return 0 }
func (Base) IsHorizontal() bool                                 { unconfigured(); return false }
func (Base) IsRTL() bool                                        { unconfigured(); return false }
func (Base) SplitNames() bool                                   { unconfigured(); return false }
func (Base) Norm(float64, float64) geometry.Point               { unconfigured(); return geometry.Point{} }
func (Base) Elbow(geometry.Point, geometry.Point) geometry.Path { unconfigured(); return nil }
func (Base) Stacked([]geometry.Point) geometry.Path             { unconfigured(); return nil }

var (
	_ Orientation = strategy{}
	_ Orientation = Base{}
)
