// Package elbow computes orthogonal connector paths between person boxes.
//
// Every function here is pure: the result depends only on the box centres,
// the box extent along the growth axis and the growth direction. Endpoints
// always sit on box edges, never on box centres, so boxes and connectors can
// be drawn in any order.
package elbow

import "github.com/matzehuels/pedigree/pkg/chart/geometry"

// StackGap is the clearance left between a connector and an intermediate box
// when several boxes are joined by one stacked connector.
const StackGap = 2.0

// Horizontal routes a connector for left-right and right-left layouts.
//
// The path leaves the source box on the edge facing the direction of
// growth, runs horizontally to the column halfway between the two facing
// edges, turns vertically to the target row and ends on the target's
// trailing edge.
func Horizontal(src, dst geometry.Point, boxWidth, dir float64) geometry.Path {
	half := boxWidth / 2
	sx := src.X + dir*half
	tx := dst.X - dir*half
	mid := (sx + tx) / 2

	return geometry.Path{{
		{X: sx, Y: src.Y},
		{X: mid, Y: src.Y},
		{X: mid, Y: dst.Y},
		{X: tx, Y: dst.Y},
	}}
}

// Vertical is the axis-swapped mirror of [Horizontal] for top-bottom and
// bottom-top layouts.
func Vertical(src, dst geometry.Point, boxHeight, dir float64) geometry.Path {
	half := boxHeight / 2
	sy := src.Y + dir*half
	ty := dst.Y - dir*half
	mid := (sy + ty) / 2

	return geometry.Path{{
		{X: src.X, Y: sy},
		{X: src.X, Y: mid},
		{X: dst.X, Y: mid},
		{X: dst.X, Y: ty},
	}}
}

// Stacked joins boxes stacked along the breadth axis with straight segments,
// one per adjacent pair. stack lists box centres in drawing order and ends
// with the box the connector belongs to; the line runs at that box's
// depth coordinate. extent is the box size along the stacking axis.
//
// Segments stop StackGap short of every intermediate box so the individual
// connections stay distinguishable. Fewer than two boxes yield an empty path.
func Stacked(stack []geometry.Point, extent float64, horizontal bool) geometry.Path {
	if len(stack) < 2 {
		return nil
	}

	half := extent / 2
	last := len(stack) - 1
	anchor := stack[last]

	path := make(geometry.Path, 0, last)
	for i := 0; i < last; i++ {
		start := axis(stack[i], horizontal) + half
		end := axis(stack[i+1], horizontal) - half
		if i > 0 {
			start += StackGap
		}
		if i+1 < last {
			end -= StackGap
		}
		path = append(path, geometry.Polyline{
			at(anchor, start, horizontal),
			at(anchor, end, horizontal),
		})
	}
	return path
}

// axis returns the coordinate boxes are stacked along.
func axis(p geometry.Point, horizontal bool) float64 {
	if horizontal {
		return p.Y
	}
	return p.X
}

// at returns the point on the connector line through anchor at position v
// along the stacking axis.
func at(anchor geometry.Point, v float64, horizontal bool) geometry.Point {
	if horizontal {
		return geometry.Point{X: anchor.X, Y: v}
	}
	return geometry.Point{X: v, Y: anchor.Y}
}
