package layout

import (
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/hierarchy"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

// Separation is the breadth gap between neighbouring nodes, in node sizes.
const Separation = 1.0

// Positioned is a hierarchy node with its chart position.
type Positioned struct {
	ID    int
	X, Y  float64
	Depth int
	Node  *hierarchy.Node
}

// Point returns the box centre.
func (p *Positioned) Point() geometry.Point { return geometry.Point{X: p.X, Y: p.Y} }

// Link connects a person to one of their parents. Target is nil for a
// connector running through the boxes listed in Stack.
type Link struct {
	Source *Positioned
	Target *Positioned
	Stack  []geometry.Point
}

// Result is one build+layout cycle. BuildID scopes node IDs: IDs from
// different builds must not be compared.
type Result struct {
	BuildID uuid.UUID
	Nodes   []*Positioned
	Links   []Link

	byID map[int]*Positioned
}

// Node returns the positioned node with the given ID, or nil.
func (r *Result) Node(id int) *Positioned {
	if r.byID != nil {
		return r.byID[id]
	}
	for _, n := range r.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Contains reports whether p is one of the result's nodes.
func (r *Result) Contains(p *Positioned) bool {
	if p == nil {
		return false
	}
	n := r.Node(p.ID)
	return n == p
}

// Bounds returns the rectangle covering every box of the result.
func (r *Result) Bounds(f geometry.Frame) geometry.Rect {
	if len(r.Nodes) == 0 {
		return geometry.Rect{}
	}
	box := geometry.Box(f)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range r.Nodes {
		b := box.Translate(n.Point())
		minX, minY = math.Min(minX, b.X), math.Min(minY, b.Y)
		maxX, maxY = math.Max(maxX, b.X+b.W), math.Max(maxY, b.Y+b.H)
	}
	return geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Layout positions root for the given orientation. It returns an empty
// result when root is nil.
func Layout(root *hierarchy.Node, o orientation.Orientation) *Result {
	res := &Result{BuildID: uuid.New()}
	if root == nil {
		return res
	}

	t := newTree(root)
	t.position()

	dx, dy := o.NodeWidth(), o.NodeHeight()
	byNode := make(map[*hierarchy.Node]*Positioned)
	res.byID = make(map[int]*Positioned)
	t.root.eachBefore(func(v *tnode) {
		pt := o.Norm(v.x*dx, float64(v.depth)*dy)
		p := &Positioned{ID: v.node.ID, X: pt.X, Y: pt.Y, Depth: v.depth, Node: v.node}
		byNode[v.node] = p
		res.byID[p.ID] = p
		res.Nodes = append(res.Nodes, p)
	})
	for _, p := range res.Nodes {
		for _, parent := range p.Node.Parents {
			res.Links = append(res.Links, Link{Source: p, Target: byNode[parent]})
		}
	}
	return res
}
