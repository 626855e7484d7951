package link

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/hierarchy"
	"github.com/matzehuels/pedigree/pkg/chart/layout"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

func chart(o orientation.Orientation) *layout.Result {
	rec := &ancestry.Person{Generation: 1, Parents: []*ancestry.Person{
		{Generation: 2, Sex: ancestry.SexMale},
		{Generation: 2, Sex: ancestry.SexFemale},
	}}
	return layout.Layout(hierarchy.Build(rec, hierarchy.Options{ShowEmptyBoxes: true}), o)
}

func TestPathsEndOnBoxEdges(t *testing.T) {
	for _, kind := range orientation.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			o := orientation.New(kind, orientation.Options{})
			res := chart(o)
			routed := (&Router{}).Paths(res, o)
			if len(routed) != 2 {
				t.Fatalf("len(Paths()) = %d, want 2", len(routed))
			}

			box := geometry.Box(o)
			for _, rt := range routed {
				first, _ := rt.Path.First()
				last, _ := rt.Path.Last()
				if !onEdge(first, box.Translate(rt.Link.Source.Point())) {
					t.Errorf("first point %v not on source box edge", first)
				}
				if !onEdge(last, box.Translate(rt.Link.Target.Point())) {
					t.Errorf("last point %v not on target box edge", last)
				}
			}
		})
	}
}

func onEdge(p geometry.Point, r geometry.Rect) bool {
	inX := p.X >= r.X && p.X <= r.X+r.W
	inY := p.Y >= r.Y && p.Y <= r.Y+r.H
	onX := p.X == r.X || p.X == r.X+r.W
	onY := p.Y == r.Y || p.Y == r.Y+r.H
	return (onX && inY) || (onY && inX)
}

func TestPathsSkipsDetached(t *testing.T) {
	var buf bytes.Buffer
	r := NewRouter(log.New(&buf))
	o := orientation.New(orientation.TopBottom, orientation.Options{})

	res := chart(o)
	stranger := chart(o).Nodes[1]
	res.Links = append(res.Links, layout.Link{Source: res.Nodes[0], Target: stranger})

	if got := len(r.Paths(res, o)); got != 2 {
		t.Errorf("len(Paths()) = %d, want 2", got)
	}
	if !strings.Contains(buf.String(), "detached") {
		t.Errorf("log = %q, want a detached link warning", buf.String())
	}
}

func TestPathStacked(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{})
	src := &layout.Positioned{ID: 1}

	stack := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 200}, {X: 0, Y: 100}}
	p := (&Router{}).Path(layout.Link{Source: src, Stack: stack}, o)
	if len(p) != 2 {
		t.Fatalf("len(Path()) = %d, want 2 segments", len(p))
	}

	if p := (&Router{}).Path(layout.Link{Source: src}, o); len(p) != 0 {
		t.Errorf("Path() without stack = %v, want empty", p)
	}
}

func TestPathPure(t *testing.T) {
	o := orientation.New(orientation.BottomTop, orientation.Options{})
	l := layout.Link{Source: &layout.Positioned{X: 10, Y: 0}, Target: &layout.Positioned{X: 120, Y: -215}}
	var r *Router
	a, b := r.Path(l, o), r.Path(l, o)
	if a.String() != b.String() {
		t.Errorf("Path() not deterministic: %s vs %s", a, b)
	}
}
