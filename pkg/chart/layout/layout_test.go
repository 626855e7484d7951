package layout

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart/hierarchy"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

func record(gen int, parents ...*ancestry.Person) *ancestry.Person {
	return &ancestry.Person{Generation: gen, Sex: ancestry.SexMale, Parents: parents}
}

// uneven builds a lopsided tree: deep father line, shallow mother line.
func uneven() *hierarchy.Node {
	mother := &ancestry.Person{Generation: 2, Sex: ancestry.SexFemale}
	father := record(2, record(3, record(4, record(5)), &ancestry.Person{Generation: 4, Sex: ancestry.SexFemale}))
	return hierarchy.Build(record(1, father, mother), hierarchy.Options{})
}

func full() *hierarchy.Node {
	return hierarchy.Build(record(1, record(2, record(3, record(4)))), hierarchy.Options{ShowEmptyBoxes: true})
}

func TestLayoutNil(t *testing.T) {
	res := Layout(nil, orientation.New(orientation.TopBottom, orientation.Options{}))
	if len(res.Nodes) != 0 || len(res.Links) != 0 {
		t.Errorf("Layout(nil) = %d nodes, %d links, want empty", len(res.Nodes), len(res.Links))
	}
}

func TestLayoutRootAtOrigin(t *testing.T) {
	for _, kind := range orientation.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			res := Layout(full(), orientation.New(kind, orientation.Options{}))
			root := res.Nodes[0]
			if root.ID != 1 || root.X != 0 || root.Y != 0 {
				t.Errorf("root = %+v, want ID 1 at origin", root)
			}
		})
	}
}

func TestLinksPerParentEdge(t *testing.T) {
	h := full()
	res := Layout(h, orientation.New(orientation.TopBottom, orientation.Options{}))

	if got, want := len(res.Nodes), h.Count(); got != want {
		t.Errorf("len(Nodes) = %d, want %d", got, want)
	}
	if got, want := len(res.Links), len(res.Nodes)-1; got != want {
		t.Errorf("len(Links) = %d, want %d", got, want)
	}
	for _, l := range res.Links {
		if l.Target == nil || l.Target.Depth != l.Source.Depth+1 {
			t.Errorf("link %d -> %v does not reach the next generation", l.Source.ID, l.Target)
		}
		if l.Target.ID == 1 {
			t.Error("root must not be a link target")
		}
	}
}

func TestNoOverlap(t *testing.T) {
	for _, kind := range orientation.Kinds {
		for name, h := range map[string]*hierarchy.Node{"full": full(), "uneven": uneven()} {
			t.Run(kind.String()+"/"+name, func(t *testing.T) {
				o := orientation.New(kind, orientation.Options{})
				res := Layout(h, o)

				byDepth := map[int][]float64{}
				for _, n := range res.Nodes {
					breadth := n.X
					if o.IsHorizontal() {
						breadth = n.Y
					}
					byDepth[n.Depth] = append(byDepth[n.Depth], breadth)
				}
				for depth, bs := range byDepth {
					sort.Float64s(bs)
					for i := 1; i < len(bs); i++ {
						if gap := bs[i] - bs[i-1]; gap < o.NodeWidth()*Separation-1e-9 {
							t.Errorf("depth %d: gap %v < node size %v", depth, gap, o.NodeWidth())
						}
					}
				}
			})
		}
	}
}

func TestDepthAxis(t *testing.T) {
	tests := []struct {
		kind orientation.Kind
		want func(n *Positioned) float64
	}{
		{orientation.TopBottom, func(n *Positioned) float64 { return n.Y }},
		{orientation.BottomTop, func(n *Positioned) float64 { return -n.Y }},
		{orientation.LeftRight, func(n *Positioned) float64 { return n.X }},
		{orientation.RightLeft, func(n *Positioned) float64 { return -n.X }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			o := orientation.New(tt.kind, orientation.Options{})
			for _, n := range Layout(full(), o).Nodes {
				want := float64(n.Depth) * o.NodeHeight()
				if got := tt.want(n); math.Abs(got-want) > 1e-9 {
					t.Errorf("node %d depth coordinate = %v, want %v", n.ID, got, want)
				}
			}
		})
	}
}

func TestParentsCentredOverChild(t *testing.T) {
	res := Layout(full(), orientation.New(orientation.TopBottom, orientation.Options{}))
	for _, n := range res.Nodes {
		if len(n.Node.Parents) != 2 {
			continue
		}
		father, mother := res.Node(n.Node.Parents[0].ID), res.Node(n.Node.Parents[1].ID)
		if father.X >= mother.X {
			t.Errorf("node %d: father at %v not before mother at %v", n.ID, father.X, mother.X)
		}
		if mid := (father.X + mother.X) / 2; math.Abs(mid-n.X) > 1e-9 {
			t.Errorf("node %d at %v, parents centred at %v", n.ID, n.X, mid)
		}
	}
}

func TestIdempotent(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{})
	h := uneven()
	a, b := Layout(h, o), Layout(h, o)

	coords := func(r *Result) [][2]float64 {
		var out [][2]float64
		for _, n := range r.Nodes {
			out = append(out, [2]float64{n.X, n.Y})
		}
		return out
	}
	if diff := cmp.Diff(coords(a), coords(b)); diff != "" {
		t.Errorf("Layout() not deterministic (-first +second):\n%s", diff)
	}
	if a.BuildID == b.BuildID {
		t.Error("each layout should carry a fresh BuildID")
	}
}

func TestBounds(t *testing.T) {
	o := orientation.New(orientation.TopBottom, orientation.Options{})
	res := Layout(hierarchy.Build(record(1), hierarchy.Options{}), o)

	got := res.Bounds(o)
	want := struct{ X, Y, W, H float64 }{-o.BoxWidth() / 2, -o.BoxHeight() / 2, o.BoxWidth(), o.BoxHeight()}
	if diff := cmp.Diff(want, struct{ X, Y, W, H float64 }{got.X, got.Y, got.W, got.H}, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestContains(t *testing.T) {
	o := orientation.New(orientation.TopBottom, orientation.Options{})
	res := Layout(full(), o)
	if !res.Contains(res.Nodes[3]) {
		t.Error("Contains(own node) = false")
	}
	other := Layout(full(), o)
	if res.Contains(other.Nodes[3]) {
		t.Error("Contains(node of another build) = true")
	}
	if res.Contains(nil) {
		t.Error("Contains(nil) = true")
	}
}

func TestNodeIndex(t *testing.T) {
	rec := record(10)
	for gen := 9; gen >= 1; gen-- {
		rec = record(gen, rec)
	}
	res := Layout(hierarchy.Build(rec, hierarchy.Options{ShowEmptyBoxes: true}), orientation.New(orientation.LeftRight, orientation.Options{}))
	if got := len(res.Nodes); got != 1023 {
		t.Fatalf("len(Nodes) = %d, want 1023", got)
	}
	for _, n := range res.Nodes {
		if res.Node(n.ID) != n {
			t.Fatalf("Node(%d) does not return its own node", n.ID)
		}
	}
	if res.Node(0) != nil || res.Node(1024) != nil {
		t.Error("Node() of an unknown ID should be nil")
	}

	manual := &Result{Nodes: res.Nodes[:2]}
	if manual.Node(res.Nodes[1].ID) != res.Nodes[1] || manual.Contains(res.Nodes[5]) {
		t.Error("a Result built by hand should fall back to scanning its nodes")
	}
}
