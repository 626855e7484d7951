package transition

import (
	"testing"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

func draw(showEmpty bool) *chart.Drawing {
	root := &ancestry.Person{Xref: "I1", Generation: 1, Parents: []*ancestry.Person{
		{Xref: "I2", Generation: 2, Sex: ancestry.SexMale, Parents: []*ancestry.Person{
			{Xref: "I4", Generation: 3, Sex: ancestry.SexMale},
		}},
	}}
	c := chart.New(chart.Options{Orientation: orientation.TopBottom, ShowEmptyBoxes: showEmpty}, nil, nil)
	return c.Draw(root)
}

func TestPlanFirstDrawing(t *testing.T) {
	tbl := New()
	d := draw(false)
	for _, m := range tbl.Plan(d) {
		if m.Entering || m.Exiting || m.From != m.To {
			t.Errorf("first drawing move %+v, want a static placement", m)
		}
	}
	if tbl.Build() != d.BuildID {
		t.Errorf("Build() = %v, want %v", tbl.Build(), d.BuildID)
	}
}

func TestPlanEnterAndExit(t *testing.T) {
	tbl := New()
	before := draw(false)
	tbl.Plan(before)

	after := draw(true)
	moves := tbl.Plan(after)

	var entering, exiting int
	for _, m := range moves {
		switch {
		case m.Entering:
			entering++
			// New boxes grow out of a box that was already drawn.
			if !hasPosition(before, m.From) {
				t.Errorf("slot %d enters from %v, not a previous position", m.Sosa, m.From)
			}
		case m.Exiting:
			exiting++
		}
	}
	// Without empty boxes: slots 1, 2 and 4. With them: 1..7.
	if entering != 4 || exiting != 0 {
		t.Errorf("entering=%d exiting=%d, want 4 and 0", entering, exiting)
	}

	moves = tbl.Plan(draw(false))
	exiting = 0
	for _, m := range moves {
		if m.Exiting {
			exiting++
		}
	}
	if exiting != 4 {
		t.Errorf("exiting=%d after hiding empty boxes, want 4", exiting)
	}
}

func TestPlanDifferentRoot(t *testing.T) {
	tbl := New()
	tbl.Plan(draw(true))

	other := chart.New(chart.Options{Orientation: orientation.TopBottom}, nil, nil).
		Draw(&ancestry.Person{Xref: "I9"})
	moves := tbl.Plan(other)
	if len(moves) != 1 || moves[0].Entering || moves[0].Exiting {
		t.Errorf("moves = %+v, want one static placement", moves)
	}
}

func TestPlanEmpty(t *testing.T) {
	tbl := New()
	tbl.Plan(draw(true))
	if moves := tbl.Plan(&chart.Drawing{}); moves != nil {
		t.Errorf("Plan(empty) = %v, want nil", moves)
	}
	if len(tbl.prev) != 0 {
		t.Error("empty drawing should clear the table")
	}
}

func hasPosition(d *chart.Drawing, p geometry.Point) bool {
	for _, n := range d.Nodes {
		if n.X == p.X && n.Y == p.Y {
			return true
		}
	}
	return false
}
