// Package transition keeps the box positions of the previous drawing so a
// redraw can animate boxes from where they were.
//
// Node IDs are reassigned on every build, so positions are keyed by the
// Ahnentafel slot number, which stays the same for the same root person.
// The table belongs to the renderer; layout results never carry previous
// positions.
package transition

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
)

// Move animates one box. Entering boxes start at their child's previous
// position; exiting boxes have no ID in the new drawing and collapse onto
// their child's new position.
type Move struct {
	ID       int
	Sosa     int
	From, To geometry.Point
	Entering bool
	Exiting  bool
}

// Table remembers the last drawing's positions. It is safe for concurrent
// use.
type Table struct {
	mu    sync.Mutex
	build uuid.UUID
	root  string
	prev  map[int]geometry.Point
}

// New returns an empty table.
func New() *Table {
	return &Table{prev: make(map[int]geometry.Point)}
}

// Build returns the build ID of the last recorded drawing.
func (t *Table) Build() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.build
}

// Plan returns the moves from the recorded drawing to d and records d.
// A drawing of a different root person starts fresh: every box enters
// from the root position.
func (t *Table) Plan(d *chart.Drawing) []Move {
	t.mu.Lock()
	defer t.mu.Unlock()

	if d.Empty() {
		t.reset(uuid.Nil, "")
		return nil
	}
	if root := rootKey(d); root != t.root {
		t.reset(d.BuildID, root)
	}

	next := make(map[int]geometry.Point, len(d.Nodes))
	for _, n := range d.Nodes {
		next[n.Sosa] = geometry.Point{X: n.X, Y: n.Y}
	}

	moves := make([]Move, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		to := geometry.Point{X: n.X, Y: n.Y}
		from, ok := t.prev[n.Sosa]
		if !ok {
			from = nearest(t.prev, n.Sosa, to)
		}
		moves = append(moves, Move{ID: n.ID, Sosa: n.Sosa, From: from, To: to, Entering: !ok && len(t.prev) > 0})
	}
	var gone []int
	for sosa := range t.prev {
		if _, ok := next[sosa]; !ok {
			gone = append(gone, sosa)
		}
	}
	slices.Sort(gone)
	for _, sosa := range gone {
		from := t.prev[sosa]
		moves = append(moves, Move{Sosa: sosa, From: from, To: nearest(next, sosa, from), Exiting: true})
	}

	t.build = d.BuildID
	t.prev = next
	return moves
}

// Reset forgets the recorded drawing.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset(uuid.Nil, "")
}

func (t *Table) reset(build uuid.UUID, root string) {
	t.build = build
	t.root = root
	t.prev = make(map[int]geometry.Point)
}

// nearest returns the position of the closest recorded descendant slot of
// sosa, or fallback when there is none.
func nearest(pos map[int]geometry.Point, sosa int, fallback geometry.Point) geometry.Point {
	for s := sosa / 2; s >= 1; s /= 2 {
		if p, ok := pos[s]; ok {
			return p
		}
	}
	return fallback
}

func rootKey(d *chart.Drawing) string {
	for _, n := range d.Nodes {
		if n.Sosa == 1 && n.Person != nil {
			if n.Person.Xref != "" {
				return n.Person.Xref
			}
			return n.Person.Name
		}
	}
	return ""
}
