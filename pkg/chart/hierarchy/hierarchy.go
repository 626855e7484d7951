// Package hierarchy turns a sparse ancestor record tree into the node tree
// the layout engine positions.
//
// With empty boxes enabled every person short of the deepest recorded
// generation gets exactly two parent slots, fathers in slot 0 and mothers in
// slot 1, so the chart is a perfect binary tree padded with [Placeholder]
// nodes. Without them the recorded parents pass through as they are and the
// tree may be irregular.
package hierarchy

import (
	"github.com/matzehuels/pedigree/pkg/ancestry"
)

// Payload is either [Real] or [Placeholder].
type Payload interface {
	payload()
	// Gen returns the generation of the node, the root being 1.
	Gen() int
	// SexSlot returns the recorded sex, or the slot sex of a placeholder.
	SexSlot() ancestry.Sex
}

// Real wraps a recorded person.
type Real struct {
	Person *ancestry.Person
}

// Placeholder marks an ancestor slot with no record behind it.
type Placeholder struct {
	Generation int
	Sex        ancestry.Sex
}

func (Real) payload()        {}
func (Placeholder) payload() {}

func (r Real) Gen() int                     { return r.Person.Generation }
func (r Real) SexSlot() ancestry.Sex        { return r.Person.Sex }
func (p Placeholder) Gen() int              { return p.Generation }
func (p Placeholder) SexSlot() ancestry.Sex { return p.Sex }

// Node is one box in the chart. IDs are unique within a single build and
// are reassigned on every build.
//
// Sosa is the Ahnentafel number of the slot: 1 for the root, 2n for the
// father and 2n+1 for the mother of slot n. Unlike ID it is the same in
// every build for the same root.
type Node struct {
	ID      int
	Sosa    int
	Payload Payload
	Parents []*Node
}

// Person returns the underlying record, or nil for a placeholder.
func (n *Node) Person() *ancestry.Person {
	if r, ok := n.Payload.(Real); ok {
		return r.Person
	}
	return nil
}

// IsPlaceholder reports whether n stands in for a missing ancestor.
func (n *Node) IsPlaceholder() bool {
	_, ok := n.Payload.(Placeholder)
	return ok
}

// Generation returns the payload generation.
func (n *Node) Generation() int {
	return n.Payload.Gen()
}

// Options controls hierarchy construction.
type Options struct {
	// ShowEmptyBoxes pads the tree with placeholders up to the deepest
	// recorded generation.
	ShowEmptyBoxes bool
}

// Build expands root into a node tree. It returns nil when root is nil.
// The record tree is not modified.
func Build(root *ancestry.Person, opts Options) *Node {
	if root == nil {
		return nil
	}
	b := builder{opts: opts, maxGen: maxGeneration(root, 1)}
	n := b.real(root, 1)

	id := 0
	n.Walk(func(n *Node) bool {
		id++
		n.ID = id
		return true
	})
	n.number(1)
	return n
}

func (n *Node) number(sosa int) {
	n.Sosa = sosa
	for i, p := range n.Parents {
		slot := i
		if len(n.Parents) == 1 && p.Payload.SexSlot() == ancestry.SexFemale {
			slot = 1
		}
		p.number(2*sosa + slot)
	}
}

type builder struct {
	opts   Options
	maxGen int
}

func (b *builder) real(p *ancestry.Person, gen int) *Node {
	if p.Generation > 0 {
		gen = p.Generation
	}
	rec := *p
	rec.Generation = gen
	rec.Parents = nil
	n := &Node{Payload: Real{Person: &rec}}

	for _, parent := range p.Parents {
		if parent == nil {
			continue
		}
		n.Parents = append(n.Parents, b.real(parent, gen+1))
	}
	b.balance(n, gen)
	return n
}

func (b *builder) placeholder(gen int, sex ancestry.Sex) *Node {
	n := &Node{Payload: Placeholder{Generation: gen, Sex: sex}}
	b.balance(n, gen)
	return n
}

func (b *builder) balance(n *Node, gen int) {
	if !b.opts.ShowEmptyBoxes {
		return
	}
	switch len(n.Parents) {
	case 0:
		if gen < b.maxGen {
			n.Parents = []*Node{
				b.placeholder(gen+1, ancestry.SexMale),
				b.placeholder(gen+1, ancestry.SexFemale),
			}
		}
	case 1:
		// Unknown sex counts as male.
		if n.Parents[0].Payload.SexSlot() == ancestry.SexFemale {
			n.Parents = []*Node{b.placeholder(gen+1, ancestry.SexMale), n.Parents[0]}
		} else {
			n.Parents = append(n.Parents, b.placeholder(gen+1, ancestry.SexFemale))
		}
	}
}

func maxGeneration(p *ancestry.Person, gen int) int {
	if p.Generation > 0 {
		gen = p.Generation
	}
	highest := gen
	for _, parent := range p.Parents {
		if parent == nil {
			continue
		}
		if g := maxGeneration(parent, gen+1); g > highest {
			highest = g
		}
	}
	return highest
}

// Walk calls fn for n and its ancestors in pre-order, father side first.
// Returning false skips the ancestors of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, parent := range n.Parents {
		parent.Walk(fn)
	}
}

// Count returns the number of nodes including placeholders.
func (n *Node) Count() int {
	c := 0
	n.Walk(func(*Node) bool { c++; return true })
	return c
}

// Depth returns the number of levels below and including n.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, parent := range n.Parents {
		if pd := parent.Depth(); pd > d {
			d = pd
		}
	}
	return d + 1
}
