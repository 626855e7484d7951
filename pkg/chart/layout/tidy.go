package layout

import "github.com/matzehuels/pedigree/pkg/chart/hierarchy"

// tnode carries the bookkeeping of the Buchheim algorithm. The layout
// "children" of a node are its parents in the family tree.
type tnode struct {
	node     *hierarchy.Node
	parent   *tnode
	children []*tnode
	index    int
	depth    int

	ancestor *tnode // a
	thread   *tnode // t
	acc      *tnode // A, default ancestor of the children

	prelim float64 // z
	mod    float64 // m
	change float64 // c
	shift  float64 // s

	x float64
}

type tree struct {
	root  *tnode
	outer *tnode
}

func newTree(root *hierarchy.Node) *tree {
	outer := &tnode{}
	r := build(root, outer, 0, 0)
	outer.children = []*tnode{r}
	return &tree{root: r, outer: outer}
}

func build(n *hierarchy.Node, parent *tnode, index, depth int) *tnode {
	v := &tnode{node: n, parent: parent, index: index, depth: depth}
	v.ancestor = v
	for i, p := range n.Parents {
		v.children = append(v.children, build(p, v, i, depth+1))
	}
	return v
}

func (v *tnode) eachBefore(fn func(*tnode)) {
	fn(v)
	for _, c := range v.children {
		c.eachBefore(fn)
	}
}

func (v *tnode) eachAfter(fn func(*tnode)) {
	for _, c := range v.children {
		c.eachAfter(fn)
	}
	fn(v)
}

// position computes v.x in node units for every node, the root at 0.
func (t *tree) position() {
	t.root.eachAfter(firstWalk)
	t.outer.mod = -t.root.prelim
	t.root.eachBefore(secondWalk)
}

func firstWalk(v *tnode) {
	siblings := v.parent.children
	var w *tnode
	if v.index > 0 {
		w = siblings[v.index-1]
	}

	if len(v.children) > 0 {
		executeShifts(v)
		midpoint := (v.children[0].prelim + v.children[len(v.children)-1].prelim) / 2
		if w != nil {
			v.prelim = w.prelim + Separation
			v.mod = v.prelim - midpoint
		} else {
			v.prelim = midpoint
		}
	} else if w != nil {
		v.prelim = w.prelim + Separation
	}

	acc := v.parent.acc
	if acc == nil {
		acc = siblings[0]
	}
	v.parent.acc = apportion(v, w, acc)
}

func secondWalk(v *tnode) {
	v.x = v.prelim + v.parent.mod
	v.mod += v.parent.mod
}

func apportion(v, w, acc *tnode) *tnode {
	if w == nil {
		return acc
	}
	vip, vop := v, v
	vim, vom := w, v.parent.children[0]
	sip, sop := vip.mod, vop.mod
	sim, som := vim.mod, vom.mod

	for {
		vim, vip = nextRight(vim), nextLeft(vip)
		if vim == nil || vip == nil {
			break
		}
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.ancestor = v
		shift := vim.prelim + sim - vip.prelim - sip + Separation
		if shift > 0 {
			moveSubtree(nextAncestor(vim, v, acc), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.mod
		sip += vip.mod
		som += vom.mod
		sop += vop.mod
	}
	if vim != nil && nextRight(vop) == nil {
		vop.thread = vim
		vop.mod += sim - sop
	}
	if vip != nil && nextLeft(vom) == nil {
		vom.thread = vip
		vom.mod += sip - som
		acc = v
	}
	return acc
}

func nextLeft(v *tnode) *tnode {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.thread
}

func nextRight(v *tnode) *tnode {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.thread
}

func moveSubtree(wm, wp *tnode, shift float64) {
	change := shift / float64(wp.index-wm.index)
	wp.change -= change
	wp.shift += shift
	wm.change += change
	wp.prelim += shift
	wp.mod += shift
}

func executeShifts(v *tnode) {
	var shift, change float64
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.prelim += shift
		w.mod += shift
		change += w.change
		shift += w.shift + change
	}
}

func nextAncestor(vim, v, acc *tnode) *tnode {
	if vim.ancestor.parent == v.parent {
		return vim.ancestor
	}
	return acc
}
