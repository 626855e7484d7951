// Package layout positions a hierarchy as a tidy tree.
//
// [Layout] runs the Buchheim/Walker tidy tree algorithm with a fixed node
// size taken from the orientation and a uniform separation of one node
// between all siblings and cousins. The generic (breadth, depth) positions
// are then mapped to chart pixels with the orientation's Norm.
//
// The result is a pure function of the hierarchy and the orientation: the
// same input always yields bit-identical coordinates. Nodes are listed in
// pre-order and every node except the root has exactly one link to each of
// its parents.
package layout
