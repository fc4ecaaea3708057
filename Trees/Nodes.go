package Trees

import "golang.org/x/exp/constraints"

// Node in the RBSTree.
// The zero value is meaningless. Every tree has A sentinel node nilPtr that
// stands for an empty subtree: both of its children are itself and sz=0, so
// sizes can be read without checking for emptiness. The exported accessors
// translate the sentinel to nil.
type Node[T any, S constraints.Unsigned] struct {
	v    T
	l, r *Node[T, S]
	sz   S
}

// Key held by the node.
func (n *Node[T, S]) Key() T {
	return n.v
}

// Size of the subtree rooting at n, n included.
func (n *Node[T, S]) Size() S {
	return n.sz
}

// Left child, nil if there's none.
func (n *Node[T, S]) Left() *Node[T, S] {
	return realPtr(n.l)
}

// Right child, nil if there's none.
func (n *Node[T, S]) Right() *Node[T, S] {
	return realPtr(n.r)
}

// realPtr maps the sentinel to nil. The sentinel is the only node with sz=0.
func realPtr[T any, S constraints.Unsigned](n *Node[T, S]) *Node[T, S] {
	if n.sz == 0 {
		return nil
	}
	return n
}

// fixSize recomputes the size of n from its children.
func (n *Node[T, S]) fixSize() {
	n.sz = n.l.sz + n.r.sz + 1
}

// rotateLeft promotes the right child of n and returns it as the new root of
// the subtree. n is returned unchanged when it has no right child.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n *Node[T, S]) *Node[T, S] {
	rc := n.r
	if rc.sz == 0 {
		return n
	}
	n.r = rc.l
	rc.l = n
	n.fixSize()
	rc.fixSize()
	return rc
}

// rotateRight promotes the left child of n and returns it as the new root of
// the subtree. n is returned unchanged when it has no left child.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n *Node[T, S]) *Node[T, S] {
	lc := n.l
	if lc.sz == 0 {
		return n
	}
	n.l = lc.r
	lc.r = n
	n.fixSize()
	lc.fixSize()
	return lc
}
