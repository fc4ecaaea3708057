package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

// The iterators keep the pending nodes in an explicit stack instead of
// recursing, so that the caller drives the traversal. They only read the
// tree. The sentinel is never pushed.

// PreOrder returns an Iterator giving the nodes of u in pre-order: A node,
// then its left subtree, then its right subtree.
// Time: O(1) at each call to Next. Space: O(D)
func (u *RBSTree[T, S]) PreOrder() Iterator[*Node[T, S]] {
	it := &preOrder[T, S]{arraystack.New()}
	if u.root != u.nilPtr {
		it.st.Push(u.root)
	}
	return it
}

// InOrder returns an Iterator giving the nodes of u in in-order, that is in
// ascending order of values.
// Time: amortized O(1) at each call to Next. Space: O(D)
func (u *RBSTree[T, S]) InOrder() Iterator[*Node[T, S]] {
	it := &inOrder[T, S]{arraystack.New()}
	pushLeft(it.st, u.root)
	return it
}

// PostOrder returns an Iterator giving the nodes of u in post-order: the left
// subtree, then the right subtree, then the node.
// Time: amortized O(1) at each call to Next. Space: O(D)
func (u *RBSTree[T, S]) PostOrder() Iterator[*Node[T, S]] {
	it := &postOrder[T, S]{st: arraystack.New()}
	pushLeft(it.st, u.root)
	return it
}

// pushLeft pushes n and its chain of left descendants.
func pushLeft[T any, S constraints.Unsigned](st *arraystack.Stack, n *Node[T, S]) {
	for ; n.sz != 0; n = n.l {
		st.Push(n)
	}
}

type preOrder[T any, S constraints.Unsigned] struct {
	st *arraystack.Stack
}

func (it *preOrder[T, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *preOrder[T, S]) Next() *Node[T, S] {
	top, ok := it.st.Pop()
	if !ok {
		return nil
	}
	cur := top.(*Node[T, S])
	//right first so that left is popped first.
	if cur.r.sz != 0 {
		it.st.Push(cur.r)
	}
	if cur.l.sz != 0 {
		it.st.Push(cur.l)
	}
	return cur
}

type inOrder[T any, S constraints.Unsigned] struct {
	st *arraystack.Stack
}

func (it *inOrder[T, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *inOrder[T, S]) Next() *Node[T, S] {
	top, ok := it.st.Pop()
	if !ok {
		return nil
	}
	cur := top.(*Node[T, S])
	pushLeft(it.st, cur.r)
	return cur
}

// postOrder keeps the last node it gave. A node on top of the stack is given
// only when its right subtree is empty or was just finished, i.e. its right
// child is last; otherwise the right subtree is scheduled above it.
type postOrder[T any, S constraints.Unsigned] struct {
	st   *arraystack.Stack
	last *Node[T, S]
}

func (it *postOrder[T, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *postOrder[T, S]) Next() *Node[T, S] {
	for {
		top, ok := it.st.Peek()
		if !ok {
			return nil
		}
		cur := top.(*Node[T, S])
		if cur.r.sz != 0 && cur.r != it.last {
			pushLeft(it.st, cur.r)
			continue
		}
		it.st.Pop()
		it.last = cur
		return cur
	}
}
