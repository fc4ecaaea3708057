package Trees

import (
	"math"
	"math/rand/v2"

	Go_Utils "github.com/g-m-twostay/go-rbst"
	"github.com/g-m-twostay/go-rbst/Sets"
	"golang.org/x/exp/constraints"
)

// RBSTree is a randomized binary search tree. It keeps the size of every
// subtree and uses it at insertion: a new value entering a subtree of size s
// becomes the root of that subtree with probability 1/(s+1). The resulting
// shape is distributed as if the values were inserted in a uniformly random
// order, whatever the actual order was, so the expected depth D is O(log n)
// without any balance metadata besides the sizes.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees. S must be wide enough
// to hold the size of the tree plus one.
// Values equal to A node's value are inserted to its right subtree, but later
// rotations can move them to either side; Find still reaches one of them.
// RBSTree isn't safe for concurrent use. Callers must not let more than one
// goroutine use the same tree while any of them modifies it.
type RBSTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root   *Node[T, S] //the root of the tree. It's nilPtr initially.
	nilPtr *Node[T, S] //the sentinel described in Node.
	randN  func(S) S   //returns A uniformly distributed value in [0,n).
}

// New returns an empty RBSTree drawing its random numbers from the runtime.
// RBSTree shouldn't be created directly using struct literal.
func New[T constraints.Ordered, S constraints.Unsigned]() *RBSTree[T, S] {
	return NewWithRand[T, S](cheapRandN[S])
}

// NewWithRand returns an empty RBSTree drawing its random numbers from randN.
// randN(n) must return A uniformly distributed value in [0,n); any skew in it
// skews the shape of the tree.
func NewWithRand[T constraints.Ordered, S constraints.Unsigned](randN func(n S) S) *RBSTree[T, S] {
	z := new(Node[T, S])
	z.l, z.r = z, z
	return &RBSTree[T, S]{z, z, randN}
}

func cheapRandN[S constraints.Unsigned](n S) S {
	if uint64(n) <= math.MaxUint32 {
		return S(Go_Utils.CheapRandN(uint32(n)))
	}
	return S(rand.Uint64N(uint64(n)))
}

func (u *RBSTree[T, S]) newNode(v T) *Node[T, S] {
	return &Node[T, S]{v, u.nilPtr, u.nilPtr, 1}
}

// Root of the tree, nil if the tree is empty.
func (u *RBSTree[T, S]) Root() *Node[T, S] {
	return realPtr(u.root)
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *RBSTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// insert the value v to the subtree rooting at cur recursively, returning the
// new root of the subtree. At each node A random draw decides whether v is
// inserted at the root of the subtree instead of further down.
// If unique is true, the subtree is left untouched when v is met on the way
// down and the second return value is false.
func (u *RBSTree[T, S]) insert(cur *Node[T, S], v T, unique bool) (*Node[T, S], bool) {
	if cur == u.nilPtr {
		return u.newNode(v), true
	} else if unique && v == cur.v {
		return cur, false
	} else if u.randN(cur.sz+1) == 0 {
		return u.insertAtRoot(cur, v, unique)
	}
	inserted := false
	if v < cur.v {
		cur.l, inserted = u.insert(cur.l, v, unique)
	} else {
		cur.r, inserted = u.insert(cur.r, v, unique)
	}
	if inserted {
		cur.fixSize()
	}
	return cur, inserted
}

// insertAtRoot inserts v to the subtree rooting at cur so that v becomes the
// root of it. v is inserted at the root of the proper child subtree first,
// then rotated up once. unique is the same as in insert.
func (u *RBSTree[T, S]) insertAtRoot(cur *Node[T, S], v T, unique bool) (*Node[T, S], bool) {
	if cur == u.nilPtr {
		return u.newNode(v), true
	} else if unique && v == cur.v {
		return cur, false
	}
	inserted := false
	if v < cur.v {
		if cur.l, inserted = u.insertAtRoot(cur.l, v, unique); inserted {
			return rotateRight(cur), true
		}
	} else {
		if cur.r, inserted = u.insertAtRoot(cur.r, v, unique); inserted {
			return rotateLeft(cur), true
		}
	}
	return cur, false
}

// Insert [Tree.Insert]. Recursive.
// Repeated values are inserted again and count towards the sizes, use Put
// for set semantics.
// Time: expected O(log n)
func (u *RBSTree[T, S]) Insert(v T) {
	u.root, _ = u.insert(u.root, v, false)
}

// Put [Tree.Put]. Recursive.
// Unlike checking with Has before calling Insert, Put walks down the tree only
// once.
// Time: expected O(log n)
func (u *RBSTree[T, S]) Put(v T) (added bool) {
	u.root, added = u.insert(u.root, v, true)
	return
}

// Find the node holding v. Returns nil if there's no such node.
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Find(v T) *Node[T, S] {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Value [Tree.Value]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Value(v T) (T, bool) {
	if n := u.Find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Minimum() (T, bool) {
	cur := u.root
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.v, cur != u.nilPtr
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Maximum() (T, bool) {
	cur := u.root
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, cur != u.nilPtr
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// KLargest [Tree.KLargest]
// Returns (x,true) if 1<=k<=Size(), otherwise (zero value,false).
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) KLargest(k uint) (T, bool) {
	if k == 0 || k > u.Size() {
		return *new(T), false
	}
	cur, t := u.root, S(k)
	for {
		if t < cur.l.sz+1 {
			cur = cur.l
		} else if t == cur.l.sz+1 {
			return cur.v, true
		} else {
			t -= cur.l.sz + 1
			cur = cur.r
		}
	}
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *RBSTree[T, S]) RankOf(v T) uint {
	cur := u.root
	var ra S = 0
	for cur != u.nilPtr {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return uint(ra + cur.l.sz + 1)
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0
}

// UnionWith puts every value of src that isn't in u to u. src is traversed
// in pre-order and isn't modified. Returns the number of values added.
// Calling it with u itself adds nothing.
// Time: expected O(|src|*log(|u|+|src|))
func (u *RBSTree[T, S]) UnionWith(src *RBSTree[T, S]) (added uint) {
	for it := src.PreOrder(); it.HasNext(); {
		if u.Put(it.Next().v) {
			added++
		}
	}
	log.Debugf("union added %d of %d values, size is now %d", added, src.Size(), u.Size())
	return
}

// PutAll [Sets.ExtendedSet.PutAll]
// s is traversed with its Range, so the order depends on s.
func (u *RBSTree[T, S]) PutAll(s Sets.Set[T]) (added uint) {
	s.Range(func(v T) bool {
		if u.Put(v) {
			added++
		}
		return true
	})
	return
}

// Range calls f on the values in in-order until f returns false.
func (u *RBSTree[T, S]) Range(f func(T) bool) {
	for it := u.InOrder(); it.HasNext(); {
		if !f(it.Next().v) {
			return
		}
	}
}

// Keys [Tree.Keys]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *RBSTree[T, S]) Keys() func() (T, bool) {
	it := u.InOrder()
	return func() (r T, has bool) {
		if n := it.Next(); n != nil {
			return n.v, true
		}
		return
	}
}

// Corrupt [Tree.Corrupt]. Recursive.
// Checks the ordering of the values and the size kept at every node.
// Time: O(n); Space: O(D)
func (u *RBSTree[T, S]) Corrupt() bool {
	if z := u.nilPtr; z.sz != 0 || z.l != z || z.r != z {
		log.Warnf("sentinel node was modified")
		return true
	}
	_, bad := u.corrupt(u.root, nil, nil)
	return bad
}

// corrupt checks the subtree rooting at cur, where every value must be in
// [lo,hi]; nil means unbounded. The bounds are inclusive because rotations
// can move A repeated value to the left of its equal. Returns the number of nodes counted.
func (u *RBSTree[T, S]) corrupt(cur *Node[T, S], lo, hi *T) (S, bool) {
	if cur == u.nilPtr {
		return 0, false
	}
	if (lo != nil && cur.v < *lo) || (hi != nil && cur.v > *hi) {
		log.Warnf("value %v is out of order", cur.v)
		return 0, true
	}
	ls, bad := u.corrupt(cur.l, lo, &cur.v)
	if bad {
		return 0, true
	}
	rs, bad := u.corrupt(cur.r, &cur.v, hi)
	if bad {
		return 0, true
	}
	if cur.sz != ls+rs+1 {
		log.Warnf("node %v has size %d, counted %d", cur.v, cur.sz, ls+rs+1)
		return 0, true
	}
	return cur.sz, false
}

func (u *RBSTree[T, S]) minDepth(c *Node[T, S], cd uint) uint {
	if c == u.nilPtr {
		return cd
	} else if c.l == u.nilPtr || c.r == u.nilPtr {
		return cd + 1
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth is the number of nodes on the shortest path from the root to A
// node with an empty child, 0 for an empty tree. Recursive.
func (u *RBSTree[T, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *RBSTree[T, S]) maxDepth(c *Node[T, S], cd uint) uint {
	if c == u.nilPtr {
		return cd
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth is the number of nodes on the longest path from the root, 0 for
// an empty tree. Recursive.
func (u *RBSTree[T, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}
