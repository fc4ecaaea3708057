package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree unconditionally. Repeated values are kept.
	Insert(v T)
	//Put v to the Tree if it isn't there. Returning true if v was added.
	Put(v T) bool
	//Value returns the element equal to v.
	Value(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(T) (T, bool)
	//KLargest find the k-th element in in-order, so KLargest(1) is the minimum.
	//1<=k<=Size().
	KLargest(k uint) (T, bool)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 if v isn't in the tree.
	RankOf(v T) uint
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Keys returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	Keys() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// Iterator is A pull based traversal over the nodes of A tree. Next returns
// nil once HasNext is false. An Iterator can't be restarted, create A new one
// to traverse again. Dropping an Iterator before it's exhausted is fine.
type Iterator[N any] interface {
	HasNext() bool
	Next() N
}
