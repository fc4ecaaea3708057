package Sets

// Set is a collection of elements where membership is what matters. Put
// returns false when the element is already in the Set. Range calls f on
// the elements until f returns false; the order is up to the implementation.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Size() uint
	Range(f func(E) bool)
}

// ExtendedSet is a Set that can absorb other Sets.
type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s that aren't in the receiver. Returns the number of
	//elements added.
	PutAll(s Set[E]) uint
}

// Equal reports whether a and b hold the same elements.
// Time: O(|a|*T(b.Has))
func Equal[E any](a, b Set[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := true
	a.Range(func(e E) bool {
		eq = b.Has(e)
		return eq
	})
	return eq
}
