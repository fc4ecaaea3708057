package Go_Utils

import (
	_ "unsafe"
)

// CheapRandN returns a pseudo-random number in [0,n) using the random state of
// the current M. It's not cryptographically secure, but it's much cheaper than
// math/rand and safe to call from any goroutine.
//
//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32
