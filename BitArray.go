package Go_Utils

import (
	"math/bits"
)

// MakeBitArray with at least size bits, all down.
func MakeBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed length array of bits. Its methods aren't thread-safe.
type BitArray struct {
	bits []uint
}

// Len is the number of bits the array can hold, a multiple of bits.UintSize.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, b := range u.bits {
		c += bits.OnesCount(b)
	}
	return
}
