package Go_Utils

import (
	"math/bits"
	"testing"
)

func TestBitArray(t *testing.T) {
	a := MakeBitArray(100)
	if a.Len() < 100 || a.Len()%bits.UintSize != 0 {
		t.Errorf("length is %d", a.Len())
	}
	for i := 0; i < 100; i += 3 {
		a.Up(i)
	}
	for i := range 100 {
		if a.Get(i) != (i%3 == 0) {
			t.Errorf("bit %d is %v", i, a.Get(i))
		}
	}
	if c := a.Count(); c != 34 {
		t.Errorf("count is %d, want 34", c)
	}
	a.Down(0)
	if a.Get(0) || a.Count() != 33 {
		t.Errorf("bit 0 is still up")
	}
}

func TestCheapRandN(t *testing.T) {
	var seen [8]bool
	for range 1000 {
		v := CheapRandN(8)
		if v >= 8 {
			t.Fatalf("got %d, want less than 8", v)
		}
		seen[v] = true
	}
	for i, s := range seen {
		if !s {
			t.Errorf("%d never came up in 1000 draws", i)
		}
	}
}
