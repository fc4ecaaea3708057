package Trees

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and the red-black tree of https://github.com/emirpasic/gods for ordered
// insertion, and with https://github.com/alphadose/haxmap and
// https://github.com/cornelk/hashmap for membership checks, which is what
// UnionWith spends its time on.

const (
	bAddN   = 1 << 15
	bDegree = 32
)

var bKeys = rand.Perm(bAddN)

func BenchmarkRBSTree_Insert(b *testing.B) {
	var t *RBSTree[int, uint32]
	for range b.N {
		t = New[int, uint32]()
		for _, k := range bKeys {
			t.Insert(k)
		}
	}
	b.Log(t.MaxDepth())
}

func BenchmarkRBSTree_InsertSorted(b *testing.B) {
	for range b.N {
		t := New[int, uint32]()
		for k := range bAddN {
			t.Insert(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](bDegree)
		for _, k := range bKeys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, k := range bKeys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			t.Put(k, struct{}{})
		}
	}
}

func setupRBSTree(b *testing.B) *RBSTree[int, uint32] {
	b.Helper()
	t := New[int, uint32]()
	for _, k := range bKeys {
		t.Insert(k)
	}
	return t
}

func BenchmarkRBSTree_Has(b *testing.B) {
	t := setupRBSTree(b)
	b.ResetTimer()
	for range b.N {
		for k := range bAddN {
			if !t.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkHaxMap_Has(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for k := range bAddN {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHashMap_Has(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for k := range bAddN {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkRBSTree_UnionWith(b *testing.B) {
	src := setupRBSTree(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		dst := New[int, uint32]()
		for k := range bAddN / 2 {
			dst.Insert(bKeys[k])
		}
		b.StartTimer()
		dst.UnionWith(src)
	}
}

func BenchmarkRBSTree_InOrder(b *testing.B) {
	t := setupRBSTree(b)
	b.ResetTimer()
	for range b.N {
		for it := t.InOrder(); it.HasNext(); {
			it.Next()
		}
	}
}
