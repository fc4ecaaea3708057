// rbstdemo fills two randomized binary search trees with unique random keys,
// prints them in different orders, and prints the union of them.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/btcsuite/btclog"
	Go_Utils "github.com/g-m-twostay/go-rbst"
	"github.com/g-m-twostay/go-rbst/Trees"
)

var log = btclog.Disabled

// uniqueKeys draws n distinct keys in [0, bound) in the order they came up.
// n must not exceed bound.
func uniqueKeys(rng *rand.Rand, n, bound int) []int {
	seen := Go_Utils.MakeBitArray(bound)
	keys := make([]int, 0, n)
	for len(keys) < n {
		if k := rng.IntN(bound); !seen.Get(k) {
			seen.Up(k)
			keys = append(keys, k)
		}
	}
	return keys
}

// printOrder writes the keys given by it on one line after title.
func printOrder(w io.Writer, title string, it Trees.Iterator[*Trees.Node[int, uint]]) {
	fmt.Fprintln(w, title)
	for it.HasNext() {
		fmt.Fprintf(w, "%d ", it.Next().Key())
	}
	fmt.Fprintln(w)
}

func printKeys(w io.Writer, title string, keys []int) {
	fmt.Fprintln(w, title)
	for _, k := range keys {
		fmt.Fprintf(w, "%d ", k)
	}
	fmt.Fprintln(w)
}

// run the demonstration with cfg, writing the results to w.
func run(cfg *config, w io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("Seeding key generator with %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	keysA := uniqueKeys(rng, cfg.Count, cfg.Max)
	printKeys(w, "Elements to be inserted in Tree A:", keysA)
	keysB := uniqueKeys(rng, cfg.Count, cfg.Max)
	printKeys(w, "Elements to be inserted in Tree B:", keysB)

	a, b := Trees.New[int, uint](), Trees.New[int, uint]()
	for _, k := range keysA {
		a.Insert(k)
	}
	for _, k := range keysB {
		b.Insert(k)
	}
	log.Debugf("Tree A: size %d, depth %d; tree B: size %d, depth %d",
		a.Size(), a.MaxDepth(), b.Size(), b.MaxDepth())

	printOrder(w, "Tree A (post-order) before union:", a.PostOrder())
	printOrder(w, "Tree B (in-order):", b.InOrder())

	added := a.UnionWith(b)
	printOrder(w, "Tree A (pre-order) after union with B:", a.PreOrder())
	log.Infof("Union added %d keys of B to A, A now holds %d keys", added, a.Size())

	if a.Corrupt() {
		return fmt.Errorf("tree A is corrupt after union")
	}
	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	defer os.Stderr.Sync()
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log = backendLogger.Logger("MAIN")
	log.SetLevel(level)
	treeLog := backendLogger.Logger("RBST")
	treeLog.SetLevel(level)
	Trees.UseLogger(treeLog)

	return run(cfg, os.Stdout)
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
