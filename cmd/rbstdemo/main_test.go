package main

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultCount, cfg.Count)
	require.Equal(t, defaultMax, cfg.Max)
	require.Equal(t, defaultDebugLevel, cfg.DebugLevel)

	cfg, err = loadConfig([]string{"-n", "10", "--max=20", "-s", "7", "--debuglevel=debug"})
	require.NoError(t, err)
	require.Equal(t, &config{Count: 10, Max: 20, Seed: 7, DebugLevel: "debug"}, cfg)

	tests := []struct {
		name string
		args []string
	}{
		{"zero max", []string{"--max=0"}},
		{"count over max", []string{"--count=11", "--max=10"}},
		{"negative count", []string{"--count=-1"}},
		{"bad level", []string{"--debuglevel=loud"}},
		{"unknown flag", []string{"--nope"}},
	}
	for _, test := range tests {
		_, err := loadConfig(test.args)
		require.Errorf(t, err, "%s: no error", test.name)
	}
}

func TestUniqueKeys(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 50, 100} {
		keys := uniqueKeys(rng, n, 100)
		require.Len(t, keys, n)
		sorted := slices.Clone(keys)
		slices.Sort(sorted)
		require.Len(t, slices.Compact(sorted), n, "keys repeat: %v", keys)
		for _, k := range keys {
			require.True(t, k >= 0 && k < 100, "key %d out of range", k)
		}
	}
}

// parseLine reads the space separated keys on line i of out.
func parseLine(t *testing.T, out string, i int) []int {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), i)
	var keys []int
	for _, f := range strings.Fields(lines[i]) {
		k, err := strconv.Atoi(f)
		require.NoError(t, err)
		keys = append(keys, k)
	}
	return keys
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&config{Count: 6, Max: 100, Seed: 42, DebugLevel: "off"}, &out))
	s := out.String()
	require.Contains(t, s, "Tree A (post-order) before union:")
	require.Contains(t, s, "Tree B (in-order):")
	require.Contains(t, s, "Tree A (pre-order) after union with B:")

	keysA, keysB := parseLine(t, s, 1), parseLine(t, s, 3)
	postA, inB, preUnion := parseLine(t, s, 5), parseLine(t, s, 7), parseLine(t, s, 9)
	require.ElementsMatch(t, keysA, postA)
	require.True(t, slices.IsSorted(inB))
	require.ElementsMatch(t, keysB, inB)

	union := slices.Concat(keysA, keysB)
	slices.Sort(union)
	require.ElementsMatch(t, slices.Compact(union), preUnion)
}
