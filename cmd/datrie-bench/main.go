// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command datrie-bench builds an Index from a newline-separated
// keyset file, verifies every key round-trips through Contains, and
// times a randomized lookup workload.
//
// Builds once, verifies every key, then times 1,000,000 probes x10,
// using github.com/spf13/pflag for flag parsing in the style of
// calvinalkan-agent-task's cmdLs/parseLsFlags split (a FlagSet per
// run, explicit validation before use) rather than the bare flag
// package.
package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/gaissmaier/datrie"
)

const (
	probesPerLoop = 1_000_000
	loops         = 10
)

func main() {
	log.SetFlags(0)

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("datrie-bench: %v", err)
	}

	keyset, err := readKeyset(cfg.keysetPath)
	if err != nil {
		log.Fatalf("datrie-bench: %v", err)
	}
	log.Printf("loaded %d keys from %s", len(keyset), cfg.keysetPath)

	opts := datrie.Options{
		Algebra:      cfg.algebra,
		XCheck:       cfg.xcheck,
		EdgeOrdering: cfg.edgeOrdering,
		StoreTail:    cfg.storeTail,
	}

	start := time.Now()
	idx, err := datrie.Build(keyset, opts)
	if err != nil {
		log.Fatalf("datrie-bench: build failed: %v", err)
	}
	log.Printf("build: %v, slots=%d", time.Since(start), idx.Len())

	for _, key := range keyset {
		if !idx.Contains(key) {
			log.Fatalf("datrie-bench: built index does not contain key %q", key)
		}
	}
	log.Printf("verified %d keys", len(keyset))

	runLookupBenchmark(idx, keyset)
}

type config struct {
	keysetPath   string
	algebra      datrie.Algebra
	xcheck       datrie.XCheckStrategy
	edgeOrdering datrie.EdgeOrdering
	storeTail    datrie.StoreTail
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("datrie-bench", flag.ContinueOnError)

	keysetPath := fs.String("keyset", "", "path to a newline-separated keyset file (required)")
	algebra := fs.String("algebra", "plus", "address algebra: plus or xor")
	xcheck := fs.String("xcheck", "empty-link", "x-check strategy: empty-link, word-wide, or hybrid")
	edgeOrdering := fs.Bool("edge-ordering", false, "process children in decreasing subtree size")
	storeTail := fs.Bool("store-tail", false, "enable TAIL suffix-pool compression")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if *keysetPath == "" {
		return config{}, fmt.Errorf("--keyset is required")
	}

	cfg := config{keysetPath: *keysetPath}

	switch *algebra {
	case "plus":
		cfg.algebra = datrie.Plus
	case "xor":
		cfg.algebra = datrie.Xor
	default:
		return config{}, fmt.Errorf("unknown --algebra %q", *algebra)
	}

	switch *xcheck {
	case "empty-link":
		cfg.xcheck = datrie.EmptyLink
	case "word-wide":
		cfg.xcheck = datrie.WordWide
	case "hybrid":
		cfg.xcheck = datrie.WordWideEmptyLink
	default:
		return config{}, fmt.Errorf("unknown --xcheck %q", *xcheck)
	}

	if *edgeOrdering {
		cfg.edgeOrdering = datrie.EdgeOrderBySubtreeSizeDesc
	}
	if *storeTail {
		cfg.storeTail = datrie.StoreTailOn
	}

	return cfg, nil
}

func readKeyset(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keyset [][]byte
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		keyset = append(keyset, []byte(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return keyset, nil
}

// runLookupBenchmark times loops passes of probesPerLoop Contains
// calls each, drawing uniformly from keyset so the workload is
// realistic positive-heavy lookup traffic.
func runLookupBenchmark(idx *datrie.Index, keyset [][]byte) {
	if len(keyset) == 0 {
		log.Printf("empty keyset, skipping lookup benchmark")
		return
	}

	prng := rand.New(rand.NewPCG(42, 42))
	for loop := 0; loop < loops; loop++ {
		start := time.Now()
		var hits int
		for i := 0; i < probesPerLoop; i++ {
			key := keyset[prng.IntN(len(keyset))]
			if idx.Contains(key) {
				hits++
			}
		}
		elapsed := time.Since(start)
		log.Printf("loop %d: %d probes in %v (%.1f ns/probe), hits=%d",
			loop, probesPerLoop, elapsed, float64(elapsed.Nanoseconds())/float64(probesPerLoop), hits)
	}
}
