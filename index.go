// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"bytes"
	"math"

	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/rawtrie"
	"github.com/gaissmaier/datrie/internal/store"
	"github.com/gaissmaier/datrie/internal/tailpool"
	"github.com/gaissmaier/datrie/internal/xcheck"
)

// Index is a built, immutable double-array trie. The zero value is
// not usable; obtain one from Build.
type Index struct {
	store   *store.Store
	alg     algebra.Algebra
	tail    *tailpool.Pool // nil unless Options.StoreTail == StoreTailOn
	useTail bool
}

// Build constructs an Index over keyset, which must be sorted,
// duplicate-free, and contain no 0x00 byte (Build checks this and
// returns a *BuildError of KindInvalidKeyset otherwise, rather than
// silently misbuilding a caller contract breach). An empty keyset is
// not an error: it yields a minimum-size Index for which Contains
// always reports false (B1).
func Build(keyset [][]byte, opts Options) (*Index, error) {
	if opts.XCheck == Convolution || opts.XCheck == ConvolutionEmptyLink {
		return nil, ErrUnsupportedConfiguration
	}
	if err := validateKeyset(keyset); err != nil {
		return nil, err
	}

	al := algebra.For(opts.Algebra)
	st := store.New(opts.trackOccupancy())
	st.EnableRoot()

	idx := &Index{store: st, alg: al, useTail: opts.StoreTail == StoreTailOn}
	if idx.useTail {
		idx.tail = tailpool.New()
	}

	if len(keyset) == 0 {
		return idx, nil
	}

	b := &builder{
		finder:   &xcheck.Finder{Store: st, Alg: al, Strategy: opts.XCheck},
		store:    st,
		alg:      al,
		tail:     idx.tail,
		useTail:  idx.useTail,
		ordering: opts.EdgeOrdering,
	}

	root := rawtrie.Build(keyset)
	if err := b.visit(root, 0); err != nil {
		return nil, err
	}

	if idx.useTail {
		idx.tail.Build()
		if idx.tail.Len() > math.MaxInt32 {
			return nil, newBuildError(KindCapacityOverflow, "tail pool size %d exceeds int32 range", idx.tail.Len())
		}
		for i, p := range b.terminalSlots {
			idx.store.SetBase(p, -idx.tail.Offset(b.terminalIDs[i]))
		}
	}

	return idx, nil
}

// BuildFromRawTrie is Build's entry point for a precomputed raw trie,
// for callers that already partitioned their keyset (e.g. to share
// the tree across several Options).
func BuildFromRawTrie(root *rawtrie.Node, opts Options) (*Index, error) {
	if opts.XCheck == Convolution || opts.XCheck == ConvolutionEmptyLink {
		return nil, ErrUnsupportedConfiguration
	}
	al := algebra.For(opts.Algebra)
	st := store.New(opts.trackOccupancy())
	st.EnableRoot()

	idx := &Index{store: st, alg: al, useTail: opts.StoreTail == StoreTailOn}
	if idx.useTail {
		idx.tail = tailpool.New()
	}

	b := &builder{
		finder:   &xcheck.Finder{Store: st, Alg: al, Strategy: opts.XCheck},
		store:    st,
		alg:      al,
		tail:     idx.tail,
		useTail:  idx.useTail,
		ordering: opts.EdgeOrdering,
	}

	if err := b.visit(root, 0); err != nil {
		return nil, err
	}

	if idx.useTail {
		idx.tail.Build()
		if idx.tail.Len() > math.MaxInt32 {
			return nil, newBuildError(KindCapacityOverflow, "tail pool size %d exceeds int32 range", idx.tail.Len())
		}
		for i, p := range b.terminalSlots {
			idx.store.SetBase(p, -idx.tail.Offset(b.terminalIDs[i]))
		}
	}

	return idx, nil
}

// Len returns the current slot count, always a multiple of 256.
func (idx *Index) Len() int32 {
	return idx.store.Len()
}

// Contains reports whether key was present in the keyset Build was
// called with.
func (idx *Index) Contains(key []byte) bool {
	if idx.useTail {
		return lookupTail(idx.store, idx.alg, idx.tail, key)
	}
	return lookupPlain(idx.store, idx.alg, key)
}

// validateKeyset enforces the Build input contract: strictly sorted,
// unique, and free of the reserved 0x00 byte.
func validateKeyset(keyset [][]byte) error {
	for i, k := range keyset {
		for _, c := range k {
			if c == rawtrie.LeafLabel {
				return newBuildError(KindInvalidKeyset, "key %d contains the reserved 0x00 byte", i)
			}
		}
		if i > 0 && bytes.Compare(keyset[i-1], k) >= 0 {
			return newBuildError(KindInvalidKeyset, "keyset is not strictly sorted and duplicate-free at index %d", i)
		}
	}
	return nil
}
