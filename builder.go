// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"math"
	"sort"

	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/rawtrie"
	"github.com/gaissmaier/datrie/internal/store"
	"github.com/gaissmaier/datrie/internal/tailpool"
	"github.com/gaissmaier/datrie/internal/xcheck"
)

// maxSlotIndex bounds op(base, c) results: leave headroom for the
// final chunkSize-aligned expansion without int32 arithmetic wrapping.
const maxSlotIndex = math.MaxInt32 - 256

// builder walks a raw trie, allocating one store slot per edge and
// feeding each node's child-label set to the configured x-check
// strategy. Grounded on the dfs lambda in
// original_source/plain_da.hpp's PlainDa constructor, generalized past
// its PLUS-only CheckExpand(base+children.back()) call to the shared
// Algebra interface (c_last still bounds every other label under XOR:
// a byte label only ever flips the low 8 bits of base, so every
// op(base,c) for c in the same child set lands in the same 256-aligned
// block as op(base,c_last)).
type builder struct {
	finder   *xcheck.Finder
	store    *store.Store
	alg      algebra.Algebra
	tail     *tailpool.Pool
	useTail  bool
	ordering EdgeOrdering

	// terminalSlots[i] is the slot whose base holds -terminalIDs[i]
	// during the DFS; once Build's tail.Build has run, those base fields
	// are remapped from pool ids to pool offsets.
	terminalSlots []int32
	terminalIDs   []int32
}

// visit processes the raw-trie node n, which already occupies slot
// daIndex (enabled by the caller, except for the root which Build
// enables directly).
func (b *builder) visit(n *rawtrie.Node, daIndex int32) error {
	if b.useTail && n.ToLeaf {
		suffix := rawtrie.ResidualSuffix(n)
		id := b.tail.Push(suffix)
		b.store.SetBase(daIndex, -id)
		b.terminalSlots = append(b.terminalSlots, daIndex)
		b.terminalIDs = append(b.terminalIDs, id)
		return nil
	}

	labels := make([]byte, len(n.Edges))
	for i, e := range n.Edges {
		labels[i] = e.Label
	}

	var counter int
	base, err := b.finder.FindBase(labels, &counter)
	if err != nil {
		return err
	}

	// Under TAIL a negative base reads as a tail terminal, so a
	// single-label node whose base came out negative (PLUS, free-list
	// head below the label) takes the first free slot that gives a
	// non-negative base instead, or one past the end of the array.
	if b.useTail && base < 0 && len(labels) == 1 {
		head := b.store.EmptyHead()
		base = max(0, b.alg.Inv(b.store.Len(), labels[0]))
		for q := head; ; {
			if cand := b.alg.Inv(q, labels[0]); cand >= 0 {
				base = cand
				break
			}
			if q = b.store.Succ(q); q == head {
				break
			}
		}
	}

	last := labels[len(labels)-1]
	if int64(base)+int64(last) > maxSlotIndex {
		return newBuildError(KindCapacityOverflow, "base %d + label %d exceeds the addressable slot range", base, last)
	}
	b.store.ExpandTo(b.alg.Op(base, last))

	for _, e := range n.Edges {
		q := b.alg.Op(base, e.Label)
		b.store.Enable(q)
		b.store.SetCheck(q, daIndex)
		b.store.SetBase(q, store.Invalid)
	}

	b.store.SetBase(daIndex, base)

	for _, e := range b.orderedChildren(n.Edges) {
		if e.Child == nil {
			continue // the 0x00 edge terminates a key; it has no subtree
		}
		q := b.alg.Op(base, e.Label)
		if err := b.visit(e.Child, q); err != nil {
			return err
		}
	}
	return nil
}

// orderedChildren returns n's edges in the order the builder should
// recurse into them. The 0x00 edge (no subtree to allocate) always
// comes first; when EdgeOrderBySubtreeSizeDesc is selected the
// remaining edges are stably sorted by decreasing subtree size so the
// largest subtrees allocate while the array is least fragmented.
func (b *builder) orderedChildren(edges []rawtrie.Edge) []rawtrie.Edge {
	if b.ordering != EdgeOrderBySubtreeSizeDesc {
		return edges
	}

	out := make([]rawtrie.Edge, len(edges))
	copy(out, edges)

	start := 0
	if len(out) > 0 && out[0].Child == nil {
		start = 1
	}
	rest := out[start:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Child.SubtreeSize > rest[j].Child.SubtreeSize
	})
	return out
}
