// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"bytes"

	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/rawtrie"
	"github.com/gaissmaier/datrie/internal/store"
	"github.com/gaissmaier/datrie/internal/tailpool"
)

// lookupPlain walks the array one key byte at a time, then consults
// the 0x00 child of the node key ends on. Grounded on
// original_source/plain_da.hpp's PlainDa::contains.
func lookupPlain(st *store.Store, al algebra.Algebra, key []byte) bool {
	i := int32(0)
	for _, c := range key {
		j := al.Op(st.Get(i).Base, c)
		if j < 0 || j >= st.Len() || st.Get(j).Check != i {
			return false
		}
		i = j
	}
	j := al.Op(st.Get(i).Base, rawtrie.LeafLabel)
	return j >= 0 && j < st.Len() && st.Get(j).Check == i
}

// lookupTail walks the array like lookupPlain, but stops early at any
// tail-terminal slot (base < 0) and finishes the match against the
// suffix pool instead of continuing to read base/check slots.
func lookupTail(st *store.Store, al algebra.Algebra, pool *tailpool.Pool, key []byte) bool {
	// No stored key contains 0x00; rejecting it up front keeps a leaf
	// slot's Invalid base or a pool record terminator from matching.
	if bytes.IndexByte(key, rawtrie.LeafLabel) >= 0 {
		return false
	}
	i := int32(0)
	for n, c := range key {
		if st.Get(i).Base < 0 {
			return pool.MatchSuffix(-st.Get(i).Base, key[n:])
		}
		j := al.Op(st.Get(i).Base, c)
		if j >= st.Len() || st.Get(j).Check != i {
			return false
		}
		i = j
	}
	if st.Get(i).Base < 0 {
		return pool.MatchSuffix(-st.Get(i).Base, nil)
	}
	j := al.Op(st.Get(i).Base, rawtrie.LeafLabel)
	return j < st.Len() && st.Get(j).Check == i
}
