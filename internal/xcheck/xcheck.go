// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package xcheck implements the base-finder ("x-check") strategies:
// given a node's sorted, strictly increasing child-label set, find a
// base such that every (base, label) address lands on a disabled slot.
//
// Grounded on original_source/double_array_base.hpp's
// DoubleArrayBase::FindBase dispatch and its FindBaseELM/FindBaseWW
// branches; EMPTY-LINK and WORD-WIDE are normative, convolution is an
// optional stub (see convolution.go).
package xcheck

import (
	"errors"

	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/store"
)

// Strategy selects which base-finding algorithm a Finder runs.
type Strategy uint8

const (
	// EmptyLink walks the free-list only.
	EmptyLink Strategy = iota
	// WordWide scans the occupancy bitmap in aligned windows.
	WordWide
	// WordWideEmptyLink hybridizes WordWide with free-list jumps across
	// densely populated windows (PLUS algebra only; see wordWidePlus).
	WordWideEmptyLink
	// Convolution is the optional NTT/WHT-based strategy; unimplemented.
	Convolution
	// ConvolutionEmptyLink is Convolution's free-list-terminated variant.
	ConvolutionEmptyLink
)

// ErrUnsupportedConfiguration is returned when Convolution or
// ConvolutionEmptyLink is selected: the number-theoretic variant is
// optional, and its interface is provided without an implementation
// (see convolution.go).
var ErrUnsupportedConfiguration = errors.New("xcheck: convolution strategy not compiled in")

// Finder finds a valid base for a node's child-label set against one
// store, using one address algebra and one strategy.
type Finder struct {
	Store    *store.Store
	Alg      algebra.Algebra
	Strategy Strategy
}

// FindBase returns a base b such that for every c in children, either
// Alg.Op(b, c) >= Store.Len() (the caller is expected to grow the
// array) or that slot is currently disabled. children must be
// non-empty and strictly increasing. counter, if non-nil, is
// incremented once per unsuccessful candidate the strategy visits.
func (f *Finder) FindBase(children []byte, counter *int) (int32, error) {
	if len(children) == 0 {
		panic("xcheck: FindBase called with an empty child set")
	}

	c0 := children[0]

	// Fast exit shared by every strategy: with no free slot at all,
	// the only option is to force an append past the end of the array.
	if f.Store.EmptyHead() == store.Invalid {
		return max32(0, f.Alg.Inv(f.Store.Len(), c0)), nil
	}

	switch f.Strategy {
	case EmptyLink:
		return emptyLink(f.Alg, f.Store, children, counter), nil

	case WordWide:
		if f.Alg.Kind() == algebra.Xor {
			return wordWideXor(f.Store, children, counter), nil
		}
		return wordWidePlus(f.Alg, f.Store, children, false, counter), nil

	case WordWideEmptyLink:
		if f.Alg.Kind() == algebra.Xor {
			// The hybrid free-list skip is only defined here for the
			// PLUS algebra's 64-bit windows; for XOR the plain 256-bit
			// word-wide scan is already the strongest strategy, so the
			// hybrid tag degrades to it.
			return wordWideXor(f.Store, children, counter), nil
		}
		return wordWidePlus(f.Alg, f.Store, children, true, counter), nil

	case Convolution, ConvolutionEmptyLink:
		return 0, ErrUnsupportedConfiguration

	default:
		panic("xcheck: unknown strategy")
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// emptyLink walks the free-list, anchoring c0 on each free slot in
// turn. Grounded on FindBaseELM in original_source/double_array_base.hpp.
func emptyLink(al algebra.Algebra, st *store.Store, children []byte, counter *int) int32 {
	c0 := children[0]
	head := st.EmptyHead()

	if len(children) == 1 {
		return al.Inv(head, c0)
	}

	baseFront := al.Inv(head, c0)
	base := baseFront

	for al.Op(base, c0) < st.Len() {
		if base >= 0 && fitsAt(al, st, base, children[1:]) {
			return base
		}

		nextFree := st.Succ(al.Op(base, c0))
		base = al.Inv(nextFree, c0)
		if base == baseFront {
			break
		}
		if counter != nil {
			*counter++
		}
	}

	return max32(0, al.Inv(st.Len(), c0))
}

// fitsAt reports whether every remaining label in rest addresses a
// slot that is either past the end of the array or currently disabled.
func fitsAt(al algebra.Algebra, st *store.Store, base int32, rest []byte) bool {
	for _, c := range rest {
		idx := al.Op(base, c)
		if idx < st.Len() && st.Get(idx).Enabled() {
			return false
		}
	}
	return true
}
