// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/xcheck"
)

// Algebra selects the address algebra mapping (base, label) pairs to
// child slot indices.
type Algebra = algebra.Kind

const (
	// Plus maps (base, label) to base+label.
	Plus = algebra.Plus
	// Xor maps (base, label) to base^label.
	Xor = algebra.Xor
)

// XCheckStrategy selects the base-selection algorithm used while
// building the index.
type XCheckStrategy = xcheck.Strategy

const (
	// EmptyLink walks the free-list only.
	EmptyLink = xcheck.EmptyLink
	// WordWide scans the occupancy bitmap in aligned windows.
	WordWide = xcheck.WordWide
	// WordWideEmptyLink hybridizes WordWide with free-list jumps.
	WordWideEmptyLink = xcheck.WordWideEmptyLink
	// Convolution is the optional NTT/WHT-based strategy; Build
	// returns ErrUnsupportedConfiguration if it is selected.
	Convolution = xcheck.Convolution
	// ConvolutionEmptyLink is Convolution's free-list-terminated variant.
	ConvolutionEmptyLink = xcheck.ConvolutionEmptyLink
)

// EdgeOrdering controls whether a node's non-leaf children are
// allocated in key order or largest-subtree-first.
type EdgeOrdering uint8

const (
	// EdgeOrderOff processes children in ascending label order.
	EdgeOrderOff EdgeOrdering = iota
	// EdgeOrderBySubtreeSizeDesc processes non-leaf children in
	// decreasing subtree size, so large subtrees allocate while the
	// array is least fragmented.
	EdgeOrderBySubtreeSizeDesc
)

// StoreTail toggles the TAIL (MP) suffix-pool compression variant.
type StoreTail uint8

const (
	// StoreTailOff recurses all the way to every 0x00 leaf edge.
	StoreTailOff StoreTail = iota
	// StoreTailOn collapses non-branching suffix chains into the
	// pool, referenced by negative base values in terminal slots.
	StoreTailOn
)

// Options configures Build. The zero value is Plus algebra,
// EmptyLink x-check, no edge ordering and no TAIL compression, the
// cheapest combination to construct, trading some slot density for
// build simplicity.
type Options struct {
	Algebra      Algebra
	XCheck       XCheckStrategy
	EdgeOrdering EdgeOrdering
	StoreTail    StoreTail
}

// DefaultOptions returns the zero-value Options explicitly, for
// callers who want the default spelled out at the call site.
func DefaultOptions() Options {
	return Options{}
}

// trackOccupancy reports whether o's x-check strategy scans the
// occupancy bitmap and therefore needs the store to maintain one.
func (o Options) trackOccupancy() bool {
	switch o.XCheck {
	case WordWide, WordWideEmptyLink, Convolution, ConvolutionEmptyLink:
		return true
	default:
		return false
	}
}
