// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package datrie builds and queries a static double-array trie over
// an immutable, sorted, unique set of byte strings.
//
// Build constructs a compact index from a keyset; Contains answers
// membership in time proportional to key length: one random read per
// byte, plus a final sentinel read. Two axes are configurable via
// Options:
//
//   - Algebra: Plus (base+label) or Xor (base^label) addressing.
//   - XCheck: the base-selection strategy used during construction,
//     EmptyLink (free-list walk), WordWide (bitmap scan), their hybrid,
//     or the optional convolution-based variants.
//
// StoreTail additionally enables TAIL (MP-variant) suffix-pool
// compression, which collapses non-branching suffix chains into an
// out-of-line pool referenced by negative base values.
//
// Mutation after Build, persistence, and ranked or prefix iteration
// are out of scope; Build takes the whole keyset once and the
// resulting Index is read-only.
package datrie
