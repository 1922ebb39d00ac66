// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package xcheck

import (
	"github.com/gaissmaier/datrie/internal/bitops"
	"github.com/gaissmaier/datrie/internal/store"
)

// XOR permutes blocks of 256 indices, so the XOR word-wide strategy
// scans 256-bit windows (four consecutive 64-bit words) rather than
// single words. The in-word swap masks and the four-word block layout
// are grounded on original_source/include/bo/swapnext.hpp's
// swapnext{1,2,4,8,16,32}_u64 constants and the scalar fallback of
// xor_map256 in original_source/include/bo/bit_operation_256.hpp; the
// [4]uint64 block shape mirrors the teacher's BitSet256.
const (
	swapMask1  = 0x5555555555555555
	swapMask2  = 0x3333333333333333
	swapMask4  = 0x0F0F0F0F0F0F0F0F
	swapMask8  = 0x00FF00FF00FF00FF
	swapMask16 = 0x0000FFFF0000FFFF
)

// permuteBlock returns exists bits of the 256-bit block w, permuted so
// that bit i of the result is exists[((w-relative index i) ^ c)].
func permuteBlock(w [4]uint64, c byte) [4]uint64 {
	e := w

	if c&1 != 0 {
		for i := range e {
			e[i] = ((e[i] &^ swapMask1) >> 1) | ((e[i] & swapMask1) << 1)
		}
	}
	if c&2 != 0 {
		for i := range e {
			e[i] = ((e[i] &^ swapMask2) >> 2) | ((e[i] & swapMask2) << 2)
		}
	}
	if c&4 != 0 {
		for i := range e {
			e[i] = ((e[i] &^ swapMask4) >> 4) | ((e[i] & swapMask4) << 4)
		}
	}
	if c&8 != 0 {
		for i := range e {
			e[i] = ((e[i] &^ swapMask8) >> 8) | ((e[i] & swapMask8) << 8)
		}
	}
	if c&16 != 0 {
		for i := range e {
			e[i] = ((e[i] &^ swapMask16) >> 16) | ((e[i] & swapMask16) << 16)
		}
	}
	if c&32 != 0 {
		for i := range e {
			e[i] = (e[i] >> 32) | (e[i] << 32)
		}
	}
	if c&64 != 0 {
		e[0], e[1] = e[1], e[0]
		e[2], e[3] = e[3], e[2]
	}
	if c&128 != 0 {
		e[0], e[2] = e[2], e[0]
		e[1], e[3] = e[3], e[1]
	}

	return e
}

// wordWideXor scans occupancy in 256-bit windows, OR-ing the permuted
// block for every child label together before looking for a free bit.
// Grounded on the da_xor_operation_tag branch of FindBaseWW in
// original_source/double_array_base.hpp.
func wordWideXor(st *store.Store, children []byte, counter *int) int32 {
	bits := st.Bits()
	head := st.EmptyHead()

	startBlock := int(head) / 256
	endBlock := int(st.Len()) / 256 // I4 guarantees Len() is a multiple of 256

	for b := startBlock; b < endBlock; b++ {
		w := bits.Word256(b)

		var acc [4]uint64
		for _, c := range children {
			e := permuteBlock(w, c)
			for i := range acc {
				acc[i] |= e[i]
			}
		}

		for i := 0; i < 4; i++ {
			if free := ^acc[i]; free != 0 {
				return int32(b*256 + i*64 + bitops.Ctz64(free))
			}
		}

		if counter != nil {
			*counter++
		}
	}

	return st.Len()
}
