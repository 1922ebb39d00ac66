// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package xcheck

import (
	"github.com/gaissmaier/datrie/internal/algebra"
	"github.com/gaissmaier/datrie/internal/bitops"
	"github.com/gaissmaier/datrie/internal/store"
)

// wordWidePlus scans occupancy in 64-slot windows aligned to c0, the
// PLUS-algebra word-wide strategy. When hybrid is true it additionally
// takes free-list jumps across densely populated windows (the
// WORD_WIDE_PLUS_EMPTY_LINK strategy). Grounded on the
// da_plus_operation_tag branch of FindBaseWW in
// original_source/double_array_base.hpp.
func wordWidePlus(al algebra.Algebra, st *store.Store, children []byte, hybrid bool, counter *int) int32 {
	c0 := children[0]
	head := st.EmptyHead()
	bits := st.Bits()

	offset := int(head) - int(c0)

	for offset+int(c0) < int(st.Len()) {
		var acc uint64
		for _, c := range children {
			acc |= bits.Bits64(offset + int(c))
			if acc == ^uint64(0) {
				break
			}
		}

		free := ^acc
		if offset < 0 {
			free = maskNegativeOffset(free, offset)
		}

		if free != 0 {
			return int32(offset) + int32(bitops.Ctz64(free))
		}

		if !hybrid {
			offset += 64
			if counter != nil {
				*counter++
			}
			continue
		}

		windowFront := offset + int(c0)
		freeAtFront := ^bits.Bits64(windowFront)
		// freeAtFront != 0 always holds here: windowFront currently
		// addresses a disabled slot (it was reached via a free-list
		// link), so at least that bit is free.
		windowEmptyTail := windowFront + 63 - bitops.Clz64(freeAtFront)
		if windowEmptyTail >= int(st.Len()) {
			break
		}

		next := st.Succ(int32(windowEmptyTail))
		if next == head {
			break
		}
		offset = int(next) - int(c0)

		if counter != nil {
			*counter++
		}
	}

	return max32(0, st.Len()-int32(c0))
}

// maskNegativeOffset clears the low -offset bits of free: they
// represent slot indices < 0, which don't exist and so must never be
// reported as a usable base.
func maskNegativeOffset(free uint64, offset int) uint64 {
	n := -offset
	if n >= 64 {
		return 0
	}
	return free &^ ((uint64(1) << uint(n)) - 1)
}
