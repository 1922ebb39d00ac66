// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package store implements the double-array base/check slot array: the
// enabled/disabled bookkeeping, the free-list threaded through
// disabled slots, the optional occupancy bitmap, and 256-slot chunked
// growth.
//
// Grounded on original_source/double_array_base.hpp's DoubleArrayBase
// (DaUnit's sign-bit dual encoding of (check,base) vs (succ,pred),
// SetEnabled/SetDisabled/CheckExpand), reworked in the teacher's idiom:
// accessor methods with documented invariants around the sign-bit
// trick (see internal/bitset's comment-driven field layout), and the
// 256-slot chunking pattern mirrors internal/sparse.Array's
// insertItem/deleteItem style of keeping bookkeeping local to small,
// well-named methods instead of inlined pointer arithmetic.
package store

import (
	"math"

	"github.com/gaissmaier/datrie/internal/bitvec"
)

// Invalid is the sentinel for "no slot": an empty free-list head, or
// the as-yet-unwritten base/check of a freshly enabled slot.
const Invalid int32 = -1

// RootCheck is the check value of a slot with no parent: the
// always-enabled root slot 0, and a freshly enabled slot until its
// caller writes the real parent.
const RootCheck int32 = math.MaxInt32

// chunkSize is the slot-count granularity of every expansion; I4
// requires the array length to always be a multiple of it.
const chunkSize = 256

// Slot is one base/check cell. When Enabled is false the same two
// fields are reinterpreted as free-list links; see Succ/Pred.
type Slot struct {
	Check int32
	Base  int32
}

// Enabled reports whether the slot holds a live node rather than a
// free-list link.
func (s Slot) Enabled() bool { return s.Check >= 0 }

// Store owns the base/check array, the free-list threaded through its
// disabled slots, and (optionally) a parallel occupancy bitmap.
type Store struct {
	slots     []Slot
	bits      *bitvec.Vec // nil when the chosen x-check strategy doesn't need it
	emptyHead int32
}

// New creates a store with 256 disabled slots and no root. Callers
// that need the root enabled call EnableRoot once the store is ready.
// trackOccupancy should be true whenever the selected x-check strategy
// scans the occupancy bitmap (word-wide or convolution strategies).
func New(trackOccupancy bool) *Store {
	st := &Store{emptyHead: Invalid}
	if trackOccupancy {
		st.bits = &bitvec.Vec{}
	}
	st.ExpandTo(0)
	return st
}

// EnableRoot enables slot 0 and writes the root sentinel check value;
// callers still own writing Base once a base has been chosen for the
// root's children.
func (s *Store) EnableRoot() {
	s.Enable(0)
	s.slots[0].Check = RootCheck
}

// Len returns the current slot count, always a multiple of chunkSize.
func (s *Store) Len() int32 { return int32(len(s.slots)) }

// Get returns slot i.
func (s *Store) Get(i int32) Slot { return s.slots[i] }

// SetBase overwrites the base field of an already-enabled slot.
func (s *Store) SetBase(i, v int32) { s.slots[i].Base = v }

// SetCheck overwrites the check field of an already-enabled slot.
func (s *Store) SetCheck(i, v int32) { s.slots[i].Check = v }

// EmptyHead returns the current free-list head, or Invalid if every
// slot is enabled.
func (s *Store) EmptyHead() int32 { return s.emptyHead }

// Bits returns the occupancy bitmap, or nil if this store wasn't built
// to track one.
func (s *Store) Bits() *bitvec.Vec { return s.bits }

// Succ returns the free-list successor of disabled slot i.
func (s *Store) Succ(i int32) int32 { return -s.slots[i].Check - 1 }

// Pred returns the free-list predecessor of disabled slot i.
func (s *Store) Pred(i int32) int32 { return -s.slots[i].Base - 1 }

func (s *Store) setSucc(i, v int32) { s.slots[i].Check = -(v + 1) }
func (s *Store) setPred(i, v int32) { s.slots[i].Base = -(v + 1) }

// Enable unlinks slot pos from the free-list, sets its check to
// RootCheck (so the slot reads as enabled) and its base to Invalid,
// for the caller to overwrite. It panics if pos is already enabled,
// which would indicate an x-check bug (I1/I2 already broken).
func (s *Store) Enable(pos int32) {
	if s.slots[pos].Enabled() {
		panic("store: Enable called on an already-enabled slot")
	}

	succ := s.Succ(pos)
	if pos == s.emptyHead {
		if succ != pos {
			s.emptyHead = succ
		} else {
			s.emptyHead = Invalid
		}
	}
	pred := s.Pred(pos)

	s.slots[pos].Check = RootCheck
	s.slots[pos].Base = Invalid

	s.setSucc(pred, succ)
	s.setPred(succ, pred)

	if s.bits != nil {
		s.bits.Set(uint(pos), true)
	}
}

// Disable appends pos to the tail of the free-list (i.e. just before
// the current head), initializing the list if it was empty.
func (s *Store) Disable(pos int32) {
	if s.emptyHead == Invalid {
		s.emptyHead = pos
		s.setSucc(pos, pos)
		s.setPred(pos, pos)
	} else {
		back := s.Pred(s.emptyHead)
		s.setSucc(back, pos)
		s.setPred(s.emptyHead, pos)
		s.setSucc(pos, s.emptyHead)
		s.setPred(pos, back)
	}

	if s.bits != nil {
		s.bits.Set(uint(pos), false)
	}
}

// ExpandTo grows the array so that index i is addressable, rounding up
// to the next chunkSize boundary and disabling every newly added slot
// in ascending order. It is a no-op when i is already within range.
func (s *Store) ExpandTo(i int32) {
	old := int32(len(s.slots))
	newLen := (i/chunkSize + 1) * chunkSize
	if newLen <= old {
		return
	}

	grown := make([]Slot, newLen)
	copy(grown, s.slots)
	s.slots = grown

	if s.bits != nil {
		s.bits.Resize(uint(newLen))
	}

	for p := old; p < newLen; p++ {
		s.Disable(p)
	}
}
