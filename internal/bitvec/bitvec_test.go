// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitvec

import "testing"

func TestSetGet(t *testing.T) {
	var v Vec
	v.Set(5, true)
	v.Set(130, true)

	if !v.Get(5) {
		t.Error("Get(5) = false, want true")
	}
	if !v.Get(130) {
		t.Error("Get(130) = false, want true")
	}
	if v.Get(6) {
		t.Error("Get(6) = true, want false")
	}
	if v.Get(1000) {
		t.Error("Get(1000) = true, want false: bits past the end read as unset")
	}

	v.Set(5, false)
	if v.Get(5) {
		t.Error("Get(5) = true after Set(5,false)")
	}
}

func TestResizeNeverShrinks(t *testing.T) {
	var v Vec
	v.Resize(300)
	if got := v.Len(); got != 300 {
		t.Fatalf("Len() = %d, want 300", got)
	}

	v.Resize(10)
	if got := v.Len(); got != 300 {
		t.Errorf("Resize must never shrink: Len() = %d, want 300", got)
	}
}

func TestBits64Aligned(t *testing.T) {
	var v Vec
	v.Resize(256)
	v.Set(64, true)
	v.Set(65, true)

	if got := v.Bits64(64); got != 0b11 {
		t.Errorf("Bits64(64) = %b, want 11", got)
	}
	if got := v.Bits64(128); got != 0 {
		t.Errorf("Bits64(128) = %b, want 0", got)
	}
}

func TestBits64Unaligned(t *testing.T) {
	var v Vec
	v.Resize(256)
	v.Set(70, true)
	v.Set(71, true)

	// window starting at 68 sees bits 70,71 at offsets 2,3
	if got := v.Bits64(68) & 0xF; got != 0b1100 {
		t.Errorf("Bits64(68)&0xF = %b, want 1100", got)
	}
}

func TestBits64PastEndIsZero(t *testing.T) {
	var v Vec
	v.Resize(64)
	if got := v.Bits64(64); got != 0 {
		t.Errorf("Bits64(64) = %b, want 0", got)
	}
	if got := v.Bits64(1000); got != 0 {
		t.Errorf("Bits64(1000) = %b, want 0", got)
	}
}

func TestBits64NegativeOffset(t *testing.T) {
	var v Vec
	v.Resize(128)
	v.Set(0, true)
	v.Set(1, true)

	// offset -2: bits [-2,-1] don't exist (read 0), bits [0,1] land at
	// positions 2,3 of the returned word.
	if got := v.Bits64(-2) & 0xF; got != 0b1100 {
		t.Errorf("Bits64(-2)&0xF = %b, want 1100", got)
	}
}

func TestWord256PadsWithZero(t *testing.T) {
	var v Vec
	v.Resize(64)
	v.Set(0, true)

	w := v.Word256(0)
	want := [4]uint64{1, 0, 0, 0}
	if w != want {
		t.Errorf("Word256(0) = %v, want %v", w, want)
	}

	// block 1 is entirely past the end
	w1 := v.Word256(1)
	if w1 != [4]uint64{0, 0, 0, 0} {
		t.Errorf("Word256(1) = %v, want all zero", w1)
	}
}
