// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package xcheck

// The convolution strategy computes, for PLUS, the polynomial product
// of the occupancy vector with the reversed child-mask via a
// number-theoretic transform, and for XOR a size-256 Walsh–Hadamard
// transform; a zero coefficient marks a valid base. It is optional: the
// reference implementation this package is ported from leaves it
// partially finished, with an incomplete termination-on-EMPTY-LINK
// branch, so the two primary strategies remain normative here too.
//
// Grounded on original_source/convolution.hpp (ModuloNTT / fwt) and
// the FindBaseCNV branch of original_source/double_array_base.hpp;
// this port keeps the type so Strategy is exhaustive in switches but
// leaves the transform unimplemented, surfacing
// ErrUnsupportedConfiguration at Finder.FindBase instead of shipping a
// half-finished numeric kernel.
