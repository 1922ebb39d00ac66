// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"fmt"

	"github.com/gaissmaier/datrie/internal/xcheck"
)

// ErrUnsupportedConfiguration is returned by Build when Options
// selects a x-check strategy without a shipped implementation (the
// convolution variants).
var ErrUnsupportedConfiguration = xcheck.ErrUnsupportedConfiguration

// BuildErrorKind classifies a BuildError.
type BuildErrorKind uint8

const (
	// KindCapacityOverflow: the slot count or a TAIL pool offset would
	// exceed the int32 index space.
	KindCapacityOverflow BuildErrorKind = iota
	// KindInvalidKeyset: the caller-supplied keyset is not sorted,
	// contains a duplicate, or contains the reserved 0x00 byte. This is
	// a caller contract breach; Build still reports it rather than
	// silently misbuilding, since the check is cheap relative to
	// construction.
	KindInvalidKeyset
)

func (k BuildErrorKind) String() string {
	switch k {
	case KindCapacityOverflow:
		return "capacity overflow"
	case KindInvalidKeyset:
		return "invalid keyset"
	default:
		return "unknown"
	}
}

// BuildError reports a fatal condition detected during Build.
type BuildError struct {
	Kind BuildErrorKind
	Msg  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("datrie: %s: %s", e.Kind, e.Msg)
}

func newBuildError(kind BuildErrorKind, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
