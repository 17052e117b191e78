// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the gf2
// package. A dimension mismatch is a programming-contract violation, so these
// sentinels are delivered by panic, wrapped via gf2Errorf so that tests and
// recovery sites can still match them with errors.Is.

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is raised when a requested shape is invalid (negative
	// length, negative row or column count).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates that a bit or row index is outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrLengthMismatch indicates two vectors of different lengths were
	// combined (XOR, dot product).
	ErrLengthMismatch = errors.New("gf2: vector length mismatch")

	// ErrDimensionMismatch indicates incompatible matrix/vector dimensions,
	// e.g. MulVec where m.Cols() != v.Len(), or FromRows with ragged rows.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")
)

// gf2Errorf wraps a sentinel with an operation tag, preserving errors.Is
// matching. Used as the panic payload for contract violations.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
