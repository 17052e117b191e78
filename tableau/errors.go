// Package tableau: sentinel error set (unified, consistent).
// All public surfaces return these sentinels (possibly wrapped with context
// via fmt.Errorf("...: %w", ...)); callers match them with errors.Is.
package tableau

import (
	"errors"
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
)

var (
	// ErrUnsupportedGate indicates a non-Clifford gate variant reached the
	// tableau layer. This is a contract violation by the caller: segment
	// partitioning is responsible for excluding such gates beforehand.
	ErrUnsupportedGate = errors.New("tableau: unsupported non-Clifford gate")

	// ErrInvariantViolation indicates a tableau invariant (rank, symplectic
	// commutation structure) was found false. It signals an implementation
	// defect in the conjugation rules, never a normal input condition, and
	// is always surfaced, never silently recovered.
	ErrInvariantViolation = errors.New("tableau: invariant violation")

	// ErrQubitMismatch indicates a circuit was applied to a tableau with a
	// different qubit count.
	ErrQubitMismatch = errors.New("tableau: qubit count mismatch")
)

// UnsupportedGateError carries the offending gate alongside
// ErrUnsupportedGate; errors.Is(err, ErrUnsupportedGate) still matches.
type UnsupportedGateError struct {
	Gate circuit.Gate
}

// Error implements the error interface.
func (e UnsupportedGateError) Error() string {
	return fmt.Sprintf("tableau: unsupported non-Clifford gate %v", e.Gate)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e UnsupportedGateError) Unwrap() error { return ErrUnsupportedGate }
