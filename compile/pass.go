// Package compile: the Pass contract and error surface.
package compile

import (
	"errors"
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
)

var (
	// ErrRefused is returned by a Pass that declines a segment. Refusal is
	// not a failure: the dispatcher treats it as "try the next strategy".
	ErrRefused = errors.New("compile: pass refused segment")

	// ErrUnroutable indicates no configured pass accepts a gate. The typed
	// UnroutableGateError carries the gate and its position.
	ErrUnroutable = errors.New("compile: no pass accepts gate")

	// ErrNoPasses indicates a dispatcher was built with an empty pass list.
	ErrNoPasses = errors.New("compile: at least one pass required")
)

// Pass is a compilation strategy. Implementations must be stateless across
// calls: they own no tableau and keep no partial output.
//
// Accepts is the segmentation predicate: it reports whether the pass can
// take g as part of a segment. The dispatcher forces a segment boundary
// exactly where the currently matching pass would refuse the next gate.
//
// TryCompile consumes a whole segment and returns the replacement circuit,
// or an error wrapping ErrRefused when the segment is outside the pass's
// domain. TryCompile must refuse any segment containing a gate Accepts
// rejects; other errors propagate to the caller unchanged.
type Pass interface {
	Accepts(g circuit.Gate) bool
	TryCompile(seg circuit.Circuit) (circuit.Circuit, error)
}

// UnroutableGateError identifies a gate no configured pass accepts, with its
// position in the input sequence. Matches ErrUnroutable via errors.Is.
type UnroutableGateError struct {
	Gate     circuit.Gate
	Position int
}

// Error implements the error interface.
func (e UnroutableGateError) Error() string {
	return fmt.Sprintf("compile: no pass accepts gate %v at position %d", e.Gate, e.Position)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e UnroutableGateError) Unwrap() error { return ErrUnroutable }
