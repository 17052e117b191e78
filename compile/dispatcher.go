// SPDX-License-Identifier: MIT

// Package compile: segment partitioning and the compile entry point.
package compile

import (
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
)

// Dispatcher routes maximal contiguous gate segments to an ordered priority
// list of passes. It owns the list for its lifetime but never mutates the
// passes themselves.
type Dispatcher struct {
	passes []Pass
}

// NewDispatcher builds a dispatcher over the given passes, tried in argument
// order per segment boundary. Returns ErrNoPasses on an empty list.
func NewDispatcher(passes ...Pass) (*Dispatcher, error) {
	if len(passes) == 0 {
		return nil, ErrNoPasses
	}
	d := &Dispatcher{passes: make([]Pass, len(passes))}
	copy(d.passes, passes)
	return d, nil
}

// Dispatch partitions the input into maximal contiguous segments, each
// entirely accepted by exactly one pass, compiles every segment and
// concatenates the outputs in original order (no reordering across segment
// boundaries, preserving overall qubit semantics).
//
// Segmentation: at each boundary the passes are tried in priority order
// against the next gate; the first accepting pass owns the segment, which
// extends greedily until the pass would refuse the following gate. A gate
// no pass accepts fails dispatch with UnroutableGateError naming the gate
// and its position. The empty input dispatches to the empty circuit.
//
// Complexity: O(len(input)·passes·accept + segment compile costs).
func (d *Dispatcher) Dispatch(c circuit.Circuit) (circuit.Circuit, error) {
	if err := c.Validate(); err != nil {
		return circuit.Circuit{}, fmt.Errorf("compile: %w", err)
	}
	var outs []circuit.Circuit
	pos := 0
	for pos < len(c.Gates) {
		pass := d.accepting(c.Gates[pos])
		if pass == nil {
			return circuit.Circuit{}, UnroutableGateError{Gate: c.Gates[pos], Position: pos}
		}
		end := pos + 1
		for end < len(c.Gates) && pass.Accepts(c.Gates[end]) {
			end++
		}
		seg := circuit.New(c.Qubits, c.Gates[pos:end]...)
		out, err := pass.TryCompile(seg)
		if err != nil {
			return circuit.Circuit{}, fmt.Errorf("compile: segment [%d,%d): %w", pos, end, err)
		}
		outs = append(outs, out)
		pos = end
	}
	if len(outs) == 0 {
		return circuit.New(c.Qubits), nil
	}
	return circuit.Concat(outs...)
}

// accepting returns the first pass accepting g, or nil.
func (d *Dispatcher) accepting(g circuit.Gate) Pass {
	for _, p := range d.passes {
		if p.Accepts(g) {
			return p
		}
	}
	return nil
}

// Compile is the circuit-consuming entry point: it partitions the gate
// sequence across the passes (in priority order) and returns the
// concatenated compilation. Fails with UnroutableGateError when no pass
// accepts a gate, or with whatever error a pass propagates (e.g. a wrapped
// tableau.ErrUnsupportedGate from a misrouted non-Clifford gate).
func Compile(c circuit.Circuit, passes ...Pass) (circuit.Circuit, error) {
	d, err := NewDispatcher(passes...)
	if err != nil {
		return circuit.Circuit{}, err
	}
	return d.Dispatch(c)
}
