// SPDX-License-Identifier: MIT

// Package synth: Gaussian-elimination synthesis.
package synth

import (
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
	"github.com/qforge/cliffsynth/tableau"
)

// Synthesize returns an ordered sequence of elementary gates that, applied
// to the identity tableau in order, reproduces t exactly (rows and phases).
//
// Algorithm (two elimination passes):
//  1. Clone t and reduce the clone to the identity tableau, recording every
//     gate applied (eliminate below). The recorded sequence, read as a
//     circuit, realizes the inverse of t's Clifford action — conceptually
//     the output is "the reduce-to-identity sequence, inverted and
//     reversed", and running the reduction on the inverse instead performs
//     that inversion without ever leaving the emitted gate set.
//  2. Replay the recorded sequence onto a fresh identity tableau (yielding
//     the inverse tableau) and reduce that, recording again. The second
//     recording is the output circuit.
//
// An empty (identity) tableau synthesizes to an empty circuit.
//
// Failure: a missing pivot during either pass means the tableau violated its
// rank invariant; this surfaces as tableau.ErrInvariantViolation (wrapped
// with the pivot qubit) and indicates a defect upstream, never a normal
// input condition.
//
// Complexity: Time O(n³), Memory O(n²); the output has O(n²) gates.
func Synthesize(t *tableau.Tableau, opts Options) (circuit.Circuit, error) {
	if opts.CheckInvariants {
		if err := t.Check(); err != nil {
			return circuit.Circuit{}, fmt.Errorf("synth: %w", err)
		}
	}
	// Pass 1: reduce a working copy; the recording realizes t⁻¹.
	work := t.Clone()
	invGates, err := eliminate(work)
	if err != nil {
		return circuit.Circuit{}, err
	}
	// Pass 2: materialize t⁻¹ from the recording, reduce it; the new
	// recording realizes (t⁻¹)⁻¹ = t, gate set unchanged.
	inv, err := tableau.Identity(t.NumQubits())
	if err != nil {
		return circuit.Circuit{}, err
	}
	for _, g := range invGates {
		if aerr := inv.Apply(g); aerr != nil {
			return circuit.Circuit{}, fmt.Errorf("synth: replay: %w", aerr)
		}
	}
	outGates, err := eliminate(inv)
	if err != nil {
		return circuit.Circuit{}, err
	}
	return circuit.New(t.NumQubits(), outGates...), nil
}

// recorder applies gates to a tableau while keeping the applied sequence.
type recorder struct {
	t     *tableau.Tableau
	gates []circuit.Gate
}

func (r *recorder) apply(g circuit.Gate) error {
	if err := r.t.Apply(g); err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	r.gates = append(r.gates, g)
	return nil
}

// eliminate reduces t to the identity tableau in place and returns the gates
// applied, in order.
//
// Per qubit i from 0 to n-1 (ascending — fixed processing order):
//
//	destabilizer row d = destab[i], confined to columns >= i by the already
//	fixed pairs:
//	 1. If d has no X bit at column >= i, apply H at the lowest column >= i
//	    holding a Z bit, converting it to an X bit. No bit at all is a rank
//	    violation.
//	 2. If the X bit sits at column j > i rather than i, apply CNOT(j, i) to
//	    copy it into the pivot column.
//	 3. Clear every remaining X bit at column j > i with CNOT(i, j).
//	 4. Clear a Z bit at the pivot column with S(i), then every Z bit at
//	    column j > i with CZ(i, j). Now d = X_i exactly.
//
//	stabilizer row s = stab[i], which anticommutes with d = X_i and so is
//	guaranteed a Z bit at column i:
//	 5. Rotate every X or Y at column j > i into Z: S(j) when the Z bit is
//	    set, then H(j). These act on qubits d no longer touches.
//	 6. Clear every Z bit at column j > i with CNOT(j, i), which preserves
//	    d = X_i.
//	 7. A leftover X bit at the pivot column means s = ±Y_i; the triple
//	    H(i), S(i), H(i) rotates it to Z_i while returning d to X_i.
//
// Trailing Pauli-frame correction: after all n qubit indices the tableau is
// the identity up to phase bits; Z(i) clears a destabilizer sign and X(i) a
// stabilizer sign, Z before X, ascending i.
func eliminate(t *tableau.Tableau) ([]circuit.Gate, error) {
	n := t.NumQubits()
	rec := &recorder{t: t}
	for i := 0; i < n; i++ {
		// 1. ensure an X pivot exists at some column >= i
		d := t.DestabRow(i)
		if d.X.NextSet(i) < 0 {
			j := d.Z.NextSet(i)
			if j < 0 {
				return nil, fmt.Errorf("synth: no pivot for destabilizer %d: %w", i, tableau.ErrInvariantViolation)
			}
			if err := rec.apply(circuit.H(j)); err != nil {
				return nil, err
			}
		}
		// 2. move the pivot into column i
		d = t.DestabRow(i)
		if d.X.Bit(i) == 0 {
			j := d.X.NextSet(i + 1)
			if err := rec.apply(circuit.CNOT(j, i)); err != nil {
				return nil, err
			}
		}
		// 3. clear the X-part outside the pivot column
		d = t.DestabRow(i)
		for j := d.X.NextSet(i + 1); j >= 0; j = d.X.NextSet(j + 1) {
			if err := rec.apply(circuit.CNOT(i, j)); err != nil {
				return nil, err
			}
		}
		// 4. clear the Z-part; d becomes exactly X_i
		d = t.DestabRow(i)
		if d.Z.Bit(i) == 1 {
			if err := rec.apply(circuit.S(i)); err != nil {
				return nil, err
			}
		}
		d = t.DestabRow(i)
		for j := d.Z.NextSet(i + 1); j >= 0; j = d.Z.NextSet(j + 1) {
			if err := rec.apply(circuit.CZ(i, j)); err != nil {
				return nil, err
			}
		}
		// 5. rotate the stabilizer's X/Y columns beyond the pivot into Z
		s := t.StabRow(i)
		for j := s.X.NextSet(i + 1); j >= 0; j = s.X.NextSet(j + 1) {
			if s.Z.Bit(j) == 1 {
				if err := rec.apply(circuit.S(j)); err != nil {
					return nil, err
				}
			}
			if err := rec.apply(circuit.H(j)); err != nil {
				return nil, err
			}
		}
		// 6. clear the stabilizer's Z-part beyond the pivot
		s = t.StabRow(i)
		for j := s.Z.NextSet(i + 1); j >= 0; j = s.Z.NextSet(j + 1) {
			if err := rec.apply(circuit.CNOT(j, i)); err != nil {
				return nil, err
			}
		}
		// 7. rotate a residual Y_i into Z_i, fixing X_i back up
		s = t.StabRow(i)
		if s.X.Bit(i) == 1 {
			for _, g := range []circuit.Gate{circuit.H(i), circuit.S(i), circuit.H(i)} {
				if err := rec.apply(g); err != nil {
					return nil, err
				}
			}
		}
	}
	// trailing Pauli-frame correction for residual signs
	for i := 0; i < n; i++ {
		if t.DestabRow(i).Phase == 1 {
			if err := rec.apply(circuit.Z(i)); err != nil {
				return nil, err
			}
		}
		if t.StabRow(i).Phase == 1 {
			if err := rec.apply(circuit.X(i)); err != nil {
				return nil, err
			}
		}
	}
	return rec.gates, nil
}
