// SPDX-License-Identifier: MIT

// Package tableau: per-gate conjugation updates (the gate applicator).
//
// Every update below is applied uniformly to all 2n rows — stabilizers and
// destabilizers alike — because conjugation by a Clifford gate acts the same
// way on every tracked generator. The rules are the standard stabilizer
// formalism updates:
//
//	H(q)       : r ^= x[q]&z[q]; swap x[q], z[q]
//	S(q)       : r ^= x[q]&z[q]; z[q] ^= x[q]
//	X(q)       : r ^= z[q]
//	Z(q)       : r ^= x[q]
//	CNOT(c, t) : r ^= x[c]&z[t]&(x[t]^z[c]^1); x[t] ^= x[c]; z[c] ^= z[t]
//	CZ(a, b)   : r ^= x[a]&x[b]&(z[a]^z[b]);  z[a] ^= x[b]; z[b] ^= x[a]
//
// The CZ rule is the closed form of the H(b)·CNOT(a,b)·H(b) composition, so
// a CZ costs one pass over the rows rather than three.
//
// Order of application is exactly the order of the input sequence: these are
// accumulating, non-commutative updates.
package tableau

import (
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
)

// Apply mutates the tableau by conjugating every generator row with the
// given gate. Guarantees the tableau invariants hold afterward if they held
// before. Returns UnsupportedGateError for non-Clifford gates and a wrapped
// circuit sentinel for invalid qubit indices. Complexity: O(n).
func (t *Tableau) Apply(g circuit.Gate) error {
	if !g.Kind.IsClifford() {
		return UnsupportedGateError{Gate: g}
	}
	if err := g.Validate(t.n); err != nil {
		return fmt.Errorf("tableau: %w", err)
	}
	switch g.Kind {
	case circuit.KindH:
		t.applyH(g.Q0)
	case circuit.KindS:
		t.applyS(g.Q0)
	case circuit.KindX:
		t.applyX(g.Q0)
	case circuit.KindZ:
		t.applyZ(g.Q0)
	case circuit.KindCNOT:
		t.applyCNOT(g.Q0, g.Q1)
	case circuit.KindCZ:
		t.applyCZ(g.Q0, g.Q1)
	}
	return nil
}

// ApplyCircuit applies every gate of c in order.
// Returns ErrQubitMismatch if c is sized for a different qubit count; on a
// gate error the tableau retains all updates up to the failing gate.
// Complexity: O(len(c)·n).
func (t *Tableau) ApplyCircuit(c circuit.Circuit) error {
	if c.Qubits != t.n {
		return fmt.Errorf("tableau: circuit has %d qubits, tableau %d: %w", c.Qubits, t.n, ErrQubitMismatch)
	}
	for i, g := range c.Gates {
		if err := t.Apply(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

// applyH swaps the X and Z columns at q; the phase picks up the product of
// the pre-swap bits (HYH = -Y).
func (t *Tableau) applyH(q int) {
	for r := 0; r < 2*t.n; r++ {
		xb, zb := t.x[r].Bit(q), t.z[r].Bit(q)
		t.phase[r] ^= xb & zb
		t.x[r].SetBit(q, zb)
		t.z[r].SetBit(q, xb)
	}
}

// applyS maps X→Y (z ^= x); Y picks up a sign (SYS† = -X... observed as
// r ^= x&z before the column update).
func (t *Tableau) applyS(q int) {
	for r := 0; r < 2*t.n; r++ {
		xb := t.x[r].Bit(q)
		t.phase[r] ^= xb & t.z[r].Bit(q)
		if xb == 1 {
			t.z[r].FlipBit(q)
		}
	}
}

// applyX flips the sign of every row anticommuting with X_q (Z-part set).
func (t *Tableau) applyX(q int) {
	for r := 0; r < 2*t.n; r++ {
		t.phase[r] ^= t.z[r].Bit(q)
	}
}

// applyZ flips the sign of every row anticommuting with Z_q (X-part set).
func (t *Tableau) applyZ(q int) {
	for r := 0; r < 2*t.n; r++ {
		t.phase[r] ^= t.x[r].Bit(q)
	}
}

// applyCNOT propagates X from control to target and Z from target to
// control; the phase term is the standard CNOT sign update.
func (t *Tableau) applyCNOT(c, tq int) {
	for r := 0; r < 2*t.n; r++ {
		xc, zc := t.x[r].Bit(c), t.z[r].Bit(c)
		xt, zt := t.x[r].Bit(tq), t.z[r].Bit(tq)
		t.phase[r] ^= xc & zt & (xt ^ zc ^ 1)
		t.x[r].SetBit(tq, xt^xc)
		t.z[r].SetBit(c, zc^zt)
	}
}

// applyCZ uses the closed-form update; symmetric in a and b.
func (t *Tableau) applyCZ(a, b int) {
	for r := 0; r < 2*t.n; r++ {
		xa, za := t.x[r].Bit(a), t.z[r].Bit(a)
		xb, zb := t.x[r].Bit(b), t.z[r].Bit(b)
		t.phase[r] ^= xa & xb & (za ^ zb)
		t.z[r].SetBit(a, za^xb)
		t.z[r].SetBit(b, zb^xa)
	}
}
