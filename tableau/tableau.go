// SPDX-License-Identifier: MIT

// Package tableau: the Tableau type, construction, accessors and rendering.
package tableau

import (
	"fmt"
	"strings"

	"github.com/qforge/cliffsynth/circuit"
	"github.com/qforge/cliffsynth/gf2"
)

// Tableau is the mutable symplectic representation of a Clifford unitary.
// Rows 0..n-1 are destabilizers, rows n..2n-1 are stabilizers; row i and
// row n+i form a conjugate pair. See the package documentation for the
// invariants and the ownership model.
type Tableau struct {
	n     int
	x     []gf2.Vec // X-part of each of the 2n rows
	z     []gf2.Vec // Z-part of each of the 2n rows
	phase []uint8   // sign bit of each row, 0 = +1, 1 = -1
}

// Row is a read-only snapshot of one generator row. The vectors are deep
// copies; mutating them does not affect the tableau.
type Row struct {
	X     gf2.Vec
	Z     gf2.Vec
	Phase uint8
}

// Identity constructs the canonical initial tableau for n qubits:
// destabilizer i = X_i, stabilizer i = Z_i, all phases +1.
// Returns circuit.ErrNegativeQubits if n < 0. Complexity: O(n²/64).
func Identity(n int) (*Tableau, error) {
	if n < 0 {
		return nil, fmt.Errorf("tableau: n=%d: %w", n, circuit.ErrNegativeQubits)
	}
	t := &Tableau{
		n:     n,
		x:     make([]gf2.Vec, 2*n),
		z:     make([]gf2.Vec, 2*n),
		phase: make([]uint8, 2*n),
	}
	for i := 0; i < 2*n; i++ {
		t.x[i] = gf2.NewVec(n)
		t.z[i] = gf2.NewVec(n)
	}
	for i := 0; i < n; i++ {
		t.x[i].SetBit(i, 1)     // destabilizer i = X_i
		t.z[n+i].SetBit(i, 1)   // stabilizer i = Z_i
	}
	return t, nil
}

// NumQubits returns n. Complexity: O(1).
func (t *Tableau) NumQubits() int { return t.n }

// DestabRow returns a snapshot of destabilizer row i (0 <= i < n).
// Complexity: O(n/64).
func (t *Tableau) DestabRow(i int) Row {
	return Row{X: t.x[i].Clone(), Z: t.z[i].Clone(), Phase: t.phase[i]}
}

// StabRow returns a snapshot of stabilizer row i (0 <= i < n).
// Complexity: O(n/64).
func (t *Tableau) StabRow(i int) Row {
	return Row{X: t.x[t.n+i].Clone(), Z: t.z[t.n+i].Clone(), Phase: t.phase[t.n+i]}
}

// Rows returns snapshots of all 2n generator rows, destabilizers first.
// Complexity: O(n²/64).
func (t *Tableau) Rows() []Row {
	out := make([]Row, 2*t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.DestabRow(i)
		out[t.n+i] = t.StabRow(i)
	}
	return out
}

// Clone returns an independent deep copy. Complexity: O(n²/64).
func (t *Tableau) Clone() *Tableau {
	out := &Tableau{
		n:     t.n,
		x:     make([]gf2.Vec, 2*t.n),
		z:     make([]gf2.Vec, 2*t.n),
		phase: make([]uint8, 2*t.n),
	}
	for i := 0; i < 2*t.n; i++ {
		out.x[i] = t.x[i].Clone()
		out.z[i] = t.z[i].Clone()
	}
	copy(out.phase, t.phase)
	return out
}

// Equal reports whether o has identical rows and phases. Complexity: O(n²/64).
func (t *Tableau) Equal(o *Tableau) bool {
	if t.n != o.n {
		return false
	}
	for i := 0; i < 2*t.n; i++ {
		if t.phase[i] != o.phase[i] || !t.x[i].Equal(o.x[i]) || !t.z[i].Equal(o.z[i]) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the tableau equals the canonical initial
// configuration, including all phases +1. Complexity: O(n²/64).
func (t *Tableau) IsIdentity() bool {
	id, _ := Identity(t.n)
	return t.Equal(id)
}

// pauliChar renders one (x, z) bit pair as a Pauli letter.
func pauliChar(x, z uint8) byte {
	switch {
	case x == 1 && z == 1:
		return 'Y'
	case x == 1:
		return 'X'
	case z == 1:
		return 'Z'
	default:
		return '_'
	}
}

// rowString renders row r as a signed Pauli string, e.g. "-_XY_XZ_".
func (t *Tableau) rowString(r int) string {
	var sb strings.Builder
	sb.Grow(t.n + 1)
	if t.phase[r] == 1 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for q := 0; q < t.n; q++ {
		sb.WriteByte(pauliChar(t.x[r].Bit(q), t.z[r].Bit(q)))
	}
	return sb.String()
}

// String renders the tableau as signed Pauli strings, destabilizers first.
func (t *Tableau) String() string {
	var sb strings.Builder
	for i := 0; i < t.n; i++ {
		fmt.Fprintf(&sb, "destab[%d] = %s\n", i, t.rowString(i))
	}
	for i := 0; i < t.n; i++ {
		fmt.Fprintf(&sb, "stab[%d]   = %s\n", i, t.rowString(t.n+i))
	}
	return sb.String()
}
