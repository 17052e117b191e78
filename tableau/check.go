// Package tableau: invariant audit.
package tableau

import (
	"fmt"

	"github.com/qforge/cliffsynth/gf2"
)

// symplectic returns the symplectic product of rows a and b: 0 when the
// corresponding Pauli operators commute, 1 when they anticommute.
func (t *Tableau) symplectic(a, b int) uint8 {
	return gf2.Dot(t.x[a], t.z[b]) ^ gf2.Dot(t.z[a], t.x[b])
}

// Check audits the tableau invariants:
//
//  1. Full rank: the 2n rows, laid out as [X-part | Z-part] vectors of
//     length 2n, are linearly independent over GF(2).
//  2. Symplectic structure: rows a and b anticommute exactly when they form
//     a conjugate destabilizer/stabilizer pair (b = a ± n).
//
// Returns ErrInvariantViolation wrapped with the offending row indices, or
// nil. A non-nil result always indicates an implementation defect in the
// conjugation rules, never bad input. Complexity: O(n³/64).
func (t *Tableau) Check() error {
	// 1. rank of the 2n x 2n symplectic bit matrix
	rows := make([]gf2.Vec, 2*t.n)
	for r := 0; r < 2*t.n; r++ {
		v := gf2.NewVec(2 * t.n)
		for q := 0; q < t.n; q++ {
			v.SetBit(q, t.x[r].Bit(q))
			v.SetBit(t.n+q, t.z[r].Bit(q))
		}
		rows[r] = v
	}
	m := gf2.FromRows(rows)
	if _, rank := gf2.RowReduce(&m); rank != 2*t.n {
		return fmt.Errorf("rank %d, want %d: %w", rank, 2*t.n, ErrInvariantViolation)
	}
	// 2. pairwise commutation relations
	for a := 0; a < 2*t.n; a++ {
		for b := a + 1; b < 2*t.n; b++ {
			want := uint8(0)
			if b == a+t.n {
				want = 1 // destabilizer a anticommutes with its paired stabilizer
			}
			if got := t.symplectic(a, b); got != want {
				return fmt.Errorf("rows %d,%d: symplectic product %d, want %d: %w",
					a, b, got, want, ErrInvariantViolation)
			}
		}
	}
	return nil
}
