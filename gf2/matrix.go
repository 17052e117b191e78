// SPDX-License-Identifier: MIT

// Package gf2 - dense bit matrices, rank and recorded row reduction.
//
// Purpose:
//   - Declare the canonical GF(2) elimination kernels used by the tableau
//     invariant checker and by tests.
//   - Record elementary row operations during reduction: every operation is a
//     single row-into-row XOR (RowOp), which is exactly the action a CNOT has
//     on the X-part columns of a stabilizer tableau.
//
// Determinism:
//   - Pivot search always takes the lowest-index candidate row; loop orders
//     are fixed. Identical inputs produce identical operation sequences.

package gf2

// operation tags for matrix kernels.
const (
	opNewMatrix = "NewMatrix"
	opFromRows  = "FromRows"
	opRow       = "Row"
	opMulVec    = "MulVec"
)

// RowOp records one elementary row operation performed during reduction:
// row[Target] ^= row[Source]. A row swap is expressed as the usual triple of
// XOR operations, so the recorded sequence alone reproduces the reduction.
type RowOp struct {
	Target int
	Source int
}

// Matrix is a dense bit matrix stored as one Vec per row.
// The zero value is a 0×0 matrix.
type Matrix struct {
	rows []Vec
	cols int
}

// NewMatrix returns an all-zero r×c matrix.
// Panics with ErrBadShape if r < 0 or c < 0.
// Complexity: O(r*c/64).
func NewMatrix(r, c int) Matrix {
	if r < 0 || c < 0 {
		panic(gf2Errorf(opNewMatrix, ErrBadShape))
	}
	m := Matrix{rows: make([]Vec, r), cols: c}
	for i := range m.rows {
		m.rows[i] = NewVec(c)
	}
	return m
}

// FromRows builds a matrix from deep copies of the given rows.
// Panics with ErrDimensionMismatch if the rows have unequal lengths.
// Complexity: O(r*c/64).
func FromRows(rows []Vec) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}
	c := rows[0].Len()
	m := Matrix{rows: make([]Vec, len(rows)), cols: c}
	for i, r := range rows {
		if r.Len() != c {
			panic(gf2Errorf(opFromRows, ErrDimensionMismatch))
		}
		m.rows[i] = r.Clone()
	}
	return m
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix) Cols() int { return m.cols }

// Row returns the i-th row. The returned Vec shares storage with the matrix;
// callers that need an independent lifetime must Clone it.
// Panics with ErrOutOfRange if i is outside [0, Rows).
// Complexity: O(1).
func (m Matrix) Row(i int) Vec {
	if i < 0 || i >= len(m.rows) {
		panic(gf2Errorf(opRow, ErrOutOfRange))
	}
	return m.rows[i]
}

// Clone returns an independent deep copy. Complexity: O(r*c/64).
func (m Matrix) Clone() Matrix {
	out := Matrix{rows: make([]Vec, len(m.rows)), cols: m.cols}
	for i := range m.rows {
		out.rows[i] = m.rows[i].Clone()
	}
	return out
}

// RowReduce brings m to row-echelon form in place and returns the sequence of
// elementary row operations performed together with the rank.
//
// Steps:
//  1. pivot := 0.
//  2. For each column c in 0..Cols-1 (ascending, the deterministic tie-break):
//     a. Find the lowest row r >= pivot with bit c set; if none, next column.
//     b. If r != pivot, swap rows r and pivot via the XOR triple
//     (pivot^=r, r^=pivot, pivot^=r), recording all three operations.
//     c. For every row s > pivot with bit c set, record and apply
//     row[s] ^= row[pivot].
//     d. pivot++.
//  3. rank = pivot.
//
// Complexity: Time O(r*c*c/64), Memory O(r) for the recorded operations.
func RowReduce(m *Matrix) (ops []RowOp, rank int) {
	pivot := 0
	for c := 0; c < m.cols && pivot < len(m.rows); c++ {
		// 2a. lowest candidate row with a 1 in column c
		r := -1
		for s := pivot; s < len(m.rows); s++ {
			if m.rows[s].Bit(c) == 1 {
				r = s
				break
			}
		}
		if r < 0 {
			continue
		}
		// 2b. move the pivot row into place with three XORs
		if r != pivot {
			m.rows[pivot].XorWith(m.rows[r])
			ops = append(ops, RowOp{Target: pivot, Source: r})
			m.rows[r].XorWith(m.rows[pivot])
			ops = append(ops, RowOp{Target: r, Source: pivot})
			m.rows[pivot].XorWith(m.rows[r])
			ops = append(ops, RowOp{Target: pivot, Source: r})
		}
		// 2c. clear the column below the pivot
		for s := pivot + 1; s < len(m.rows); s++ {
			if m.rows[s].Bit(c) == 1 {
				m.rows[s].XorWith(m.rows[pivot])
				ops = append(ops, RowOp{Target: s, Source: pivot})
			}
		}
		pivot++
	}
	return ops, pivot
}

// Rank returns the GF(2) rank of m without mutating it.
// Complexity: Time O(r*c*c/64), Memory O(r*c/64) for the working copy.
func Rank(m Matrix) int {
	work := m.Clone()
	_, rank := RowReduce(&work)
	return rank
}

// MulVec returns the matrix-vector product m·v over GF(2): out[i] is the
// parity of the AND of row i with v.
// Panics with ErrDimensionMismatch if m.Cols() != v.Len().
// Complexity: O(r*c/64).
func MulVec(m Matrix, v Vec) Vec {
	if m.cols != v.Len() {
		panic(gf2Errorf(opMulVec, ErrDimensionMismatch))
	}
	out := NewVec(len(m.rows))
	for i := range m.rows {
		out.SetBit(i, Dot(m.rows[i], v))
	}
	return out
}
