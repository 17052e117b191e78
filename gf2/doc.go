// Package gf2 provides exact linear algebra over the two-element field GF(2).
//
// The gf2 package provides:
//
//   - Vec, a word-packed bit vector with O(n/64) XOR, dot (parity) and scan
//     primitives.
//   - Matrix, a dense bit matrix stored row-wise as Vec values.
//   - Rank and RowReduce, Gaussian elimination over GF(2) with the option of
//     recording every elementary row operation performed (each operation is a
//     single row-into-row XOR, the row-space analogue of a CNOT).
//   - MulVec, the GF(2) matrix-vector product.
//
// All arithmetic is exact: there is no floating point anywhere in this
// package, so every result is bit-reproducible across platforms.
//
// Dimension mismatches are programming-contract violations, not runtime
// conditions: the public kernels panic with a wrapped sentinel (ErrLengthMismatch,
// ErrDimensionMismatch, ErrOutOfRange, ErrBadShape) rather than returning an
// error, mirroring the fail-fast policy of the consuming tableau code.
package gf2
