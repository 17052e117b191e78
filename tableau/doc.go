// Package tableau implements the mutable stabilizer tableau: a binary
// symplectic representation of how a Clifford gate sequence transforms the
// Pauli generators of the computational basis.
//
// For n qubits the tableau holds 2n generator rows — n destabilizers
// (rows 0..n-1, initially X_i) and n stabilizers (rows n..2n-1, initially
// Z_i) — each row carrying an X-part bit vector, a Z-part bit vector and a
// single phase bit (sign ±1 encoded as 0/1).
//
// Invariants, which hold after every mutation:
//
//   - Symplectic structure: destabilizer i anticommutes with stabilizer i
//     and commutes with every other generator; stabilizers commute pairwise,
//     destabilizers commute pairwise.
//   - Full rank: the 2n rows are linearly independent over GF(2).
//   - Phase bits are drawn from {0,1} only (enforced by construction).
//
// Lifecycle: a tableau is created in the identity configuration by
// Identity(n), mutated exclusively through Apply/ApplyCircuit one gate at a
// time in input order, read by the synthesizer, and then discarded. There is
// no cross-segment sharing: each tableau has exactly one owner, so the type
// carries no locking. Distinct tableaux never alias and may be used from
// different goroutines.
//
// Check audits the invariants in O(n³); it is a defect detector, not a
// runtime guard — a Check failure means a bug in the conjugation rules,
// never a normal input condition.
package tableau
