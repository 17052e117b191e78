// Package circuit defines the immutable Gate and Circuit value types shared
// by every stage of the compiler.
//
// The circuit package provides:
//
//   - Gate, a tagged variant over the elementary operations H, S, X, Z,
//     CNOT, CZ plus the opaque non-Clifford rotation RZ. Constructed via
//     H(q), S(q), X(q), Z(q), CNOT(c, t), CZ(a, b) and RZ(q, angle).
//   - Circuit, an ordered gate sequence with an associated qubit count.
//     Order is operationally significant: gates compose left-to-right as
//     applied to a state. No cycles, no branching.
//
// Gate and Circuit are plain values with no hidden sharing: Append and
// Concat always copy, so circuits can be passed across package boundaries
// without aliasing concerns.
//
// Validation is fail-fast and sentinel-based: Validate returns
// ErrQubitOutOfRange, ErrSameQubit or ErrUnknownKind, matched via errors.Is.
package circuit
