// Package circuit: gate variants, constructors, and per-gate validation.
//
// This file declares Kind, Gate, the gate constructors, sentinel errors,
// and the Gate methods. Circuit lives in circuit.go.
//
// Errors:
//
//	ErrUnknownKind     - gate kind is not one of the declared variants.
//	ErrQubitOutOfRange - a qubit index is negative or >= the qubit count.
//	ErrSameQubit       - a two-qubit gate was given identical operands.
//	ErrNegativeQubits  - a circuit was built with a negative qubit count.
//	ErrQubitMismatch   - circuits with different qubit counts were combined.
package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for gate and circuit validation.
var (
	// ErrUnknownKind indicates a Gate whose Kind is not a declared variant.
	ErrUnknownKind = errors.New("circuit: unknown gate kind")

	// ErrQubitOutOfRange indicates a qubit index outside [0, qubits).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrSameQubit indicates a two-qubit gate whose operands coincide.
	ErrSameQubit = errors.New("circuit: two-qubit gate operands must differ")

	// ErrNegativeQubits indicates a negative qubit count.
	ErrNegativeQubits = errors.New("circuit: negative qubit count")

	// ErrQubitMismatch indicates an operation across circuits whose qubit
	// counts differ.
	ErrQubitMismatch = errors.New("circuit: qubit count mismatch")
)

// Kind enumerates the gate variants.
type Kind uint8

const (
	// KindH is the Hadamard gate.
	KindH Kind = iota
	// KindS is the phase gate (sqrt of Z).
	KindS
	// KindX is the Pauli-X gate.
	KindX
	// KindZ is the Pauli-Z gate.
	KindZ
	// KindCNOT is the controlled-NOT gate (Q0 control, Q1 target).
	KindCNOT
	// KindCZ is the controlled-Z gate (symmetric in its operands).
	KindCZ
	// KindRZ is an arbitrary Z rotation. It is NOT a Clifford gate: the
	// tableau core never accepts it, it exists only as opaque payload that
	// a dispatcher routes to a non-tableau pass or rejects.
	KindRZ
)

// String returns the lowercase QASM-style mnemonic for the kind.
func (k Kind) String() string {
	switch k {
	case KindH:
		return "h"
	case KindS:
		return "s"
	case KindX:
		return "x"
	case KindZ:
		return "z"
	case KindCNOT:
		return "cx"
	case KindCZ:
		return "cz"
	case KindRZ:
		return "rz"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsClifford reports whether the kind maps Pauli operators to Pauli
// operators under conjugation.
func (k Kind) IsClifford() bool {
	switch k {
	case KindH, KindS, KindX, KindZ, KindCNOT, KindCZ:
		return true
	default:
		return false
	}
}

// Arity returns the number of qubit operands (1 or 2); 0 for unknown kinds.
func (k Kind) Arity() int {
	switch k {
	case KindH, KindS, KindX, KindZ, KindRZ:
		return 1
	case KindCNOT, KindCZ:
		return 2
	default:
		return 0
	}
}

// Gate is one elementary operation. It is an immutable value; copy freely.
//
// Q0 is the sole operand of single-qubit gates and the control of CNOT.
// Q1 is -1 for single-qubit gates, the target of CNOT, and the second
// operand of CZ. Angle is meaningful only for RZ and is 0 otherwise.
type Gate struct {
	Kind  Kind
	Q0    int
	Q1    int
	Angle float64
}

// H constructs a Hadamard gate on qubit q.
func H(q int) Gate { return Gate{Kind: KindH, Q0: q, Q1: -1} }

// S constructs a phase gate on qubit q.
func S(q int) Gate { return Gate{Kind: KindS, Q0: q, Q1: -1} }

// X constructs a Pauli-X gate on qubit q.
func X(q int) Gate { return Gate{Kind: KindX, Q0: q, Q1: -1} }

// Z constructs a Pauli-Z gate on qubit q.
func Z(q int) Gate { return Gate{Kind: KindZ, Q0: q, Q1: -1} }

// CNOT constructs a controlled-NOT gate with control c and target t.
func CNOT(c, t int) Gate { return Gate{Kind: KindCNOT, Q0: c, Q1: t} }

// CZ constructs a controlled-Z gate on qubits a and b.
func CZ(a, b int) Gate { return Gate{Kind: KindCZ, Q0: a, Q1: b} }

// RZ constructs a non-Clifford Z rotation by angle (radians) on qubit q.
func RZ(q int, angle float64) Gate { return Gate{Kind: KindRZ, Q0: q, Q1: -1, Angle: angle} }

// Validate checks the gate against a circuit of `qubits` qubits.
// Returns ErrUnknownKind, ErrQubitOutOfRange or ErrSameQubit; nil otherwise.
// Complexity: O(1).
func (g Gate) Validate(qubits int) error {
	switch g.Kind.Arity() {
	case 1:
		if g.Q0 < 0 || g.Q0 >= qubits {
			return fmt.Errorf("%v q=%d: %w", g.Kind, g.Q0, ErrQubitOutOfRange)
		}
	case 2:
		if g.Q0 < 0 || g.Q0 >= qubits || g.Q1 < 0 || g.Q1 >= qubits {
			return fmt.Errorf("%v q=(%d,%d): %w", g.Kind, g.Q0, g.Q1, ErrQubitOutOfRange)
		}
		if g.Q0 == g.Q1 {
			return fmt.Errorf("%v q=(%d,%d): %w", g.Kind, g.Q0, g.Q1, ErrSameQubit)
		}
	default:
		return fmt.Errorf("kind %d: %w", uint8(g.Kind), ErrUnknownKind)
	}
	return nil
}

// Equal reports exact equality, including the RZ angle.
func (g Gate) Equal(o Gate) bool { return g == o }

// String renders the gate in QASM-like form, e.g. "h q[0];" or
// "cx q[1],q[0];".
func (g Gate) String() string {
	switch g.Kind {
	case KindRZ:
		return fmt.Sprintf("rz(%g) q[%d];", g.Angle, g.Q0)
	case KindCNOT, KindCZ:
		return fmt.Sprintf("%v q[%d],q[%d];", g.Kind, g.Q0, g.Q1)
	default:
		return fmt.Sprintf("%v q[%d];", g.Kind, g.Q0)
	}
}
