// Package circuit: the Circuit value type and its pure-sequence operations.
package circuit

import (
	"fmt"
	"strings"
)

// Circuit is an ordered sequence of gates over a fixed number of qubits.
// Pure sequence semantics: gates compose left-to-right as applied to a
// state. Circuit values are safe to share; Append and Concat never alias
// their inputs' gate slices.
type Circuit struct {
	// Qubits is the number of qubits the circuit acts on.
	Qubits int

	// Gates is the ordered gate sequence.
	Gates []Gate
}

// New builds a circuit over n qubits from the given gates (copied).
func New(n int, gates ...Gate) Circuit {
	out := Circuit{Qubits: n, Gates: make([]Gate, len(gates))}
	copy(out.Gates, gates)
	return out
}

// Len returns the number of gates. Complexity: O(1).
func (c Circuit) Len() int { return len(c.Gates) }

// Validate checks the qubit count and every gate in order, returning the
// first violation wrapped with the gate's position.
// Returns ErrNegativeQubits, ErrUnknownKind, ErrQubitOutOfRange or
// ErrSameQubit; nil otherwise. Complexity: O(len(Gates)).
func (c Circuit) Validate() error {
	if c.Qubits < 0 {
		return fmt.Errorf("qubits=%d: %w", c.Qubits, ErrNegativeQubits)
	}
	for i, g := range c.Gates {
		if err := g.Validate(c.Qubits); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

// Append returns a new circuit with the gates appended. The receiver is not
// mutated and no storage is shared. Complexity: O(Len + len(gs)).
func (c Circuit) Append(gs ...Gate) Circuit {
	out := Circuit{Qubits: c.Qubits, Gates: make([]Gate, 0, len(c.Gates)+len(gs))}
	out.Gates = append(out.Gates, c.Gates...)
	out.Gates = append(out.Gates, gs...)
	return out
}

// Concat joins circuits in order into one circuit over the same qubit count.
// Returns ErrQubitMismatch if the counts differ; an empty argument list
// yields the zero Circuit. Complexity: O(total gates).
func Concat(cs ...Circuit) (Circuit, error) {
	if len(cs) == 0 {
		return Circuit{}, nil
	}
	out := Circuit{Qubits: cs[0].Qubits}
	total := 0
	for _, c := range cs {
		if c.Qubits != out.Qubits {
			return Circuit{}, fmt.Errorf("concat %d vs %d qubits: %w", out.Qubits, c.Qubits, ErrQubitMismatch)
		}
		total += len(c.Gates)
	}
	out.Gates = make([]Gate, 0, total)
	for _, c := range cs {
		out.Gates = append(out.Gates, c.Gates...)
	}
	return out, nil
}

// Equal reports literal gate-by-gate equality plus identical qubit counts.
// Complexity: O(Len).
func (c Circuit) Equal(o Circuit) bool {
	if c.Qubits != o.Qubits || len(c.Gates) != len(o.Gates) {
		return false
	}
	for i := range c.Gates {
		if c.Gates[i] != o.Gates[i] {
			return false
		}
	}
	return true
}

// IsClifford reports whether every gate is a Clifford gate.
// Complexity: O(Len).
func (c Circuit) IsClifford() bool {
	for _, g := range c.Gates {
		if !g.Kind.IsClifford() {
			return false
		}
	}
	return true
}

// String renders the circuit as QASM-like lines, one gate per line.
func (c Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.Qubits)
	for _, g := range c.Gates {
		sb.WriteString(g.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
