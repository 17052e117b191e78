// Package statevec provides a dense statevector simulator used to validate
// compiled circuits against their originals.
//
// It exists for the test surface only: the compiler core never simulates.
// Validation compares two states by fidelity |⟨a|b⟩|, which is 1 exactly
// when the states agree up to global phase — the equivalence the compiler
// must preserve.
//
// Convention: qubit q maps to bit q of the amplitude index (little-endian).
package statevec

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qforge/cliffsynth/circuit"
)

// ErrSizeMismatch indicates a fidelity between states of different sizes.
var ErrSizeMismatch = errors.New("statevec: state size mismatch")

// State is a dense 2^n amplitude vector.
type State struct {
	n    int
	amps []complex128
}

// New returns the all-zeros computational basis state |0…0⟩ on n qubits.
// Returns circuit.ErrNegativeQubits if n < 0.
func New(n int) (*State, error) {
	if n < 0 {
		return nil, fmt.Errorf("statevec: n=%d: %w", n, circuit.ErrNegativeQubits)
	}
	s := &State{n: n, amps: make([]complex128, 1<<uint(n))}
	s.amps[0] = 1
	return s, nil
}

// NumQubits returns n.
func (s *State) NumQubits() int { return s.n }

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// ApplyGate applies one gate in place. All circuit gate variants are
// supported, including RZ. Complexity: O(2^n).
func (s *State) ApplyGate(g circuit.Gate) error {
	if err := g.Validate(s.n); err != nil {
		return fmt.Errorf("statevec: %w", err)
	}
	switch g.Kind {
	case circuit.KindH:
		inv := complex(1/math.Sqrt2, 0)
		s.pairwise(g.Q0, func(a0, a1 complex128) (complex128, complex128) {
			return inv * (a0 + a1), inv * (a0 - a1)
		})
	case circuit.KindS:
		s.pairwise(g.Q0, func(a0, a1 complex128) (complex128, complex128) {
			return a0, a1 * complex(0, 1)
		})
	case circuit.KindX:
		s.pairwise(g.Q0, func(a0, a1 complex128) (complex128, complex128) {
			return a1, a0
		})
	case circuit.KindZ:
		s.pairwise(g.Q0, func(a0, a1 complex128) (complex128, complex128) {
			return a0, -a1
		})
	case circuit.KindRZ:
		lo := cmplx.Exp(complex(0, -g.Angle/2))
		hi := cmplx.Exp(complex(0, g.Angle/2))
		s.pairwise(g.Q0, func(a0, a1 complex128) (complex128, complex128) {
			return a0 * lo, a1 * hi
		})
	case circuit.KindCNOT:
		cm, tm := 1<<uint(g.Q0), 1<<uint(g.Q1)
		for i := range s.amps {
			if i&cm != 0 && i&tm == 0 {
				s.amps[i], s.amps[i|tm] = s.amps[i|tm], s.amps[i]
			}
		}
	case circuit.KindCZ:
		am, bm := 1<<uint(g.Q0), 1<<uint(g.Q1)
		for i := range s.amps {
			if i&am != 0 && i&bm != 0 {
				s.amps[i] = -s.amps[i]
			}
		}
	}
	return nil
}

// ApplyCircuit applies every gate of c in order.
// Returns circuit.ErrQubitMismatch when c is sized for a different count.
func (s *State) ApplyCircuit(c circuit.Circuit) error {
	if c.Qubits != s.n {
		return fmt.Errorf("statevec: circuit has %d qubits, state %d: %w", c.Qubits, s.n, circuit.ErrQubitMismatch)
	}
	for i, g := range c.Gates {
		if err := s.ApplyGate(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

// pairwise applies a 2x2 update to every amplitude pair split on qubit q.
func (s *State) pairwise(q int, f func(a0, a1 complex128) (complex128, complex128)) {
	m := 1 << uint(q)
	for i := range s.amps {
		if i&m == 0 {
			s.amps[i], s.amps[i|m] = f(s.amps[i], s.amps[i|m])
		}
	}
}

// Fidelity returns |⟨a|b⟩|, which equals 1 exactly when a and b agree up to
// a global phase. Returns ErrSizeMismatch for states of different sizes.
func Fidelity(a, b *State) (float64, error) {
	if a.n != b.n {
		return 0, fmt.Errorf("statevec: %d vs %d qubits: %w", a.n, b.n, ErrSizeMismatch)
	}
	var dot complex128
	for i := range a.amps {
		dot += cmplx.Conj(a.amps[i]) * b.amps[i]
	}
	return cmplx.Abs(dot), nil
}
