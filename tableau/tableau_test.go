package tableau_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/qforge/cliffsynth/circuit"
	"github.com/qforge/cliffsynth/tableau"
)

// TableauSuite exercises construction, conjugation rules and invariants.
type TableauSuite struct {
	suite.Suite
}

// TestIdentityLayout verifies the canonical initial configuration:
// destabilizer i = +X_i, stabilizer i = +Z_i.
func (s *TableauSuite) TestIdentityLayout() {
	t, err := tableau.Identity(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, t.NumQubits())
	require.True(s.T(), t.IsIdentity())

	for i := 0; i < 3; i++ {
		d, st := t.DestabRow(i), t.StabRow(i)
		require.EqualValues(s.T(), 1, d.X.Bit(i))
		require.True(s.T(), d.Z.IsZero())
		require.EqualValues(s.T(), 0, d.Phase)
		require.EqualValues(s.T(), 1, st.Z.Bit(i))
		require.True(s.T(), st.X.IsZero())
		require.EqualValues(s.T(), 0, st.Phase)
	}
	require.NoError(s.T(), t.Check())
}

// TestIdentityRejectsNegative verifies the constructor guard.
func (s *TableauSuite) TestIdentityRejectsNegative() {
	_, err := tableau.Identity(-1)
	require.ErrorIs(s.T(), err, circuit.ErrNegativeQubits)
}

// TestHadamardExchangesBases verifies H: X_0 -> Z_0 and Z_0 -> X_0.
func (s *TableauSuite) TestHadamardExchangesBases() {
	t, _ := tableau.Identity(1)
	require.NoError(s.T(), t.Apply(circuit.H(0)))

	d, st := t.DestabRow(0), t.StabRow(0)
	require.EqualValues(s.T(), 0, d.X.Bit(0)) // X became Z
	require.EqualValues(s.T(), 1, d.Z.Bit(0))
	require.EqualValues(s.T(), 1, st.X.Bit(0)) // Z became X
	require.EqualValues(s.T(), 0, st.Z.Bit(0))
	require.EqualValues(s.T(), 0, d.Phase)
	require.EqualValues(s.T(), 0, st.Phase)
}

// TestPhaseGateRotations verifies S·X·S† = Y and S·Y·S† = -X.
func (s *TableauSuite) TestPhaseGateRotations() {
	t, _ := tableau.Identity(1)
	require.NoError(s.T(), t.Apply(circuit.S(0)))

	d := t.DestabRow(0) // X -> Y
	require.EqualValues(s.T(), 1, d.X.Bit(0))
	require.EqualValues(s.T(), 1, d.Z.Bit(0))
	require.EqualValues(s.T(), 0, d.Phase)

	require.NoError(s.T(), t.Apply(circuit.S(0)))
	d = t.DestabRow(0) // Y -> -X
	require.EqualValues(s.T(), 1, d.X.Bit(0))
	require.EqualValues(s.T(), 0, d.Z.Bit(0))
	require.EqualValues(s.T(), 1, d.Phase)
}

// TestPauliSignFlips verifies X·Z·X = -Z and Z·X·Z = -X.
func (s *TableauSuite) TestPauliSignFlips() {
	t, _ := tableau.Identity(1)
	require.NoError(s.T(), t.Apply(circuit.X(0)))
	require.EqualValues(s.T(), 0, t.DestabRow(0).Phase) // X commutes with X
	require.EqualValues(s.T(), 1, t.StabRow(0).Phase)   // Z anticommutes

	t2, _ := tableau.Identity(1)
	require.NoError(s.T(), t2.Apply(circuit.Z(0)))
	require.EqualValues(s.T(), 1, t2.DestabRow(0).Phase)
	require.EqualValues(s.T(), 0, t2.StabRow(0).Phase)
}

// TestCNOTPropagation verifies X spreads control→target and Z target→control.
func (s *TableauSuite) TestCNOTPropagation() {
	t, _ := tableau.Identity(2)
	require.NoError(s.T(), t.Apply(circuit.CNOT(0, 1)))

	d0 := t.DestabRow(0) // X_0 -> X_0 X_1
	require.EqualValues(s.T(), 1, d0.X.Bit(0))
	require.EqualValues(s.T(), 1, d0.X.Bit(1))

	d1 := t.DestabRow(1) // X_1 unchanged
	require.EqualValues(s.T(), 0, d1.X.Bit(0))
	require.EqualValues(s.T(), 1, d1.X.Bit(1))

	s0 := t.StabRow(0) // Z_0 unchanged
	require.EqualValues(s.T(), 1, s0.Z.Bit(0))
	require.EqualValues(s.T(), 0, s0.Z.Bit(1))

	s1 := t.StabRow(1) // Z_1 -> Z_0 Z_1
	require.EqualValues(s.T(), 1, s1.Z.Bit(0))
	require.EqualValues(s.T(), 1, s1.Z.Bit(1))
}

// TestCNOTYYSign verifies the CNOT sign term: Y⊗Y -> -X⊗Z.
func (s *TableauSuite) TestCNOTYYSign() {
	t, _ := tableau.Identity(2)
	// build Y on both rows of destabilizer 0: first make destab0 = Y_0 Y_1
	require.NoError(s.T(), t.Apply(circuit.S(0)))          // X_0 -> Y_0
	require.NoError(s.T(), t.Apply(circuit.CNOT(0, 1)))    // Y_0 -> Y_0 X_1
	require.NoError(s.T(), t.Apply(circuit.S(1)))          // X_1 -> Y_1
	d := t.DestabRow(0)                                    // now Y_0 Y_1, sign +
	require.EqualValues(s.T(), 0, d.Phase)
	require.NoError(s.T(), t.Apply(circuit.CNOT(0, 1)))
	d = t.DestabRow(0) // -X_0 Z_1
	require.EqualValues(s.T(), 1, d.Phase)
	require.EqualValues(s.T(), 1, d.X.Bit(0))
	require.EqualValues(s.T(), 0, d.Z.Bit(0))
	require.EqualValues(s.T(), 0, d.X.Bit(1))
	require.EqualValues(s.T(), 1, d.Z.Bit(1))
}

// TestCZMatchesComposition verifies the closed-form CZ update against its
// H-CNOT-H definition on a batch of random states of the tableau.
func (s *TableauSuite) TestCZMatchesComposition() {
	rng := rand.New(rand.NewSource(25))
	for trial := 0; trial < 20; trial++ {
		n := 3
		pre := randomClifford(rng, n, 8)
		a, _ := tableau.Identity(n)
		require.NoError(s.T(), a.ApplyCircuit(pre))
		b := a.Clone()

		require.NoError(s.T(), a.Apply(circuit.CZ(0, 2)))
		for _, g := range []circuit.Gate{circuit.H(2), circuit.CNOT(0, 2), circuit.H(2)} {
			require.NoError(s.T(), b.Apply(g))
		}
		require.True(s.T(), a.Equal(b), "trial %d:\n%v\nvs\n%v", trial, a, b)
	}
}

// TestInvariantPreservation checks rank and commutation structure after
// every single gate of random Clifford sequences.
func (s *TableauSuite) TestInvariantPreservation() {
	rng := rand.New(rand.NewSource(25))
	for trial := 0; trial < 10; trial++ {
		n := 2 + rng.Intn(4)
		t, err := tableau.Identity(n)
		require.NoError(s.T(), err)
		for _, g := range randomClifford(rng, n, 40).Gates {
			require.NoError(s.T(), t.Apply(g))
			require.NoError(s.T(), t.Check(), "after %v", g)
		}
	}
}

// TestRejectsNonClifford verifies the unsupported-gate contract, including
// the typed error carrying the offending gate.
func (s *TableauSuite) TestRejectsNonClifford() {
	t, _ := tableau.Identity(1)
	before := t.Clone()
	err := t.Apply(circuit.RZ(0, 0.3))
	require.ErrorIs(s.T(), err, tableau.ErrUnsupportedGate)

	var ug tableau.UnsupportedGateError
	require.ErrorAs(s.T(), err, &ug)
	require.Equal(s.T(), circuit.KindRZ, ug.Gate.Kind)
	require.True(s.T(), t.Equal(before), "failed Apply must not mutate")
}

// TestApplyValidatesQubits verifies bounds checking on Apply and the
// qubit-count check on ApplyCircuit.
func (s *TableauSuite) TestApplyValidatesQubits() {
	t, _ := tableau.Identity(2)
	require.ErrorIs(s.T(), t.Apply(circuit.H(2)), circuit.ErrQubitOutOfRange)
	require.ErrorIs(s.T(), t.Apply(circuit.CNOT(0, 0)), circuit.ErrSameQubit)
	require.ErrorIs(s.T(), t.ApplyCircuit(circuit.New(3)), tableau.ErrQubitMismatch)
}

// TestStringRendering verifies the signed Pauli-string rendering.
func (s *TableauSuite) TestStringRendering() {
	t, _ := tableau.Identity(2)
	require.NoError(s.T(), t.Apply(circuit.S(0)))
	out := t.String()
	require.Contains(s.T(), out, "destab[0] = +Y_")
	require.Contains(s.T(), out, "stab[0]   = +Z_")
	require.Contains(s.T(), out, "stab[1]   = +_Z")
}

// TestCloneIndependence verifies deep copies.
func (s *TableauSuite) TestCloneIndependence() {
	t, _ := tableau.Identity(2)
	c := t.Clone()
	require.NoError(s.T(), c.Apply(circuit.H(0)))
	require.True(s.T(), t.IsIdentity())
	require.False(s.T(), c.IsIdentity())
}

func TestTableauSuite(t *testing.T) {
	suite.Run(t, new(TableauSuite))
}

// randomClifford builds a seeded random Clifford circuit (no RZ).
func randomClifford(rng *rand.Rand, n, depth int) circuit.Circuit {
	c := circuit.New(n)
	for i := 0; i < depth; i++ {
		switch rng.Intn(6) {
		case 0:
			c = c.Append(circuit.H(rng.Intn(n)))
		case 1:
			c = c.Append(circuit.S(rng.Intn(n)))
		case 2:
			c = c.Append(circuit.X(rng.Intn(n)))
		case 3:
			c = c.Append(circuit.Z(rng.Intn(n)))
		case 4:
			a := rng.Intn(n)
			b := (a + 1 + rng.Intn(n-1)) % n
			c = c.Append(circuit.CNOT(a, b))
		case 5:
			a := rng.Intn(n)
			b := (a + 1 + rng.Intn(n-1)) % n
			c = c.Append(circuit.CZ(a, b))
		}
	}
	return c
}
