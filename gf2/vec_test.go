package gf2_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qforge/cliffsynth/gf2"
)

// requirePanicsIs asserts that fn panics with an error matching sentinel.
func requirePanicsIs(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic payload must be an error, got %v", r)
		require.True(t, errors.Is(err, sentinel), "got %v, want %v", err, sentinel)
	}()
	fn()
}

// TestVecBasics verifies construction, bit access and length reporting.
func TestVecBasics(t *testing.T) {
	v := gf2.NewVec(130) // three words, partial last word
	require.Equal(t, 130, v.Len())
	require.True(t, v.IsZero())

	v.SetBit(0, 1)
	v.SetBit(64, 1)
	v.SetBit(129, 1)
	require.EqualValues(t, 1, v.Bit(0))
	require.EqualValues(t, 1, v.Bit(64))
	require.EqualValues(t, 1, v.Bit(129))
	require.EqualValues(t, 0, v.Bit(1))
	require.False(t, v.IsZero())

	v.FlipBit(0)
	require.EqualValues(t, 0, v.Bit(0))
}

// TestVecXorDot verifies XOR and the GF(2) inner product across word
// boundaries.
func TestVecXorDot(t *testing.T) {
	a := gf2.NewVec(70)
	b := gf2.NewVec(70)
	a.SetBit(3, 1)
	a.SetBit(68, 1)
	b.SetBit(3, 1)
	b.SetBit(69, 1)

	c := gf2.Xor(a, b)
	require.EqualValues(t, 0, c.Bit(3)) // cancelled
	require.EqualValues(t, 1, c.Bit(68))
	require.EqualValues(t, 1, c.Bit(69))

	// one shared bit -> odd overlap -> dot = 1
	require.EqualValues(t, 1, gf2.Dot(a, b))
	b.SetBit(68, 1)
	require.EqualValues(t, 0, gf2.Dot(a, b)) // two shared bits
}

// TestVecNextSet verifies the lowest-index scan used for pivot selection.
func TestVecNextSet(t *testing.T) {
	v := gf2.NewVec(200)
	require.Equal(t, -1, v.NextSet(0))

	v.SetBit(5, 1)
	v.SetBit(64, 1)
	v.SetBit(199, 1)
	require.Equal(t, 5, v.NextSet(0))
	require.Equal(t, 5, v.NextSet(5))
	require.Equal(t, 64, v.NextSet(6))
	require.Equal(t, 199, v.NextSet(65))
	require.Equal(t, -1, v.NextSet(200))
}

// TestVecCloneIndependence verifies that Clone detaches storage.
func TestVecCloneIndependence(t *testing.T) {
	a := gf2.NewVec(10)
	a.SetBit(4, 1)
	b := a.Clone()
	b.FlipBit(4)
	require.EqualValues(t, 1, a.Bit(4))
	require.EqualValues(t, 0, b.Bit(4))
	require.False(t, a.Equal(b))
}

// TestVecString verifies rendering order (lowest index first).
func TestVecString(t *testing.T) {
	v := gf2.NewVec(4)
	v.SetBit(1, 1)
	v.SetBit(2, 1)
	require.Equal(t, "0110", v.String())
}

// TestVecContractViolations verifies that out-of-range and mismatched-length
// access panics with the documented sentinels.
func TestVecContractViolations(t *testing.T) {
	v := gf2.NewVec(8)
	o := gf2.NewVec(9)

	requirePanicsIs(t, gf2.ErrOutOfRange, func() { v.Bit(8) })
	requirePanicsIs(t, gf2.ErrOutOfRange, func() { v.SetBit(-1, 1) })
	requirePanicsIs(t, gf2.ErrLengthMismatch, func() { v.XorWith(o) })
	requirePanicsIs(t, gf2.ErrLengthMismatch, func() { gf2.Dot(v, o) })
	requirePanicsIs(t, gf2.ErrBadShape, func() { gf2.NewVec(-1) })
}
