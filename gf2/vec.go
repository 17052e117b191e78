// SPDX-License-Identifier: MIT

// Package gf2 - word-packed bit vectors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly 64-bit-word buffer with the explicit index
//     formula word = i>>6, mask = 1<<(i&63).
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the contract policy from a single source of truth: out-of-range
//     and mismatched-length access panics with a wrapped sentinel.
//
// Complexity quicksheet:
//   - NewVec: O(n/64) zero-init; Bit/SetBit/FlipBit: O(1); XorWith/Dot:
//     O(n/64); Clone: O(n/64); NextSet: O(n/64) worst case.

package gf2

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// operation tags used in panic payloads, kept as constants for grep-ability.
const (
	opBit     = "Bit"
	opSetBit  = "SetBit"
	opFlipBit = "FlipBit"
	opXorWith = "XorWith"
	opDot     = "Dot"
	opNewVec  = "NewVec"
	opNextSet = "NextSet"
)

// Vec is a bit vector over GF(2), packed into 64-bit words.
// The zero value is an empty vector of length 0.
type Vec struct {
	n     int
	words []uint64
}

// NewVec returns an all-zero vector of length n.
// Panics with ErrBadShape if n < 0.
// Complexity: O(n/64).
func NewVec(n int) Vec {
	if n < 0 {
		panic(gf2Errorf(opNewVec, ErrBadShape))
	}
	return Vec{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the number of bits in the vector. Complexity: O(1).
func (v Vec) Len() int { return v.n }

// Bit returns bit i as 0 or 1.
// Panics with ErrOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v Vec) Bit(i int) uint8 {
	if i < 0 || i >= v.n {
		panic(gf2Errorf(opBit, ErrOutOfRange))
	}
	return uint8(v.words[i>>6] >> (uint(i) & 63) & 1)
}

// SetBit assigns bit i to b&1.
// Panics with ErrOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v *Vec) SetBit(i int, b uint8) {
	if i < 0 || i >= v.n {
		panic(gf2Errorf(opSetBit, ErrOutOfRange))
	}
	mask := uint64(1) << (uint(i) & 63)
	if b&1 == 1 {
		v.words[i>>6] |= mask
	} else {
		v.words[i>>6] &^= mask
	}
}

// FlipBit toggles bit i.
// Panics with ErrOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v *Vec) FlipBit(i int) {
	if i < 0 || i >= v.n {
		panic(gf2Errorf(opFlipBit, ErrOutOfRange))
	}
	v.words[i>>6] ^= uint64(1) << (uint(i) & 63)
}

// XorWith adds o into v in place (v ^= o), the only nontrivial addition GF(2)
// has. Panics with ErrLengthMismatch if lengths differ.
// Complexity: O(n/64).
func (v *Vec) XorWith(o Vec) {
	if v.n != o.n {
		panic(gf2Errorf(opXorWith, ErrLengthMismatch))
	}
	for w := range v.words {
		v.words[w] ^= o.words[w]
	}
}

// Xor returns a ^ b as a fresh vector; operands are not mutated.
// Panics with ErrLengthMismatch if lengths differ.
// Complexity: O(n/64).
func Xor(a, b Vec) Vec {
	out := a.Clone()
	out.XorWith(b)
	return out
}

// Dot returns the GF(2) inner product of a and b: the parity of the popcount
// of a AND b. Panics with ErrLengthMismatch if lengths differ.
// Complexity: O(n/64).
func Dot(a, b Vec) uint8 {
	if a.n != b.n {
		panic(gf2Errorf(opDot, ErrLengthMismatch))
	}
	var parity int
	for w := range a.words {
		parity ^= bits.OnesCount64(a.words[w] & b.words[w])
	}
	return uint8(parity & 1)
}

// Clone returns an independent deep copy. Complexity: O(n/64).
func (v Vec) Clone() Vec {
	out := Vec{n: v.n, words: make([]uint64, len(v.words))}
	copy(out.words, v.words)
	return out
}

// IsZero reports whether every bit is 0. Complexity: O(n/64).
func (v Vec) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether o has the same length and identical bits.
// Complexity: O(n/64).
func (v Vec) Equal(o Vec) bool {
	if v.n != o.n {
		return false
	}
	for w := range v.words {
		if v.words[w] != o.words[w] {
			return false
		}
	}
	return true
}

// NextSet returns the lowest index i >= from with bit i set, or -1 if no such
// bit exists. This is the pivot-scan primitive used throughout elimination;
// the lowest-index preference is what makes downstream synthesis
// deterministic. Panics with ErrOutOfRange if from < 0.
// Complexity: O(n/64) worst case.
func (v Vec) NextSet(from int) int {
	if from < 0 {
		panic(gf2Errorf(opNextSet, ErrOutOfRange))
	}
	if from >= v.n {
		return -1
	}
	w := from >> 6
	// Mask off bits below `from` in the first word, then scan whole words.
	cur := v.words[w] &^ (uint64(1)<<(uint(from)&63) - 1)
	for {
		if cur != 0 {
			i := w*wordBits + bits.TrailingZeros64(cur)
			if i >= v.n {
				return -1
			}
			return i
		}
		w++
		if w >= len(v.words) {
			return -1
		}
		cur = v.words[w]
	}
}

// String renders the vector as a bit string, lowest index first, e.g. "0110".
// Complexity: O(n).
func (v Vec) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		sb.WriteByte('0' + v.Bit(i))
	}
	return sb.String()
}
