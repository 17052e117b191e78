// Package synth produces a canonical elementary-gate circuit reproducing the
// net Clifford action captured by a stabilizer tableau.
//
// Canonicalization is the point: any two gate sequences with the same net
// Clifford action accumulate to the same tableau, and Synthesize maps every
// tableau to exactly one output circuit, so equivalent inputs synthesize to
// gate-for-gate identical outputs. Synthesis is also idempotent: feeding the
// synthesized circuit back through a fresh tableau and Synthesize returns
// the same circuit again.
//
// Tie-break convention (fixed, documented, load-bearing for determinism):
// every pivot search takes the lowest-index column with a nonzero bit,
// scanning the destabilizer X-part first, then its Z-part, then the paired
// stabilizer row. Different conventions yield different but equally valid
// canonical forms; this one is frozen here.
//
// The synthesizer never mutates its input tableau and is safe to call
// concurrently on distinct tableaux.
package synth
