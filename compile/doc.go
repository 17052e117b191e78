// Package compile composes pluggable compilation strategies over non-uniform
// gate sequences.
//
// The compile package provides:
//
//   - Pass, the strategy contract: a stateless object that either compiles a
//     gate segment into a replacement circuit or refuses it (ErrRefused). A
//     refusal carries no partial output.
//   - CliffordPass, the tableau specialist: accepts any segment composed
//     solely of Clifford gates, accumulates it into a stabilizer tableau and
//     emits the canonical synthesis.
//   - CouplingPass, the connectivity-aware fallback: accepts broader
//     segments (including opaque RZ rotations) and yields an
//     uncanonicalized, connectivity-valid gate sequence, routing two-qubit
//     gates across a coupling graph with SWAP chains when the operands are
//     not adjacent.
//   - Dispatcher, which partitions the input into maximal contiguous
//     segments, routing each to the first pass (in caller priority order)
//     that accepts it, and concatenates the outputs in original order.
//   - Compile, the single entry point wiring all of the above together.
//
// Hosts register additional strategies by implementing Pass; the dispatcher
// never needs modification.
//
// Passes own no tableau and hold no mutable state across calls, so a
// Dispatcher may be shared between goroutines, and independent segments may
// be compiled in parallel as long as the final concatenation order is the
// original one.
package compile
