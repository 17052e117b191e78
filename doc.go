// Package cliffsynth compiles Clifford-group quantum gate sequences into
// equivalent canonical circuits via exact stabilizer-tableau tracking.
//
// 🚀 What is cliffsynth?
//
//	A deterministic, exact-arithmetic compiler core that brings together:
//		• GF(2) primitives: word-packed bit vectors, rank, row reduction
//		• Stabilizer tableaux: symplectic generator tracking with phase bits
//		• Gate conjugation: in-place H, S, X, Z, CNOT, CZ tableau updates
//		• Canonical synthesis: Gaussian-elimination tableau → circuit
//		• Pass dispatch: pluggable compilation strategies over mixed input
//
// ✨ Why choose cliffsynth?
//
//   - Exact – every computation is over GF(2), no floating point anywhere
//   - Deterministic – fixed pivot order, identical output for identical input
//   - Fail-fast – sentinel errors on every public surface, no silent states
//   - Pure Go – no cgo, the only dependency is testify (tests only)
//
// Under the hood, everything is organized under six subpackages:
//
//	gf2/      — exact binary-field vectors, matrices, rank and reduction
//	circuit/  — immutable Gate and Circuit value types
//	tableau/  — the mutable stabilizer/destabilizer tableau + gate updates
//	synth/    — canonical circuit synthesis from a target tableau
//	compile/  — CompilationPass contract, dispatcher and entry point
//	statevec/ — dense statevector simulator (validation only)
//
// Quick data-flow sketch:
//
//	gates ──► Dispatcher ──► segment ──► Tableau.Apply* ──► Synthesize ──► circuit
//	                └──────► segment ──► CouplingPass (routed fallback) ──┘
//
// Dive into each package's doc.go for algorithms, invariants and complexity.
//
//	go get github.com/qforge/cliffsynth
package cliffsynth
