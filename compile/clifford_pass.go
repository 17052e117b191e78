// Package compile: the stabilizer-tableau specialist pass.
package compile

import (
	"fmt"

	"github.com/qforge/cliffsynth/circuit"
	"github.com/qforge/cliffsynth/synth"
	"github.com/qforge/cliffsynth/tableau"
)

// CliffordPass compiles all-Clifford segments to their canonical form by
// accumulating the segment into a stabilizer tableau and synthesizing it.
// Distinct input segments with the same net Clifford action compile to the
// same output circuit. The pass owns no tableau: each TryCompile call
// creates, consumes and discards one.
type CliffordPass struct {
	opts synth.Options
}

// NewCliffordPass returns a CliffordPass using the given synthesis options.
func NewCliffordPass(opts synth.Options) *CliffordPass {
	return &CliffordPass{opts: opts}
}

// Accepts reports whether g is a Clifford gate.
func (p *CliffordPass) Accepts(g circuit.Gate) bool {
	return g.Kind.IsClifford()
}

// TryCompile accumulates the segment into a fresh identity tableau and
// returns the canonical synthesis. Segments containing any non-Clifford
// gate are refused with ErrRefused; tableau and synthesis failures
// propagate unchanged. Complexity: O(len(seg)·n + n³).
func (p *CliffordPass) TryCompile(seg circuit.Circuit) (circuit.Circuit, error) {
	if !seg.IsClifford() {
		return circuit.Circuit{}, fmt.Errorf("clifford pass: non-Clifford segment: %w", ErrRefused)
	}
	t, err := tableau.Identity(seg.Qubits)
	if err != nil {
		return circuit.Circuit{}, err
	}
	if err := t.ApplyCircuit(seg); err != nil {
		return circuit.Circuit{}, err
	}
	return synth.Synthesize(t, p.opts)
}
