package synth

// Options configures Synthesize.
//   - CheckInvariants: run tableau.Check on the input (rank + symplectic
//     structure) before synthesizing. A defective tableau then surfaces as
//     tableau.ErrInvariantViolation instead of a failed pivot search deep
//     inside elimination. The check costs O(n³), the same order as the
//     synthesis itself.
type Options struct {
	CheckInvariants bool
}

// DefaultOptions returns the recommended configuration:
// invariant checking enabled.
func DefaultOptions() Options {
	return Options{CheckInvariants: true}
}
