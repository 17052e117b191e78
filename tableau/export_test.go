package tableau

// Test-only hooks for constructing defective tableaux: the public surface
// can never produce one (that is the point of the invariants), so the
// checker tests reach inside.

// CorruptXBit flips one X-part bit without going through a gate.
func (t *Tableau) CorruptXBit(row, col int) { t.x[row].FlipBit(col) }

// CorruptCopyRow overwrites row dst with a copy of row src, forcing rank
// deficiency.
func (t *Tableau) CorruptCopyRow(dst, src int) {
	t.x[dst] = t.x[src].Clone()
	t.z[dst] = t.z[src].Clone()
	t.phase[dst] = t.phase[src]
}
