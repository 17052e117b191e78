// Package compile: connectivity-constrained fallback pass.
package compile

import (
	"fmt"
	"sort"

	"github.com/qforge/cliffsynth/circuit"
)

// CouplingPass accepts broader segments than the tableau specialist —
// including opaque non-Clifford rotations — and emits a gate sequence that
// is valid on a constrained qubit connectivity: every two-qubit gate in its
// output acts on a coupled pair. Non-adjacent two-qubit gates are routed by
// a SWAP chain (three CNOTs per hop) along the shortest coupling path and
// unrouted afterwards, so the net action is unchanged. The output is NOT
// canonicalized; this pass trades canonical form for coverage.
type CouplingPass struct {
	qubits int
	adj    [][]int // neighbor lists, ascending
}

// NewCouplingPass builds a pass over `qubits` qubits whose coupling graph
// has the given undirected edges. Duplicate edges are merged.
// Returns wrapped circuit.ErrQubitOutOfRange or circuit.ErrSameQubit on a
// malformed edge, circuit.ErrNegativeQubits on a bad count.
func NewCouplingPass(qubits int, edges [][2]int) (*CouplingPass, error) {
	if qubits < 0 {
		return nil, fmt.Errorf("coupling pass: qubits=%d: %w", qubits, circuit.ErrNegativeQubits)
	}
	adj := make([][]int, qubits)
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || a >= qubits || b < 0 || b >= qubits {
			return nil, fmt.Errorf("coupling pass: edge (%d,%d): %w", a, b, circuit.ErrQubitOutOfRange)
		}
		if a == b {
			return nil, fmt.Errorf("coupling pass: edge (%d,%d): %w", a, b, circuit.ErrSameQubit)
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			continue
		}
		seen[[2]int{a, b}] = true
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for q := range adj {
		sort.Ints(adj[q])
	}
	return &CouplingPass{qubits: qubits, adj: adj}, nil
}

// LineCoupling returns a pass whose coupling graph is the line
// 0—1—…—(n-1), the classic nearest-neighbour architecture.
func LineCoupling(n int) (*CouplingPass, error) {
	edges := make([][2]int, 0, n-1)
	for q := 0; q+1 < n; q++ {
		edges = append(edges, [2]int{q, q + 1})
	}
	return NewCouplingPass(n, edges)
}

// FullCoupling returns a pass whose coupling graph is complete: every pair
// of qubits is adjacent and no routing ever happens.
func FullCoupling(n int) (*CouplingPass, error) {
	var edges [][2]int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			edges = append(edges, [2]int{a, b})
		}
	}
	return NewCouplingPass(n, edges)
}

// Accepts reports whether the pass can implement g on its coupling graph:
// single-qubit gates (Clifford or not) always, two-qubit gates whenever a
// coupling path joins the operands.
func (p *CouplingPass) Accepts(g circuit.Gate) bool {
	switch g.Kind.Arity() {
	case 1:
		return g.Q0 >= 0 && g.Q0 < p.qubits
	case 2:
		return p.path(g.Q0, g.Q1) != nil
	default:
		return false
	}
}

// TryCompile emits each gate of the segment in order, routing non-adjacent
// two-qubit gates. Refuses (ErrRefused) segments containing a gate outside
// the pass's domain. Complexity: O(len(seg)·(V+E)) for the path searches.
func (p *CouplingPass) TryCompile(seg circuit.Circuit) (circuit.Circuit, error) {
	if err := seg.Validate(); err != nil {
		return circuit.Circuit{}, fmt.Errorf("coupling pass: %w", err)
	}
	out := circuit.New(seg.Qubits)
	for i, g := range seg.Gates {
		if !p.Accepts(g) {
			return circuit.Circuit{}, fmt.Errorf("coupling pass: gate %d (%v): %w", i, g, ErrRefused)
		}
		if g.Kind.Arity() == 1 {
			out = out.Append(g)
			continue
		}
		route := p.path(g.Q0, g.Q1)
		// route[0] == g.Q0 and route[len-1] == g.Q1; hops beyond one need
		// the first operand swapped down the path and back.
		for h := 0; h+2 < len(route); h++ {
			out = out.Append(swapGates(route[h], route[h+1])...)
		}
		moved := route[len(route)-2]
		out = out.Append(circuit.Gate{Kind: g.Kind, Q0: moved, Q1: g.Q1, Angle: g.Angle})
		for h := len(route) - 3; h >= 0; h-- {
			out = out.Append(swapGates(route[h], route[h+1])...)
		}
	}
	return out, nil
}

// swapGates expands SWAP(a, b) into its three-CNOT decomposition.
func swapGates(a, b int) []circuit.Gate {
	return []circuit.Gate{circuit.CNOT(a, b), circuit.CNOT(b, a), circuit.CNOT(a, b)}
}

// path returns the shortest coupling path from a to b (inclusive), or nil if
// none exists. BFS with ascending neighbor order keeps the chosen route
// deterministic. Complexity: O(V + E).
func (p *CouplingPass) path(a, b int) []int {
	if a < 0 || a >= p.qubits || b < 0 || b >= p.qubits || a == b {
		return nil
	}
	prev := make([]int, p.qubits)
	for q := range prev {
		prev[q] = -1
	}
	prev[a] = a
	queue := []int{a}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if q == b {
			break
		}
		for _, nb := range p.adj[q] {
			if prev[nb] < 0 {
				prev[nb] = q
				queue = append(queue, nb)
			}
		}
	}
	if prev[b] < 0 {
		return nil
	}
	var rev []int
	for q := b; q != a; q = prev[q] {
		rev = append(rev, q)
	}
	rev = append(rev, a)
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}
