// Package graphsim implements a graph-state stabilizer simulator (the
// Anders-Briegel representation): an n-qubit pure stabilizer state is
// tracked as an undirected simple graph whose vertices each carry a local
// Clifford "vertex operator" (VOP) label. Clifford gates and Pauli-basis
// measurements are applied by rewriting the graph and its labels in place,
// never by tracking a full 2^n amplitude vector.
package graphsim

import (
	"math/rand"
	"time"

	"github.com/kegliz/graphstate/graphsim/vop"
)

// Node is one qubit of a graph state: an ordered adjacency list (order
// matters — measurement picks "the first neighbor" as a pivot) and a VOP
// label. A fresh node's vop is YC, the canonical |0> label.
type Node struct {
	adjacent []int
	v        vop.VOP
}

// GraphSim is a fixed-size vector of Nodes representing an n-qubit graph
// state. Nodes are never created or destroyed after construction; only
// their adjacency and VOP mutate. Not safe for concurrent use: every gate
// and measurement requires exclusive access to the instance.
type GraphSim struct {
	nodes []Node
	rng   *rand.Rand
}

// New creates an n-qubit simulator in the |0...0> state, each qubit
// isolated with VOP = YC (the canonical |0> label). Randomness is drawn
// from the instance's own source, seeded from the current time.
func New(n int) *GraphSim {
	return NewSeeded(n, time.Now().UnixNano())
}

// NewSeeded creates an n-qubit simulator with a deterministic RNG, for
// reproducible tests.
func NewSeeded(n int, seed int64) *GraphSim {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{v: vop.YC}
	}
	return &GraphSim{nodes: nodes, rng: rand.New(rand.NewSource(seed))}
}

// Len returns the number of qubits.
func (g *GraphSim) Len() int {
	return len(g.nodes)
}

// Clone returns a deep copy of the simulator, including an independent RNG
// seeded from the original's current state so the clone's random draws
// don't consume the original's stream. Used by PeekMeasureSet.
func (g *GraphSim) Clone() *GraphSim {
	nodes := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		adj := make([]int, len(n.adjacent))
		copy(adj, n.adjacent)
		nodes[i] = Node{adjacent: adj, v: n.v}
	}
	return &GraphSim{nodes: nodes, rng: rand.New(rand.NewSource(g.rng.Int63()))}
}

// VOP returns the current VOP label of qubit q.
func (g *GraphSim) VOP(q int) vop.VOP {
	g.checkIndex(q)
	return g.nodes[q].v
}

// Adjacent returns a copy of qubit q's current neighbor list.
func (g *GraphSim) Adjacent(q int) []int {
	g.checkIndex(q)
	out := make([]int, len(g.nodes[q].adjacent))
	copy(out, g.nodes[q].adjacent)
	return out
}

func (g *GraphSim) hasEdge(u, v int) bool {
	for _, n := range g.nodes[u].adjacent {
		if n == v {
			return true
		}
	}
	return false
}

// leftMulVOP applies vop(q) <- gate * vop(q), the convention the public
// single-qubit gate API uses.
func (g *GraphSim) leftMulVOP(q int, gate vop.VOP) {
	g.nodes[q].v = vop.Mul(gate, g.nodes[q].v)
}

// rightMulVOP applies vop(q) <- vop(q) * gate, the convention the internal
// local-complementation and measurement routines use.
func (g *GraphSim) rightMulVOP(q int, gate vop.VOP) {
	g.nodes[q].v = vop.Mul(g.nodes[q].v, gate)
}
