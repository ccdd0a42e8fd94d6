package graphsim

import "github.com/kegliz/graphstate/graphsim/vop"

// ToggleEdge flips the edge between u and v: removes it if present, adds it
// if absent, on both endpoints. Returns whether the edge exists after the
// call. u must not equal v.
func (g *GraphSim) ToggleEdge(u, v int) bool {
	if g.hasEdge(u, v) {
		g.removeAdjacent(u, v)
		g.removeAdjacent(v, u)
		return false
	}
	g.nodes[u].adjacent = append(g.nodes[u].adjacent, v)
	g.nodes[v].adjacent = append(g.nodes[v].adjacent, u)
	return true
}

// DeleteEdge removes the edge between u and v if present; no-op otherwise.
func (g *GraphSim) DeleteEdge(u, v int) {
	g.removeAdjacent(u, v)
	g.removeAdjacent(v, u)
}

func (g *GraphSim) removeAdjacent(u, v int) {
	adj := g.nodes[u].adjacent
	out := adj[:0]
	for _, n := range adj {
		if n != v {
			out = append(out, n)
		}
	}
	g.nodes[u].adjacent = out
}

// LocalComp performs local complementation at v: toggles the edge between
// every unordered pair of v's neighbors, right-multiplies every neighbor's
// VOP by S, then right-multiplies v's own VOP by YD. Preserves the encoded
// stabilizer state up to this known VOP relabelling.
func (g *GraphSim) LocalComp(v int) {
	neighbors := g.Adjacent(v)
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			g.ToggleEdge(neighbors[i], neighbors[j])
		}
	}
	for _, n := range neighbors {
		g.rightMulVOP(n, vop.SGate)
	}
	g.rightMulVOP(v, vop.YD)
}
