package graphsim

import "github.com/kegliz/graphstate/graphsim/vop"

// zeta is the outcome-flip correction term computed from a node's adjointed
// VOP and the requested measurement axis.
type zeta uint8

const (
	zetaZero zeta = iota
	zetaTwo
)

// findZeta mirrors the reference implementation's two-boolean XNOR: zeta is
// Two exactly when (r == 0 or r == axis+1) agrees with h, where r is the
// Pauli-prefix of adjointVOP and h is true when adjointVOP's letter is in
// {B, C, D}.
func findZeta(adjointVOP vop.VOP, axis vop.Axis) zeta {
	r := int(adjointVOP) & 0b11
	cond1 := r == 0 || r == int(axis)+1
	cond2 := adjointVOP >= vop.IB && adjointVOP < vop.IE
	if cond1 == cond2 {
		return zetaTwo
	}
	return zetaZero
}

// Measure performs a Pauli measurement of qubit node along axis, mutating
// the state, and reports the outcome and whether it was deterministic.
func (g *GraphSim) Measure(node int, axis vop.Axis) (vop.Result, bool) {
	g.checkIndex(node)

	a := g.nodes[node].v.Adjoint()
	z := findZeta(a, axis)
	basis := vop.BasisAfter(axis, a)

	var res vop.Result
	var deterministic bool
	switch basis {
	case vop.X:
		res, deterministic = g.intMeasureX(node)
	case vop.Y:
		res = g.intMeasureY(node)
	case vop.Z:
		res = g.intMeasureZ(node)
	}

	if z == zetaTwo {
		res = res.Flip()
	}
	return res, deterministic
}

// MeasureX destructively measures qubit q in the X basis.
func (g *GraphSim) MeasureX(q int) vop.Result {
	res, _ := g.Measure(q, vop.X)
	return res
}

// MeasureY destructively measures qubit q in the Y basis.
func (g *GraphSim) MeasureY(q int) vop.Result {
	res, _ := g.Measure(q, vop.Y)
	return res
}

// MeasureZ destructively measures qubit q in the Z basis.
func (g *GraphSim) MeasureZ(q int) vop.Result {
	res, _ := g.Measure(q, vop.Z)
	return res
}

func (g *GraphSim) sampleResult() vop.Result {
	if g.rng.Intn(2) == 0 {
		return vop.PlusOne
	}
	return vop.MinusOne
}

func (g *GraphSim) intMeasureX(node int) (vop.Result, bool) {
	if len(g.nodes[node].adjacent) == 0 {
		return vop.PlusOne, true
	}

	res := g.sampleResult()
	other := g.nodes[node].adjacent[0]

	switch res {
	case vop.PlusOne:
		g.rightMulVOP(other, vop.ZC)
		for _, third := range g.nodes[node].adjacent {
			if third != other && !contains(g.nodes[other].adjacent, third) {
				g.rightMulVOP(third, vop.ZGate)
			}
		}
	case vop.MinusOne:
		g.rightMulVOP(other, vop.XC)
		g.rightMulVOP(node, vop.ZA)
		for _, third := range g.nodes[other].adjacent {
			if third != node && !contains(g.nodes[node].adjacent, third) {
				g.rightMulVOP(third, vop.ZGate)
			}
		}
	}

	nodeNbs := g.Adjacent(node)
	otherNbs := g.Adjacent(other)

	processed := make(map[[2]int]bool)
	for _, nval := range nodeNbs {
		for _, oval := range otherNbs {
			if nval == oval {
				continue
			}
			pair := normalizedPair(nval, oval)
			if processed[pair] {
				continue
			}
			processed[pair] = true
			g.ToggleEdge(pair[0], pair[1])
		}
	}

	var intersection []int
	for _, n := range nodeNbs {
		if contains(otherNbs, n) {
			intersection = append(intersection, n)
		}
	}
	for i := 0; i < len(intersection); i++ {
		for j := i + 1; j < len(intersection); j++ {
			g.ToggleEdge(intersection[i], intersection[j])
		}
	}

	for _, n := range nodeNbs {
		if n != other {
			g.ToggleEdge(other, n)
		}
	}

	return res, false
}

func (g *GraphSim) intMeasureY(node int) vop.Result {
	res := g.sampleResult()

	nodeNbs := g.Adjacent(node)
	gate := vop.SGate
	if res == vop.MinusOne {
		gate = vop.SdagGate
	}
	for _, other := range nodeNbs {
		g.rightMulVOP(other, gate)
	}

	n := len(nodeNbs)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			oval := node
			if j != n {
				oval = nodeNbs[j]
			}
			g.ToggleEdge(nodeNbs[i], oval)
		}
	}

	g.rightMulVOP(node, gate)
	return res
}

func (g *GraphSim) intMeasureZ(node int) vop.Result {
	res := g.sampleResult()

	for _, other := range g.Adjacent(node) {
		g.DeleteEdge(node, other)
		if res == vop.MinusOne {
			g.rightMulVOP(other, vop.ZGate)
		}
	}

	if res == vop.PlusOne {
		g.rightMulVOP(node, vop.HGate)
	} else {
		g.rightMulVOP(node, vop.XGate)
		g.rightMulVOP(node, vop.HGate)
	}
	return res
}

// findDeterministic returns the axis qubit q measures deterministically in,
// and true, when q is isolated; otherwise false.
func (g *GraphSim) findDeterministic(q int) (vop.Axis, bool) {
	if len(g.nodes[q].adjacent) != 0 {
		return 0, false
	}
	return g.nodes[q].v.Adjoint().DeterministicAxis(), true
}

// PeekMeasureSet non-disturbingly measures every qubit in qubits: it clones
// the state, measures the clone (using the deterministic axis when a qubit
// is isolated, else a uniformly random one), and returns the outcomes. The
// receiver is left unchanged.
func (g *GraphSim) PeekMeasureSet(qubits []int) map[int]vop.Outcome {
	clone := g.Clone()
	out := make(map[int]vop.Outcome, len(qubits))
	for _, q := range qubits {
		axis, deterministic := clone.findDeterministic(q)
		if !deterministic {
			axis = vop.Axis(clone.rng.Intn(3))
		}
		res, _ := clone.Measure(q, axis)
		out[q] = vop.Outcome{Result: res, Axis: axis}
	}
	return out
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func normalizedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
