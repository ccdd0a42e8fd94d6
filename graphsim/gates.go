package graphsim

import "github.com/kegliz/graphstate/graphsim/vop"

// X applies a Pauli-X gate to qubit q.
func (g *GraphSim) X(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.XGate)
}

// Y applies a Pauli-Y gate to qubit q.
func (g *GraphSim) Y(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.YGate)
}

// Z applies a Pauli-Z gate to qubit q.
func (g *GraphSim) Z(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.ZGate)
}

// H applies a Hadamard gate to qubit q.
func (g *GraphSim) H(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.HGate)
}

// S applies a phase (S) gate to qubit q.
func (g *GraphSim) S(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.SGate)
}

// Sdag applies the inverse phase (S-dagger) gate to qubit q.
func (g *GraphSim) Sdag(q int) {
	g.checkIndex(q)
	g.leftMulVOP(q, vop.SdagGate)
}

// CZ applies a controlled-Z gate between control and target. This is the
// load-bearing two-qubit operation: both endpoints are first rewritten so
// their VOP is Z-commuting (via removeVOP), with a second pass on control
// when removing target's VOP moved control's back out of that set, then
// the CZ-conjugation table resolves the new edge state and both VOPs.
func (g *GraphSim) CZ(control, target int) {
	g.checkPair(control, target)

	cHasOther := g.hasOtherNeighbor(control, target)
	tHasOther := g.hasOtherNeighbor(target, control)

	if cHasOther {
		g.removeVOP(control, target)
	}
	if tHasOther {
		g.removeVOP(target, control)
	}
	if cHasOther && !g.nodes[control].v.IsInZ() {
		g.removeVOP(control, target)
	}

	cv := g.nodes[control].v
	tv := g.nodes[target].v
	hadEdge := g.hasEdge(control, target)

	edge, newC, newT := vop.CPhase(hadEdge, cv, tv)
	if edge != hadEdge {
		g.ToggleEdge(control, target)
	}
	g.nodes[control].v = newC
	g.nodes[target].v = newT
}

func (g *GraphSim) hasOtherNeighbor(q, other int) bool {
	for _, n := range g.nodes[q].adjacent {
		if n != other {
			return true
		}
	}
	return false
}

// CX applies a controlled-X (CNOT) gate: CX(c,t) = H(t); CZ(c,t); H(t).
func (g *GraphSim) CX(control, target int) {
	g.checkPair(control, target)
	g.H(target)
	g.CZ(control, target)
	g.H(target)
}

// CY applies a controlled-Y gate: CY(c,t) = S-dag(t); CX(c,t); S(t).
func (g *GraphSim) CY(control, target int) {
	g.checkPair(control, target)
	g.Sdag(target)
	g.CX(control, target)
	g.S(target)
}

// XCX conjugates CX's control by H:
// XCX(c,t) = H(c); CX(c,t); H(c).
func (g *GraphSim) XCX(control, target int) {
	g.checkPair(control, target)
	g.H(control)
	g.CX(control, target)
	g.H(control)
}

// YCX conjugates CX's control by S-dag/S:
// YCX(c,t) = S-dag(c); XCX(c,t); S(c).
func (g *GraphSim) YCX(control, target int) {
	g.checkPair(control, target)
	g.Sdag(control)
	g.XCX(control, target)
	g.S(control)
}

// XCZ is CX with control and target swapped: XCZ(c,t) = CX(t,c).
func (g *GraphSim) XCZ(control, target int) {
	g.checkPair(control, target)
	g.CX(target, control)
}

// YCZ is CY with control and target swapped: YCZ(c,t) = CY(t,c).
func (g *GraphSim) YCZ(control, target int) {
	g.checkPair(control, target)
	g.CY(target, control)
}

// XCY is YCX with control and target swapped: XCY(c,t) = YCX(t,c).
func (g *GraphSim) XCY(control, target int) {
	g.checkPair(control, target)
	g.YCX(target, control)
}

// YCY conjugates YCX's target by S-dag/S:
// YCY(c,t) = S-dag(t); YCX(c,t); S(t).
func (g *GraphSim) YCY(control, target int) {
	g.checkPair(control, target)
	g.Sdag(target)
	g.YCX(control, target)
	g.S(target)
}
