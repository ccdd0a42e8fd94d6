package graphsim

import "github.com/kegliz/graphstate/graphsim/vop"

// removeVOP rewrites first's VOP into one of the four Z-commuting labels
// (see vop.VOP.IsInZ) while leaving avoid untouched, by replaying first's
// decomposition word over local complementations at first itself (U) and at
// a chosen pivot neighbor (V).
//
// The pivot is first's first neighbor that isn't avoid; if first's only
// neighbor is avoid, the pivot falls back to avoid itself (see SPEC_FULL.md
// §9 for why this fallback never actually fires from CZ's own call sites).
func (g *GraphSim) removeVOP(first, avoid int) {
	second := avoid
	for _, n := range g.nodes[first].adjacent {
		if n != avoid {
			second = n
			break
		}
	}

	for _, step := range g.nodes[first].v.Decomp() {
		switch step {
		case vop.StepSelf:
			g.LocalComp(first)
		case vop.StepPivot:
			g.LocalComp(second)
		}
	}
}
