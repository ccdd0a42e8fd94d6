package graphsim

import (
	"testing"

	"github.com/kegliz/graphstate/graphsim/vop"
)

// sameShape compares two simulators' adjacency and VOPs for deep equality.
func sameShape(t *testing.T, a, b *GraphSim) bool {
	t.Helper()
	if a.Len() != b.Len() {
		return false
	}
	for q := 0; q < a.Len(); q++ {
		if a.VOP(q) != b.VOP(q) {
			return false
		}
		aAdj, bAdj := a.Adjacent(q), b.Adjacent(q)
		if len(aAdj) != len(bAdj) {
			return false
		}
		for _, n := range aAdj {
			if !contains(bAdj, n) {
				return false
			}
		}
	}
	return true
}

func TestGateInvolutions(t *testing.T) {
	cases := []struct {
		name string
		fn   func(g *GraphSim, q int)
	}{
		{"H", func(g *GraphSim, q int) { g.H(q); g.H(q) }},
		{"X", func(g *GraphSim, q int) { g.X(q); g.X(q) }},
		{"Y", func(g *GraphSim, q int) { g.Y(q); g.Y(q) }},
		{"Z", func(g *GraphSim, q int) { g.Z(q); g.Z(q) }},
		{"S;Sdag", func(g *GraphSim, q int) { g.S(q); g.Sdag(q) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewSeeded(1, 7)
			before := g.VOP(0)
			c.fn(g, 0)
			if g.VOP(0) != before {
				t.Errorf("%s: vop changed from %s to %s", c.name, before, g.VOP(0))
			}
		})
	}
}

func TestCZSymmetric(t *testing.T) {
	g1 := NewSeeded(3, 11)
	g1.H(0)
	g1.H(1)
	g1.CZ(1, 2)
	g1.CZ(0, 1)

	g2 := NewSeeded(3, 11)
	g2.H(0)
	g2.H(1)
	g2.CZ(1, 2)
	g2.CZ(1, 0)

	if !sameShape(t, g1, g2) {
		t.Fatalf("CZ(a,b) and CZ(b,a) diverged:\n a=%+v\n b=%+v", g1.nodes, g2.nodes)
	}
}

func TestCZSelfInverse(t *testing.T) {
	g := NewSeeded(2, 5)
	g.H(0)
	g.H(1)
	before := g.Clone()

	g.CZ(0, 1)
	g.CZ(0, 1)

	if !sameShape(t, g, before) {
		t.Fatalf("CZ;CZ is not identity:\n before=%+v\n after=%+v", before.nodes, g.nodes)
	}
}

func TestCZDoubleRemovalLoadBearing(t *testing.T) {
	// Build a graph where control and target both have other neighbors and
	// non-trivial VOPs before CZ, so removeVOP runs on both endpoints (spec
	// 4.4 steps 3-4). With this setup control's VOP is already in Z after its
	// first pass, so the second pass (step 5) is not taken.
	g := NewSeeded(4, 3)
	g.H(0)
	g.H(1)
	g.H(2)
	g.H(3)
	g.CZ(0, 2)
	g.CZ(1, 3)
	g.S(0)
	g.S(1)

	// This must not panic and must leave both endpoints in-Z afterward is an
	// internal detail, but the externally visible invariant is that the
	// graph stays symmetric and loop-free.
	g.CZ(0, 1)

	for q := 0; q < g.Len(); q++ {
		for _, n := range g.Adjacent(q) {
			if n == q {
				t.Fatalf("self-loop at %d after CZ", q)
			}
			if !contains(g.Adjacent(n), q) {
				t.Fatalf("asymmetric edge %d-%d after CZ", q, n)
			}
		}
	}
}

func TestDeterministicXOnFreshPlus(t *testing.T) {
	g := NewSeeded(1, 42)
	g.H(0)
	if res := g.MeasureX(0); res != vop.PlusOne {
		t.Fatalf("measure_x on isolated |+> = %s, want +1", res)
	}
}

func TestDeterministicZOnFreshZero(t *testing.T) {
	g := NewSeeded(1, 42)
	if res := g.MeasureZ(0); res != vop.PlusOne {
		t.Fatalf("measure_z on fresh |0> = %s, want +1", res)
	}
}
