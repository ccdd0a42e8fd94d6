package graphsim

import (
	"testing"

	"github.com/kegliz/graphstate/graphsim/vop"
)

func TestNewFreshQubitIsIsolatedZ(t *testing.T) {
	g := NewSeeded(3, 1)
	for q := 0; q < 3; q++ {
		if len(g.Adjacent(q)) != 0 {
			t.Errorf("qubit %d expected isolated, got %v", q, g.Adjacent(q))
		}
		if g.VOP(q) != vop.YC {
			t.Errorf("qubit %d expected vop YC, got %s", q, g.VOP(q))
		}
	}
}

func TestToggleEdgeSymmetric(t *testing.T) {
	g := NewSeeded(3, 1)
	if !g.ToggleEdge(0, 1) {
		t.Fatal("expected edge to exist after first toggle")
	}
	if !contains(g.Adjacent(0), 1) || !contains(g.Adjacent(1), 0) {
		t.Fatal("edge not symmetric after insert")
	}
	if g.ToggleEdge(0, 1) {
		t.Fatal("expected edge to be gone after second toggle")
	}
	if contains(g.Adjacent(0), 1) || contains(g.Adjacent(1), 0) {
		t.Fatal("edge not symmetric after removal")
	}
}

func TestNoSelfLoops(t *testing.T) {
	g := NewSeeded(2, 1)
	g.ToggleEdge(0, 1)
	for q := 0; q < 2; q++ {
		if contains(g.Adjacent(q), q) {
			t.Fatalf("qubit %d has a self-loop", q)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	g := NewSeeded(2, 1)
	g.H(0)
	g.CZ(0, 1)
	clone := g.Clone()

	clone.MeasureZ(0)

	if len(g.Adjacent(0)) == 0 {
		t.Fatal("original should still be entangled")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := NewSeeded(2, 1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	g.X(5)
}

func TestSameQubitCZPanics(t *testing.T) {
	g := NewSeeded(2, 1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for CZ(q, q)")
		}
	}()
	g.CZ(0, 0)
}
