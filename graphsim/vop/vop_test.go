package vop

import "testing"

func TestMulIdentity(t *testing.T) {
	for a := VOP(0); a < NumVOP; a++ {
		if got := Mul(IA, a); got != a {
			t.Errorf("Mul(IA, %s) = %s, want %s", a, got, a)
		}
		if got := Mul(a, IA); got != a {
			t.Errorf("Mul(%s, IA) = %s, want %s", a, got, a)
		}
	}
}

func TestMulAdjointIsIdentity(t *testing.T) {
	for a := VOP(0); a < NumVOP; a++ {
		if got := Mul(a, a.Adjoint()); got != IA {
			t.Errorf("Mul(%s, adjoint(%s)) = %s, want IA", a, a, got)
		}
	}
}

func TestAdjointInvolution(t *testing.T) {
	for a := VOP(0); a < NumVOP; a++ {
		if got := a.Adjoint().Adjoint(); got != a {
			t.Errorf("adjoint(adjoint(%s)) = %s, want %s", a, got, a)
		}
	}
}

func TestMulAssociative(t *testing.T) {
	for a := VOP(0); a < NumVOP; a++ {
		for b := VOP(0); b < NumVOP; b++ {
			for c := VOP(0); c < NumVOP; c++ {
				lhs := Mul(a, Mul(b, c))
				rhs := Mul(Mul(a, b), c)
				if lhs != rhs {
					t.Fatalf("associativity fails for (%s,%s,%s): %s != %s", a, b, c, lhs, rhs)
				}
			}
		}
	}
}

func TestIsInZMembership(t *testing.T) {
	want := map[VOP]bool{IA: true, ZA: true, YB: true, XB: true}
	for a := VOP(0); a < NumVOP; a++ {
		if got := a.IsInZ(); got != want[a] {
			t.Errorf("%s.IsInZ() = %v, want %v", a, got, want[a])
		}
	}
}

func TestDecompLengthInRange(t *testing.T) {
	// Applying the decomposition word is a statement about graph state, so
	// here we only check the table is total and each entry is non-empty and
	// short, per the spec's "length 1-5" bound.
	for a := VOP(0); a < NumVOP; a++ {
		d := a.Decomp()
		if len(d) == 0 || len(d) > 5 {
			t.Errorf("Decomp(%s) has length %d, want 1..5", a, len(d))
		}
	}
}

func TestGeneratorConstants(t *testing.T) {
	cases := map[string]VOP{
		"X":    XGate,
		"Y":    YGate,
		"Z":    ZGate,
		"H":    HGate,
		"S":    SGate,
		"Sdag": SdagGate,
	}
	want := map[string]VOP{"X": XA, "Y": YA, "Z": ZA, "H": YC, "S": YB, "Sdag": XB}
	for name, got := range cases {
		if got != want[name] {
			t.Errorf("%s gate = %s, want %s", name, got, want[name])
		}
	}
}

func TestDeterministicAxisTotal(t *testing.T) {
	for a := VOP(0); a < NumVOP; a++ {
		ax := a.DeterministicAxis()
		if ax != X && ax != Y && ax != Z {
			t.Errorf("DeterministicAxis(%s) = %v, not a valid axis", a, ax)
		}
	}
}

func TestBasisAfterTotal(t *testing.T) {
	for _, axis := range []Axis{X, Y, Z} {
		for a := VOP(0); a < NumVOP; a++ {
			got := BasisAfter(axis, a)
			if got != X && got != Y && got != Z {
				t.Errorf("BasisAfter(%v, %s) = %v, not a valid axis", axis, a, got)
			}
		}
	}
}

func TestCPhaseTotal(t *testing.T) {
	for _, hadEdge := range []bool{false, true} {
		for a := VOP(0); a < NumVOP; a++ {
			for b := VOP(0); b < NumVOP; b++ {
				_, newA, newB := CPhase(hadEdge, a, b)
				if newA >= NumVOP || newB >= NumVOP {
					t.Fatalf("CPhase(%v,%s,%s) produced out-of-range VOP", hadEdge, a, b)
				}
			}
		}
	}
}
