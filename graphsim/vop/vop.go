// Package vop implements the 24-element local Clifford group used to label
// the vertices of a graph-state stabilizer simulator. Every value is one
// coset of Pauli in the single-qubit Clifford group, written as a
// (letter, Pauli-prefix) pair: six letters A..F, four prefixes I/X/Y/Z.
package vop

import "fmt"

// VOP is one of the 24 local Clifford group elements. Its numeric value is
// letterIndex*4 + prefixIndex, matching the order the multiplication table
// is tabulated in.
type VOP uint8

const (
	IA VOP = iota
	XA
	YA
	ZA
	IB
	XB
	YB
	ZB
	IC
	XC
	YC
	ZC
	ID
	XD
	YD
	ZD
	IE
	XE
	YE
	ZE
	IF
	XF
	YF
	ZF
)

// NumVOP is the size of the local Clifford group.
const NumVOP = 24

// Axis is a Pauli measurement basis.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Result is the outcome of a Pauli measurement.
type Result int8

const (
	PlusOne  Result = 1
	MinusOne Result = -1
)

// Flip returns the other measurement result.
func (r Result) Flip() Result {
	return -r
}

func (r Result) String() string {
	if r == PlusOne {
		return "+1"
	}
	return "-1"
}

// Outcome is the record produced by a non-disturbing peek measurement.
type Outcome struct {
	Result Result
	Axis   Axis
}

// Generator-equivalent VOPs: the six handles exposed by the single-qubit
// gate API. Gates are applied as left-multiplication by these constants.
const (
	XGate    = XA
	YGate    = YA
	ZGate    = ZA
	HGate    = YC
	SGate    = YB
	SdagGate = XB
)

var names = [NumVOP]string{
	"IA", "XA", "YA", "ZA",
	"IB", "XB", "YB", "ZB",
	"IC", "XC", "YC", "ZC",
	"ID", "XD", "YD", "ZD",
	"IE", "XE", "YE", "ZE",
	"IF", "XF", "YF", "ZF",
}

func (v VOP) String() string {
	if int(v) < NumVOP {
		return names[v]
	}
	return fmt.Sprintf("VOP(%d)", uint8(v))
}

// Mul returns a*b, read from the 24x24 composition table. Associative;
// IA is the identity.
func Mul(a, b VOP) VOP {
	return mulTable[a][b]
}

// Adjoint returns a's inverse: Mul(a, a.Adjoint()) == IA.
func (v VOP) Adjoint() VOP {
	return adjTable[v]
}

// zInSet are the four VOPs that commute with Z on a CZ neighbor.
var zInSet = map[VOP]bool{IA: true, ZA: true, YB: true, XB: true}

// IsInZ reports whether v is one of the four Z-commuting VOPs.
func (v VOP) IsInZ() bool {
	return zInSet[v]
}

// BasisAfter returns the basis a measurement along axis is conjugated to
// after passing through v.
func BasisAfter(axis Axis, v VOP) Axis {
	return conjTable[axis][v]
}

// DeterministicAxis returns the axis an isolated node measures
// deterministically in.
func (v VOP) DeterministicAxis() Axis {
	return detmTable[v]
}

// letter identifies which of the six cosets A..F a VOP belongs to.
type letter uint8

const (
	letterA letter = iota
	letterB
	letterC
	letterD
	letterE
	letterF
)

func (v VOP) letter() letter {
	return letter(v / 4)
}

// CPhase returns the effect of CZ on two Z-commuting VOPs a (control) and b
// (target) given whether the edge between them is currently present.
func CPhase(hadEdge bool, a, b VOP) (edge bool, newA, newB VOP) {
	idx := 0
	if hadEdge {
		idx = 1
	}
	e := cphaseTable[idx][a][b]
	return e.Edge, e.Control, e.Target
}

// DecompStep is one letter of a VOP-removal decomposition word.
type DecompStep uint8

const (
	StepSelf  DecompStep = iota // local complement at this node (U)
	StepPivot                   // local complement at the chosen pivot neighbor (V)
)

// Decomp returns the short word over {StepSelf, StepPivot} that remove_vop
// replays to rewrite v into one of the four Z-commuting VOPs.
func (v VOP) Decomp() []DecompStep {
	return decompTable[v]
}

// StateStr returns the computational-basis label of an isolated node
// carrying this VOP: one of "+", "-", "+i", "-i", "1", "0". Diagnostic only.
func (v VOP) StateStr() string {
	return stateStrTable[v]
}
