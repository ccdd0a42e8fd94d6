package vop

// mulTable is the 24x24 Clifford-group multiplication table: mulTable[a][b] == a*b.
var mulTable = [24][24]VOP{
	{IA, XA, YA, ZA, IB, XB, YB, ZB, IC, XC, YC, ZC, ID, XD, YD, ZD, IE, XE, YE, ZE, IF, XF, YF, ZF},
	{XA, IA, ZA, YA, YB, ZB, IB, XB, ZC, YC, XC, IC, XD, ID, ZD, YD, ZE, YE, XE, IE, YF, ZF, IF, XF},
	{YA, ZA, IA, XA, XB, IB, ZB, YB, YC, ZC, IC, XC, ZD, YD, XD, ID, XE, IE, ZE, YE, ZF, YF, XF, IF},
	{ZA, YA, XA, IA, ZB, YB, XB, IB, XC, IC, ZC, YC, YD, ZD, ID, XD, YE, ZE, IE, XE, XF, IF, ZF, YF},
	{IB, XB, YB, ZB, IA, XA, YA, ZA, IF, XF, YF, ZF, IE, XE, YE, ZE, ID, XD, YD, ZD, IC, XC, YC, ZC},
	{XB, IB, ZB, YB, YA, ZA, IA, XA, ZF, YF, XF, IF, XE, IE, ZE, YE, ZD, YD, XD, ID, YC, ZC, IC, XC},
	{YB, ZB, IB, XB, XA, IA, ZA, YA, YF, ZF, IF, XF, ZE, YE, XE, IE, XD, ID, ZD, YD, ZC, YC, XC, IC},
	{ZB, YB, XB, IB, ZA, YA, XA, IA, XF, IF, ZF, YF, YE, ZE, IE, XE, YD, ZD, ID, XD, XC, IC, ZC, YC},
	{IC, XC, YC, ZC, IE, XE, YE, ZE, IA, XA, YA, ZA, IF, XF, YF, ZF, IB, XB, YB, ZB, ID, XD, YD, ZD},
	{XC, IC, ZC, YC, YE, ZE, IE, XE, ZA, YA, XA, IA, XF, IF, ZF, YF, ZB, YB, XB, IB, YD, ZD, ID, XD},
	{YC, ZC, IC, XC, XE, IE, ZE, YE, YA, ZA, IA, XA, ZF, YF, XF, IF, XB, IB, ZB, YB, ZD, YD, XD, ID},
	{ZC, YC, XC, IC, ZE, YE, XE, IE, XA, IA, ZA, YA, YF, ZF, IF, XF, YB, ZB, IB, XB, XD, ID, ZD, YD},
	{ID, XD, YD, ZD, IF, XF, YF, ZF, IE, XE, YE, ZE, IA, XA, YA, ZA, IC, XC, YC, ZC, IB, XB, YB, ZB},
	{XD, ID, ZD, YD, YF, ZF, IF, XF, ZE, YE, XE, IE, XA, IA, ZA, YA, ZC, YC, XC, IC, YB, ZB, IB, XB},
	{YD, ZD, ID, XD, XF, IF, ZF, YF, YE, ZE, IE, XE, ZA, YA, XA, IA, XC, IC, ZC, YC, ZB, YB, XB, IB},
	{ZD, YD, XD, ID, ZF, YF, XF, IF, XE, IE, ZE, YE, YA, ZA, IA, XA, YC, ZC, IC, XC, XB, IB, ZB, YB},
	{IE, XE, YE, ZE, IC, XC, YC, ZC, ID, XD, YD, ZD, IB, XB, YB, ZB, IF, XF, YF, ZF, IA, XA, YA, ZA},
	{XE, IE, ZE, YE, YC, ZC, IC, XC, ZD, YD, XD, ID, XB, IB, ZB, YB, ZF, YF, XF, IF, YA, ZA, IA, XA},
	{YE, ZE, IE, XE, XC, IC, ZC, YC, YD, ZD, ID, XD, ZB, YB, XB, IB, XF, IF, ZF, YF, ZA, YA, XA, IA},
	{ZE, YE, XE, IE, ZC, YC, XC, IC, XD, ID, ZD, YD, YB, ZB, IB, XB, YF, ZF, IF, XF, XA, IA, ZA, YA},
	{IF, XF, YF, ZF, ID, XD, YD, ZD, IB, XB, YB, ZB, IC, XC, YC, ZC, IA, XA, YA, ZA, IE, XE, YE, ZE},
	{XF, IF, ZF, YF, YD, ZD, ID, XD, ZB, YB, XB, IB, XC, IC, ZC, YC, ZA, YA, XA, IA, YE, ZE, IE, XE},
	{YF, ZF, IF, XF, XD, ID, ZD, YD, YB, ZB, IB, XB, ZC, YC, XC, IC, XA, IA, ZA, YA, ZE, YE, XE, IE},
	{ZF, YF, XF, IF, ZD, YD, XD, ID, XB, IB, ZB, YB, YC, ZC, IC, XC, YA, ZA, IA, XA, XE, IE, ZE, YE},
}

// adjTable gives the adjoint (inverse) of each VOP.
var adjTable = [24]VOP{
	IA, XA, YA, ZA, IB, YB, XB, ZB, IC, ZC, YC, XC, ID, XD, ZD, YD, IF, YF, ZF, XF, IE, ZE, XE, YE,
}

// detmTable gives the measurement axis a VOP measures deterministically when
// its node has no neighbours.
var detmTable = [24]Axis{
	X, X, X, X, Y, Y, Y, Y, Z, Z, Z, Z, X, X, X, X, Z, Z, Z, Z, Y, Y, Y, Y,
}

// conjTable[axis][vop] is the axis that a measurement along axis is conjugated
// to when passing through the local Clifford vop.
var conjTable = [3][24]Axis{
	{X, X, X, X, Y, Y, Y, Y, Z, Z, Z, Z, X, X, X, X, Y, Y, Y, Y, Z, Z, Z, Z},
	{Y, Y, Y, Y, X, X, X, X, Y, Y, Y, Y, Z, Z, Z, Z, Z, Z, Z, Z, X, X, X, X},
	{Z, Z, Z, Z, Z, Z, Z, Z, X, X, X, X, Y, Y, Y, Y, X, X, X, X, Y, Y, Y, Y},
}

// cphaseEntry is one resolved outcome of a CZ conjugation lookup: whether the
// edge exists after the gate, and the rewritten VOPs of both endpoints.
type cphaseEntry struct {
	Edge    bool
	Control VOP
	Target  VOP
}

// cphaseTable[hadEdge][control][target] resolves applying CZ between two
// Z-form vertices (both already reduced so their VOP is in the is-in-Z set),
// given whether the edge was already present.
var cphaseTable = [2][24][24]cphaseEntry{
	{
		{{true, IA, IA}, {true, IA, IA}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, XB}, {true, IA, XB}, {true, IA, YB}, {true, IA, YB}, {false, ZA, IC}, {false, ZA, IC}, {false, IA, YC}, {false, IA, YC}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, IA}, {true, IA, IA}, {true, IA, YB}, {true, IA, YB}, {true, IA, XB}, {true, IA, XB}, {false, IA, YC}, {false, IA, YC}, {false, ZA, IC}, {false, ZA, IC}},
		{{true, IA, IA}, {true, IA, IA}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, XB}, {true, IA, XB}, {true, IA, YB}, {true, IA, YB}, {false, YA, IC}, {false, YA, IC}, {false, IA, YC}, {false, IA, YC}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, IA}, {true, IA, IA}, {true, IA, YB}, {true, IA, YB}, {true, IA, XB}, {true, IA, XB}, {false, IA, YC}, {false, IA, YC}, {false, YA, IC}, {false, YA, IC}},
		{{true, YA, ZA}, {true, IA, XA}, {true, IA, YA}, {true, YA, IA}, {true, IA, IB}, {true, YA, YB}, {true, YA, XB}, {true, IA, ZB}, {false, IA, IC}, {false, IA, IC}, {false, YA, YC}, {false, YA, YC}, {true, IA, YA}, {true, IA, YA}, {true, IA, XA}, {true, IA, XA}, {true, IA, ZB}, {true, IA, ZB}, {true, IA, IB}, {true, IA, IB}, {false, YA, YC}, {false, YA, YC}, {false, IA, IC}, {false, IA, IC}},
		{{true, ZA, IA}, {true, IA, XA}, {true, IA, YA}, {true, ZA, ZA}, {true, IA, IB}, {true, ZA, XB}, {true, ZA, YB}, {true, IA, ZB}, {false, IA, IC}, {false, IA, IC}, {false, ZA, YC}, {false, ZA, YC}, {true, IA, YA}, {true, IA, YA}, {true, IA, XA}, {true, IA, XA}, {true, IA, ZB}, {true, IA, ZB}, {true, IA, IB}, {true, IA, IB}, {false, ZA, YC}, {false, ZA, YC}, {false, IA, IC}, {false, IA, IC}},
		{{true, IB, ZA}, {true, IB, ZA}, {true, IB, IA}, {true, IB, IA}, {true, IB, YB}, {true, IB, YB}, {true, IB, XB}, {true, IB, XB}, {false, YB, IC}, {false, YB, IC}, {false, IB, YC}, {false, IB, YC}, {true, IB, IA}, {true, IB, IA}, {true, IB, ZA}, {true, IB, ZA}, {true, IB, XB}, {true, IB, XB}, {true, IB, YB}, {true, IB, YB}, {false, IB, YC}, {false, IB, YC}, {false, YB, IC}, {false, YB, IC}},
		{{true, XB, IA}, {true, XB, IA}, {true, XB, ZA}, {true, XB, ZA}, {true, XB, XB}, {true, XB, XB}, {true, XB, YB}, {true, XB, YB}, {false, YB, IC}, {false, YB, IC}, {false, XB, YC}, {false, XB, YC}, {true, XB, ZA}, {true, XB, ZA}, {true, XB, IA}, {true, XB, IA}, {true, XB, YB}, {true, XB, YB}, {true, XB, XB}, {true, XB, XB}, {false, XB, YC}, {false, XB, YC}, {false, YB, IC}, {false, YB, IC}},
		{{true, YB, IA}, {true, XB, XA}, {true, XB, YA}, {true, YB, ZA}, {true, XB, IB}, {true, YB, XB}, {true, YB, YB}, {true, XB, ZB}, {false, XB, IC}, {false, XB, IC}, {false, YB, YC}, {false, YB, YC}, {true, XB, YA}, {true, XB, YA}, {true, XB, XA}, {true, XB, XA}, {true, XB, ZB}, {true, XB, ZB}, {true, XB, IB}, {true, XB, IB}, {false, YB, YC}, {false, YB, YC}, {false, XB, IC}, {false, XB, IC}},
		{{true, YB, IA}, {true, IB, YA}, {true, IB, XA}, {true, YB, ZA}, {true, IB, ZB}, {true, YB, XB}, {true, YB, YB}, {true, IB, IB}, {false, IB, IC}, {false, IB, IC}, {false, YB, YC}, {false, YB, YC}, {true, IB, XA}, {true, IB, XA}, {true, IB, YA}, {true, IB, YA}, {true, IB, IB}, {true, IB, IB}, {true, IB, ZB}, {true, IB, ZB}, {false, YB, YC}, {false, YB, YC}, {false, IB, IC}, {false, IB, IC}},
		{{false, IC, ZA}, {false, IC, YA}, {false, IC, IA}, {false, IC, IA}, {false, IC, YB}, {false, IC, YB}, {false, IC, XB}, {false, IC, IB}, {false, IC, IC}, {false, IC, IC}, {false, IC, YC}, {false, IC, YC}, {false, IC, IA}, {false, IC, IA}, {false, IC, YA}, {false, IC, YA}, {false, IC, IB}, {false, IC, IB}, {false, IC, YB}, {false, IC, YB}, {false, IC, YC}, {false, IC, YC}, {false, IC, IC}, {false, IC, IC}},
		{{false, IC, ZA}, {false, IC, YA}, {false, IC, IA}, {false, IC, IA}, {false, IC, YB}, {false, IC, YB}, {false, IC, XB}, {false, IC, IB}, {false, IC, IC}, {false, IC, IC}, {false, IC, YC}, {false, IC, YC}, {false, IC, IA}, {false, IC, IA}, {false, IC, YA}, {false, IC, YA}, {false, IC, IB}, {false, IC, IB}, {false, IC, YB}, {false, IC, YB}, {false, IC, YC}, {false, IC, YC}, {false, IC, IC}, {false, IC, IC}},
		{{false, YC, IA}, {false, YC, IA}, {false, YC, YA}, {false, YC, ZA}, {false, YC, IB}, {false, YC, XB}, {false, YC, YB}, {false, YC, YB}, {false, YC, IC}, {false, YC, IC}, {false, YC, YC}, {false, YC, YC}, {false, YC, YA}, {false, YC, YA}, {false, YC, IA}, {false, YC, IA}, {false, YC, YB}, {false, YC, YB}, {false, YC, IB}, {false, YC, IB}, {false, YC, YC}, {false, YC, YC}, {false, YC, IC}, {false, YC, IC}},
		{{false, YC, IA}, {false, YC, IA}, {false, YC, YA}, {false, YC, ZA}, {false, YC, IB}, {false, YC, XB}, {false, YC, YB}, {false, YC, YB}, {false, YC, IC}, {false, YC, IC}, {false, YC, YC}, {false, YC, YC}, {false, YC, YA}, {false, YC, YA}, {false, YC, IA}, {false, YC, IA}, {false, YC, YB}, {false, YC, YB}, {false, YC, IB}, {false, YC, IB}, {false, YC, YC}, {false, YC, YC}, {false, YC, IC}, {false, YC, IC}},
		{{true, YA, ZA}, {true, IA, XA}, {true, IA, YA}, {true, YA, IA}, {true, IA, IB}, {true, YA, YB}, {true, YA, XB}, {true, IA, ZB}, {false, IA, IC}, {false, IA, IC}, {false, YA, YC}, {false, YA, YC}, {true, IA, YA}, {true, IA, YA}, {true, IA, XA}, {true, IA, XA}, {true, IA, ZB}, {true, IA, ZB}, {true, IA, IB}, {true, IA, IB}, {false, YA, YC}, {false, YA, YC}, {false, IA, IC}, {false, IA, IC}},
		{{true, YA, ZA}, {true, IA, XA}, {true, IA, YA}, {true, YA, IA}, {true, IA, IB}, {true, YA, YB}, {true, YA, XB}, {true, IA, ZB}, {false, IA, IC}, {false, IA, IC}, {false, YA, YC}, {false, YA, YC}, {true, IA, YA}, {true, IA, YA}, {true, IA, XA}, {true, IA, XA}, {true, IA, ZB}, {true, IA, ZB}, {true, IA, IB}, {true, IA, IB}, {false, YA, YC}, {false, YA, YC}, {false, IA, IC}, {false, IA, IC}},
		{{true, IA, IA}, {true, IA, IA}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, XB}, {true, IA, XB}, {true, IA, YB}, {true, IA, YB}, {false, YA, IC}, {false, YA, IC}, {false, IA, YC}, {false, IA, YC}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, IA}, {true, IA, IA}, {true, IA, YB}, {true, IA, YB}, {true, IA, XB}, {true, IA, XB}, {false, IA, YC}, {false, IA, YC}, {false, YA, IC}, {false, YA, IC}},
		{{true, IA, IA}, {true, IA, IA}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, XB}, {true, IA, XB}, {true, IA, YB}, {true, IA, YB}, {false, YA, IC}, {false, YA, IC}, {false, IA, YC}, {false, IA, YC}, {true, IA, ZA}, {true, IA, ZA}, {true, IA, IA}, {true, IA, IA}, {true, IA, YB}, {true, IA, YB}, {true, IA, XB}, {true, IA, XB}, {false, IA, YC}, {false, IA, YC}, {false, YA, IC}, {false, YA, IC}},
		{{true, YB, IA}, {true, IB, YA}, {true, IB, XA}, {true, YB, ZA}, {true, IB, ZB}, {true, YB, XB}, {true, YB, YB}, {true, IB, IB}, {false, IB, IC}, {false, IB, IC}, {false, YB, YC}, {false, YB, YC}, {true, IB, XA}, {true, IB, XA}, {true, IB, YA}, {true, IB, YA}, {true, IB, IB}, {true, IB, IB}, {true, IB, ZB}, {true, IB, ZB}, {false, YB, YC}, {false, YB, YC}, {false, IB, IC}, {false, IB, IC}},
		{{true, YB, IA}, {true, IB, YA}, {true, IB, XA}, {true, YB, ZA}, {true, IB, ZB}, {true, YB, XB}, {true, YB, YB}, {true, IB, IB}, {false, IB, IC}, {false, IB, IC}, {false, YB, YC}, {false, YB, YC}, {true, IB, XA}, {true, IB, XA}, {true, IB, YA}, {true, IB, YA}, {true, IB, IB}, {true, IB, IB}, {true, IB, ZB}, {true, IB, ZB}, {false, YB, YC}, {false, YB, YC}, {false, IB, IC}, {false, IB, IC}},
		{{true, IB, ZA}, {true, IB, ZA}, {true, IB, IA}, {true, IB, IA}, {true, IB, YB}, {true, IB, YB}, {true, IB, XB}, {true, IB, XB}, {false, YB, IC}, {false, YB, IC}, {false, IB, YC}, {false, IB, YC}, {true, IB, IA}, {true, IB, IA}, {true, IB, ZA}, {true, IB, ZA}, {true, IB, XB}, {true, IB, XB}, {true, IB, YB}, {true, IB, YB}, {false, IB, YC}, {false, IB, YC}, {false, YB, IC}, {false, YB, IC}},
		{{true, IB, ZA}, {true, IB, ZA}, {true, IB, IA}, {true, IB, IA}, {true, IB, YB}, {true, IB, YB}, {true, IB, XB}, {true, IB, XB}, {false, YB, IC}, {false, YB, IC}, {false, IB, YC}, {false, IB, YC}, {true, IB, IA}, {true, IB, IA}, {true, IB, ZA}, {true, IB, ZA}, {true, IB, XB}, {true, IB, XB}, {true, IB, YB}, {true, IB, YB}, {false, IB, YC}, {false, IB, YC}, {false, YB, IC}, {false, YB, IC}},
		{{false, YC, IA}, {false, YC, IA}, {false, YC, YA}, {false, YC, ZA}, {false, YC, IB}, {false, YC, XB}, {false, YC, YB}, {false, YC, YB}, {false, YC, IC}, {false, YC, IC}, {false, YC, YC}, {false, YC, YC}, {false, YC, YA}, {false, YC, YA}, {false, YC, IA}, {false, YC, IA}, {false, YC, YB}, {false, YC, YB}, {false, YC, IB}, {false, YC, IB}, {false, YC, YC}, {false, YC, YC}, {false, YC, IC}, {false, YC, IC}},
		{{false, YC, IA}, {false, YC, IA}, {false, YC, YA}, {false, YC, ZA}, {false, YC, IB}, {false, YC, XB}, {false, YC, YB}, {false, YC, YB}, {false, YC, IC}, {false, YC, IC}, {false, YC, YC}, {false, YC, YC}, {false, YC, YA}, {false, YC, YA}, {false, YC, IA}, {false, YC, IA}, {false, YC, YB}, {false, YC, YB}, {false, YC, IB}, {false, YC, IB}, {false, YC, YC}, {false, YC, YC}, {false, YC, IC}, {false, YC, IC}},
		{{false, IC, ZA}, {false, IC, YA}, {false, IC, IA}, {false, IC, IA}, {false, IC, YB}, {false, IC, YB}, {false, IC, XB}, {false, IC, IB}, {false, IC, IC}, {false, IC, IC}, {false, IC, YC}, {false, IC, YC}, {false, IC, IA}, {false, IC, IA}, {false, IC, YA}, {false, IC, YA}, {false, IC, IB}, {false, IC, IB}, {false, IC, YB}, {false, IC, YB}, {false, IC, YC}, {false, IC, YC}, {false, IC, IC}, {false, IC, IC}},
		{{false, IC, ZA}, {false, IC, YA}, {false, IC, IA}, {false, IC, IA}, {false, IC, YB}, {false, IC, YB}, {false, IC, XB}, {false, IC, IB}, {false, IC, IC}, {false, IC, IC}, {false, IC, YC}, {false, IC, YC}, {false, IC, IA}, {false, IC, IA}, {false, IC, YA}, {false, IC, YA}, {false, IC, IB}, {false, IC, IB}, {false, IC, YB}, {false, IC, YB}, {false, IC, YC}, {false, IC, YC}, {false, IC, IC}, {false, IC, IC}},
	},
	{
		{{false, IA, IA}, {false, ZA, IA}, {false, ZA, YA}, {false, IA, ZA}, {false, ZA, IB}, {false, IA, XB}, {false, IA, YB}, {false, ZA, YB}, {true, XB, ZF}, {true, XB, YF}, {true, XB, XF}, {true, XB, IF}, {false, XB, YA}, {false, YB, YA}, {false, XB, IA}, {false, YB, IA}, {false, YB, YB}, {false, XB, YB}, {false, YB, IB}, {false, XB, IB}, {true, XB, YC}, {true, XB, ZC}, {true, XB, IC}, {true, XB, XC}},
		{{false, IA, ZA}, {false, YA, YA}, {false, YA, IA}, {false, IA, IA}, {false, YA, YB}, {false, IA, YB}, {false, IA, XB}, {false, YA, IB}, {true, IB, ZF}, {true, IB, YF}, {true, IB, XF}, {true, IB, IF}, {false, YB, IA}, {false, IB, IA}, {false, YB, YA}, {false, IB, YA}, {false, IB, IB}, {false, YB, IB}, {false, IB, YB}, {false, YB, YB}, {true, IB, YC}, {true, IB, ZC}, {true, IB, IC}, {true, IB, XC}},
		{{false, YA, ZA}, {false, IA, YA}, {false, IA, IA}, {false, YA, IA}, {false, IA, YB}, {false, YA, YB}, {false, YA, XB}, {false, IA, IB}, {true, IB, YF}, {true, IB, ZF}, {true, IB, IF}, {true, IB, XF}, {false, IB, IA}, {false, YB, IA}, {false, IB, YA}, {false, YB, YA}, {false, YB, IB}, {false, IB, IB}, {false, YB, YB}, {false, IB, YB}, {true, IB, ZC}, {true, IB, YC}, {true, IB, XC}, {true, IB, IC}},
		{{false, ZA, IA}, {false, IA, IA}, {false, IA, YA}, {false, ZA, ZA}, {false, IA, IB}, {false, ZA, XB}, {false, ZA, YB}, {false, IA, YB}, {true, XB, YF}, {true, XB, ZF}, {true, XB, IF}, {true, XB, XF}, {false, YB, YA}, {false, XB, YA}, {false, YB, IA}, {false, XB, IA}, {false, XB, YB}, {false, YB, YB}, {false, XB, IB}, {false, YB, IB}, {true, XB, ZC}, {true, XB, YC}, {true, XB, XC}, {true, XB, IC}},
		{{false, IB, ZA}, {false, YB, YA}, {false, YB, IA}, {false, IB, IA}, {false, YB, YB}, {false, IB, YB}, {false, IB, XB}, {false, YB, IB}, {true, IA, XF}, {true, IA, IF}, {true, IA, ZF}, {true, IA, YF}, {false, IA, IA}, {false, YA, IA}, {false, IA, YA}, {false, YA, YA}, {false, YA, IB}, {false, IA, IB}, {false, YA, YB}, {false, IA, YB}, {true, IA, IC}, {true, IA, XC}, {true, IA, YC}, {true, IA, ZC}},
		{{false, XB, IA}, {false, YB, IA}, {false, YB, YA}, {false, XB, ZA}, {false, YB, IB}, {false, XB, XB}, {false, XB, YB}, {false, YB, YB}, {true, IA, YF}, {true, IA, ZF}, {true, IA, IF}, {true, IA, XF}, {false, ZA, YA}, {false, IA, YA}, {false, ZA, IA}, {false, IA, IA}, {false, IA, YB}, {false, ZA, YB}, {false, IA, IB}, {false, ZA, IB}, {true, IA, ZC}, {true, IA, YC}, {true, IA, XC}, {true, IA, IC}},
		{{false, YB, IA}, {false, XB, IA}, {false, XB, YA}, {false, YB, ZA}, {false, XB, IB}, {false, YB, XB}, {false, YB, YB}, {false, XB, YB}, {true, IA, ZF}, {true, IA, YF}, {true, IA, XF}, {true, IA, IF}, {false, IA, YA}, {false, ZA, YA}, {false, IA, IA}, {false, ZA, IA}, {false, ZA, YB}, {false, IA, YB}, {false, ZA, IB}, {false, IA, IB}, {true, IA, YC}, {true, IA, ZC}, {true, IA, IC}, {true, IA, XC}},
		{{false, YB, ZA}, {false, IB, YA}, {false, IB, IA}, {false, YB, IA}, {false, IB, YB}, {false, YB, YB}, {false, YB, XB}, {false, IB, IB}, {true, IA, IF}, {true, IA, XF}, {true, IA, YF}, {true, IA, ZF}, {false, YA, IA}, {false, IA, IA}, {false, YA, YA}, {false, IA, YA}, {false, IA, IB}, {false, YA, IB}, {false, IA, YB}, {false, YA, YB}, {true, IA, XC}, {true, IA, IC}, {true, IA, ZC}, {true, IA, YC}},
		{{true, YF, YB}, {true, IF, XB}, {true, IF, YB}, {true, YF, XB}, {true, IF, ZA}, {true, YF, IA}, {true, YF, ZA}, {true, IF, IA}, {false, IA, IA}, {false, IA, YA}, {false, YA, YA}, {false, YA, IA}, {false, YB, YB}, {false, IB, IB}, {false, YB, IB}, {false, IB, YB}, {false, IB, YA}, {false, YB, IA}, {false, IB, IA}, {false, YB, YA}, {false, YA, IB}, {false, YA, YB}, {false, IA, YB}, {false, IA, IB}},
		{{true, YF, XB}, {true, IF, YB}, {true, IF, XB}, {true, YF, YB}, {true, IF, IA}, {true, YF, ZA}, {true, YF, IA}, {true, IF, ZA}, {false, YA, IA}, {false, YA, YA}, {false, IA, YA}, {false, IA, IA}, {false, IB, YB}, {false, YB, IB}, {false, IB, IB}, {false, YB, YB}, {false, YB, YA}, {false, IB, IA}, {false, YB, IA}, {false, IB, YA}, {false, IA, IB}, {false, IA, YB}, {false, YA, YB}, {false, YA, IB}},
		{{true, IF, YB}, {true, IF, ZB}, {true, IF, IB}, {true, IF, XB}, {true, IF, XA}, {true, IF, IA}, {true, IF, ZA}, {true, IF, YA}, {false, YA, YA}, {false, YA, IA}, {false, IA, IA}, {false, IA, YA}, {false, YB, IB}, {false, IB, YB}, {false, YB, YB}, {false, IB, IB}, {false, IB, IA}, {false, YB, YA}, {false, IB, YA}, {false, YB, IA}, {false, IA, YB}, {false, IA, IB}, {false, YA, IB}, {false, YA, YB}},
		{{true, IF, XB}, {true, IF, IB}, {true, IF, ZB}, {true, IF, YB}, {true, IF, YA}, {true, IF, ZA}, {true, IF, IA}, {true, IF, XA}, {false, IA, YA}, {false, IA, IA}, {false, YA, IA}, {false, YA, YA}, {false, IB, IB}, {false, YB, YB}, {false, IB, YB}, {false, YB, IB}, {false, YB, IA}, {false, IB, YA}, {false, YB, YA}, {false, IB, IA}, {false, YA, YB}, {false, YA, IB}, {false, IA, IB}, {false, IA, YB}},
		{{false, YA, XB}, {false, IA, YB}, {false, IA, IB}, {false, YA, YB}, {false, IA, IA}, {false, YA, ZA}, {false, YA, IA}, {false, IA, YA}, {false, YB, YB}, {false, YB, IB}, {false, IB, YB}, {false, IB, IB}, {true, IE, YE}, {true, IE, ZE}, {true, IE, IE}, {true, IE, XE}, {true, IE, ID}, {true, IE, XD}, {true, IE, YD}, {true, IE, ZD}, {false, IB, YA}, {false, IB, IA}, {false, YB, YA}, {false, YB, IA}},
		{{false, YA, YB}, {false, IA, IB}, {false, IA, YB}, {false, YA, XB}, {false, IA, YA}, {false, YA, IA}, {false, YA, ZA}, {false, IA, IA}, {false, IB, IB}, {false, IB, YB}, {false, YB, IB}, {false, YB, YB}, {true, IE, XE}, {true, IE, IE}, {true, IE, ZE}, {true, IE, YE}, {true, IE, ZD}, {true, IE, YD}, {true, IE, XD}, {true, IE, ID}, {false, YB, IA}, {false, YB, YA}, {false, IB, IA}, {false, IB, YA}},
		{{false, IA, XB}, {false, YA, YB}, {false, YA, IB}, {false, IA, YB}, {false, YA, IA}, {false, IA, ZA}, {false, IA, IA}, {false, YA, YA}, {false, IB, YB}, {false, IB, IB}, {false, YB, YB}, {false, YB, IB}, {true, IE, IE}, {true, IE, XE}, {true, IE, YE}, {true, IE, ZE}, {true, IE, YD}, {true, IE, ZD}, {true, IE, ID}, {true, IE, XD}, {false, YB, YA}, {false, YB, IA}, {false, IB, YA}, {false, IB, IA}},
		{{false, IA, YB}, {false, YA, IB}, {false, YA, YB}, {false, IA, XB}, {false, YA, YA}, {false, IA, IA}, {false, IA, ZA}, {false, YA, IA}, {false, YB, IB}, {false, YB, YB}, {false, IB, IB}, {false, IB, YB}, {true, IE, ZE}, {true, IE, YE}, {true, IE, XE}, {true, IE, IE}, {true, IE, XD}, {true, IE, ID}, {true, IE, ZD}, {true, IE, YD}, {false, IB, IA}, {false, IB, YA}, {false, YB, IA}, {false, YB, YA}},
		{{false, YB, YB}, {false, IB, IB}, {false, IB, YB}, {false, YB, XB}, {false, IB, YA}, {false, YB, IA}, {false, YB, ZA}, {false, IB, IA}, {false, YA, IB}, {false, YA, YB}, {false, IA, IB}, {false, IA, YB}, {true, ID, IE}, {true, ID, XE}, {true, ID, YE}, {true, ID, ZE}, {true, ID, YD}, {true, ID, ZD}, {true, ID, ID}, {true, ID, XD}, {false, IA, IA}, {false, IA, YA}, {false, YA, IA}, {false, YA, YA}},
		{{false, YB, XB}, {false, IB, YB}, {false, IB, IB}, {false, YB, YB}, {false, IB, IA}, {false, YB, ZA}, {false, YB, IA}, {false, IB, YA}, {false, IA, YB}, {false, IA, IB}, {false, YA, YB}, {false, YA, IB}, {true, ID, ZE}, {true, ID, YE}, {true, ID, XE}, {true, ID, IE}, {true, ID, XD}, {true, ID, ID}, {true, ID, ZD}, {true, ID, YD}, {false, YA, YA}, {false, YA, IA}, {false, IA, YA}, {false, IA, IA}},
		{{false, IB, YB}, {false, YB, IB}, {false, YB, YB}, {false, IB, XB}, {false, YB, YA}, {false, IB, IA}, {false, IB, ZA}, {false, YB, IA}, {false, IA, IB}, {false, IA, YB}, {false, YA, IB}, {false, YA, YB}, {true, ID, YE}, {true, ID, ZE}, {true, ID, IE}, {true, ID, XE}, {true, ID, ID}, {true, ID, XD}, {true, ID, YD}, {true, ID, ZD}, {false, YA, IA}, {false, YA, YA}, {false, IA, IA}, {false, IA, YA}},
		{{false, IB, XB}, {false, YB, YB}, {false, YB, IB}, {false, IB, YB}, {false, YB, IA}, {false, IB, ZA}, {false, IB, IA}, {false, YB, YA}, {false, YA, YB}, {false, YA, IB}, {false, IA, YB}, {false, IA, IB}, {true, ID, XE}, {true, ID, IE}, {true, ID, ZE}, {true, ID, YE}, {true, ID, ZD}, {true, ID, YD}, {true, ID, XD}, {true, ID, ID}, {false, IA, YA}, {false, IA, IA}, {false, YA, YA}, {false, YA, IA}},
		{{true, YC, XB}, {true, IC, YB}, {true, IC, XB}, {true, YC, YB}, {true, IC, IA}, {true, YC, ZA}, {true, YC, IA}, {true, IC, ZA}, {false, IB, YA}, {false, IB, IA}, {false, YB, IA}, {false, YB, YA}, {false, YA, IB}, {false, IA, YB}, {false, YA, YB}, {false, IA, IB}, {false, IA, IA}, {false, YA, YA}, {false, IA, YA}, {false, YA, IA}, {false, YB, YB}, {false, YB, IB}, {false, IB, IB}, {false, IB, YB}},
		{{true, YC, YB}, {true, IC, XB}, {true, IC, YB}, {true, YC, XB}, {true, IC, ZA}, {true, YC, IA}, {true, YC, ZA}, {true, IC, IA}, {false, YB, YA}, {false, YB, IA}, {false, IB, IA}, {false, IB, YA}, {false, IA, IB}, {false, YA, YB}, {false, IA, YB}, {false, YA, IB}, {false, YA, IA}, {false, IA, YA}, {false, YA, YA}, {false, IA, IA}, {false, IB, YB}, {false, IB, IB}, {false, YB, IB}, {false, YB, YB}},
		{{true, IC, XB}, {true, IC, IB}, {true, IC, ZB}, {true, IC, YB}, {true, IC, YA}, {true, IC, ZA}, {true, IC, IA}, {true, IC, XA}, {false, YB, IA}, {false, YB, YA}, {false, IB, YA}, {false, IB, IA}, {false, YA, YB}, {false, IA, IB}, {false, YA, IB}, {false, IA, YB}, {false, IA, YA}, {false, YA, IA}, {false, IA, IA}, {false, YA, YA}, {false, IB, IB}, {false, IB, YB}, {false, YB, YB}, {false, YB, IB}},
		{{true, IC, YB}, {true, IC, ZB}, {true, IC, IB}, {true, IC, XB}, {true, IC, XA}, {true, IC, IA}, {true, IC, ZA}, {true, IC, YA}, {false, IB, IA}, {false, IB, YA}, {false, YB, YA}, {false, YB, IA}, {false, IA, YB}, {false, YA, IB}, {false, IA, IB}, {false, YA, YB}, {false, YA, YA}, {false, IA, IA}, {false, YA, IA}, {false, IA, YA}, {false, YB, IB}, {false, YB, YB}, {false, IB, YB}, {false, IB, IB}},
	},
}

// decompTable[v] is the word over {U, V} that remove_vop replays to rewrite
// vop v into one of the four Z-commuting VOPs.
var decompTable = [24][]DecompStep{
	IA: {StepSelf, StepSelf, StepSelf, StepSelf},
	XA: {StepSelf, StepSelf},
	YA: {StepSelf, StepSelf, StepPivot, StepPivot},
	ZA: {StepPivot, StepPivot},
	IB: {StepSelf, StepSelf, StepPivot},
	XB: {StepPivot},
	YB: {StepPivot, StepPivot, StepPivot},
	ZB: {StepPivot, StepSelf, StepSelf},
	IC: {StepSelf, StepPivot, StepSelf},
	XC: {StepSelf, StepSelf, StepSelf, StepPivot, StepSelf},
	YC: {StepSelf, StepPivot, StepPivot, StepPivot, StepSelf},
	ZC: {StepSelf, StepPivot, StepSelf, StepSelf, StepSelf},
	ID: {StepPivot, StepPivot, StepSelf},
	XD: {StepSelf, StepPivot, StepPivot},
	YD: {StepSelf, StepSelf, StepSelf},
	ZD: {StepSelf},
	IE: {StepSelf, StepPivot, StepPivot, StepPivot},
	XE: {StepSelf, StepPivot, StepSelf, StepSelf},
	YE: {StepSelf, StepPivot},
	ZE: {StepSelf, StepSelf, StepSelf, StepPivot},
	IF: {StepPivot, StepSelf, StepSelf, StepSelf},
	XF: {StepPivot, StepPivot, StepPivot, StepSelf},
	YF: {StepPivot, StepSelf},
	ZF: {StepSelf, StepSelf, StepPivot, StepSelf},
}

// stateStrTable[v] is the computational-basis label of an isolated node
// carrying vop v (used for diagnostics and rendering, never parsed back).
var stateStrTable = [24]string{
	IA: "+", XA: "+", YD: "+", ZD: "+",
	YA: "-", ZA: "-", ID: "-", XD: "-",
	IB: "+i", XB: "+i", YE: "+i", ZE: "+i",
	YB: "-i", ZB: "-i", IE: "-i", XE: "-i",
	IC: "1", XC: "1", YF: "1", ZF: "1",
	YC: "0", ZC: "0", IF: "0", XF: "0",
}
