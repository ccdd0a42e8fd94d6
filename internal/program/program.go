// Package program represents a user-submitted graph-state program as JSON:
// a fixed qubit count and an ordered list of steps, each a set of gates
// applied to disjoint qubits, executed directly against graphsim.GraphSim.
// It supersedes the teacher's itsubaki/q-backed qprog package: the
// Program/Step/Gate shape and validation rules are kept, the execution
// backend is replaced.
package program

import (
	"fmt"

	"github.com/kegliz/graphstate/graphsim"
	"github.com/kegliz/graphstate/graphsim/vop"
)

type gateType string

const (
	HGate    gateType = "H"
	XGate    gateType = "X"
	YGate    gateType = "Y"
	ZGate    gateType = "Z"
	SGate    gateType = "S"
	SdagGate gateType = "Sdag"
	CZGate   gateType = "CZ"
	MeasureX gateType = "MX"
	MeasureY gateType = "MY"
	MeasureZ gateType = "MZ"
)

type (
	Program struct {
		NumOfQubits int    `json:"numofqubits"`
		Steps       []Step `json:"steps"`
	}

	Step struct {
		Gates []Gate `json:"gates"`
	}

	// Gate is one operation. Targets and Controls are distinct qubit
	// indices; CZGate is the only type that uses Controls.
	Gate struct {
		Type     gateType `json:"name"`
		Targets  []int    `json:"targets"`
		Controls []int    `json:"controls"`
	}

	// Result is the outcome of running a Program: the measurement result
	// of every qubit a Measure* gate targeted, keyed by qubit index.
	Result struct {
		Outcomes map[int]vop.Result
	}
)

func NewProgram(numOfQubits int) *Program {
	return &Program{NumOfQubits: numOfQubits, Steps: []Step{}}
}

func NewStep() *Step {
	return &Step{Gates: []Gate{}}
}

// AddStep appends step to the program after validating it is non-empty and
// in range.
func (p *Program) AddStep(step *Step) error {
	if len(step.Gates) == 0 {
		return fmt.Errorf("step is empty while adding step")
	}
	if step.maxIndex() >= p.NumOfQubits {
		return fmt.Errorf("qubit is out of range while adding step")
	}
	p.Steps = append(p.Steps, *step)
	return nil
}

func (s *Step) maxIndex() int {
	max := -1
	for _, gate := range s.Gates {
		for _, target := range gate.Targets {
			if target > max {
				max = target
			}
		}
		for _, control := range gate.Controls {
			if control > max {
				max = control
			}
		}
	}
	return max
}

func NewXGate(target int) *Gate    { return &Gate{Type: XGate, Targets: []int{target}} }
func NewYGate(target int) *Gate    { return &Gate{Type: YGate, Targets: []int{target}} }
func NewZGate(target int) *Gate    { return &Gate{Type: ZGate, Targets: []int{target}} }
func NewHGate(target int) *Gate    { return &Gate{Type: HGate, Targets: []int{target}} }
func NewSGate(target int) *Gate    { return &Gate{Type: SGate, Targets: []int{target}} }
func NewSdagGate(target int) *Gate { return &Gate{Type: SdagGate, Targets: []int{target}} }

func NewCZGate(control, target int) *Gate {
	return &Gate{Type: CZGate, Targets: []int{target}, Controls: []int{control}}
}

func NewMeasurement(target int, axis vop.Axis) *Gate {
	t := MeasureZ
	switch axis {
	case vop.X:
		t = MeasureX
	case vop.Y:
		t = MeasureY
	}
	return &Gate{Type: t, Targets: []int{target}}
}

// AddGate appends gate to step after checking its targets and controls
// don't collide with a qubit already used earlier in the same step.
func (step *Step) AddGate(gate *Gate) error {
	for _, g := range step.Gates {
		for _, t := range gate.Targets {
			for _, tt := range g.Targets {
				if t == tt {
					return fmt.Errorf("target qubit %d in gate is already used at step", t)
				}
			}
			for _, cc := range g.Controls {
				if t == cc {
					return fmt.Errorf("target qubit %d in gate is already used at step", t)
				}
			}
		}
		for _, c := range gate.Controls {
			for _, cc := range g.Controls {
				if c == cc {
					return fmt.Errorf("control qubit %d in gate is already used at step", c)
				}
			}
			for _, tt := range g.Targets {
				if c == tt {
					return fmt.Errorf("control qubit %d in gate is already used at step", c)
				}
			}
		}
	}
	step.Gates = append(step.Gates, *gate)
	return nil
}

// Check validates every step of the program.
func (p *Program) Check() error {
	for i, step := range p.Steps {
		if err := step.Check(p.NumOfQubits); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Check validates that step's gates target qubits within range and that no
// qubit is used by more than one gate in the step.
func (s *Step) Check(maxQubit int) error {
	if len(s.Gates) == 0 {
		return fmt.Errorf("step has no gates")
	}
	if max := s.maxIndex(); max >= maxQubit {
		return fmt.Errorf("qubit is out of range: %d", max)
	}
	seen := make([]int, 0)
	for i, gate := range s.Gates {
		for _, target := range gate.Targets {
			if containsInt(seen, target) {
				return fmt.Errorf("target qubit %d in gate %d is duplicated", target, i)
			}
			seen = append(seen, target)
		}
		for _, control := range gate.Controls {
			if containsInt(seen, control) {
				return fmt.Errorf("control qubit %d in gate %d is duplicated", control, i)
			}
			seen = append(seen, control)
		}
	}
	return nil
}

func containsInt(slice []int, val int) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// Run executes the program against a fresh graph-state simulator and
// returns the measurement outcomes it produced. Run does not call Check;
// callers should validate the program first.
func (p *Program) Run() (*Result, error) {
	g := graphsim.New(p.NumOfQubits)
	return p.RunOn(g)
}

// RunOn executes the program against the given simulator, in place.
func (p *Program) RunOn(g *graphsim.GraphSim) (*Result, error) {
	res := &Result{Outcomes: make(map[int]vop.Result)}
	for si, step := range p.Steps {
		for _, gate := range step.Gates {
			switch gate.Type {
			case HGate:
				g.H(gate.Targets[0])
			case XGate:
				g.X(gate.Targets[0])
			case YGate:
				g.Y(gate.Targets[0])
			case ZGate:
				g.Z(gate.Targets[0])
			case SGate:
				g.S(gate.Targets[0])
			case SdagGate:
				g.Sdag(gate.Targets[0])
			case CZGate:
				g.CZ(gate.Controls[0], gate.Targets[0])
			case MeasureX:
				res.Outcomes[gate.Targets[0]] = g.MeasureX(gate.Targets[0])
			case MeasureY:
				res.Outcomes[gate.Targets[0]] = g.MeasureY(gate.Targets[0])
			case MeasureZ:
				res.Outcomes[gate.Targets[0]] = g.MeasureZ(gate.Targets[0])
			default:
				return nil, fmt.Errorf("step %d: unknown gate type %q", si, gate.Type)
			}
		}
	}
	return res, nil
}
