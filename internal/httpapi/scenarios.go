package httpapi

import (
	"fmt"

	"github.com/kegliz/graphstate/graphsim"
	"github.com/kegliz/graphstate/graphsim/vop"
)

// scenario builds a fixed n-qubit graph state and measures a fixed set of
// qubits in a fixed basis. The run endpoint returns only per-qubit
// measurement outcomes; the render endpoint returns a drawing of the
// pre-measurement graph with its VOP names.
type scenario struct {
	qubits  int
	build   func(g *graphsim.GraphSim)
	measure func(g *graphsim.GraphSim) map[int]vop.Result
}

var scenarios = map[string]scenario{
	"bell": {
		qubits: 2,
		build: func(g *graphsim.GraphSim) {
			g.H(0)
			g.H(1)
			g.CZ(0, 1)
			g.H(1)
		},
		measure: func(g *graphsim.GraphSim) map[int]vop.Result {
			return map[int]vop.Result{0: g.MeasureZ(0), 1: g.MeasureZ(1)}
		},
	},
	"ghz3": {
		qubits: 3,
		build: func(g *graphsim.GraphSim) {
			g.H(0)
			g.H(1)
			g.H(2)
			g.CZ(0, 1)
			g.CZ(0, 2)
			g.H(1)
			g.H(2)
		},
		measure: func(g *graphsim.GraphSim) map[int]vop.Result {
			return map[int]vop.Result{0: g.MeasureZ(0), 1: g.MeasureZ(1), 2: g.MeasureZ(2)}
		},
	},
	"cluster4": {
		qubits: 4,
		build: func(g *graphsim.GraphSim) {
			for q := 0; q < 4; q++ {
				g.H(q)
			}
			g.CZ(0, 1)
			g.CZ(1, 2)
			g.CZ(2, 3)
		},
		measure: func(g *graphsim.GraphSim) map[int]vop.Result {
			out := make(map[int]vop.Result, 4)
			for q := 0; q < 4; q++ {
				out[q] = g.MeasureX(q)
			}
			return out
		},
	},
}

// buildGraph constructs the named scenario's graph state (pre-measurement)
// for rendering. seed == 0 picks a process-random seed.
func buildGraph(name string, seed int64) (*graphsim.GraphSim, error) {
	s, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	var g *graphsim.GraphSim
	if seed == 0 {
		g = graphsim.New(s.qubits)
	} else {
		g = graphsim.NewSeeded(s.qubits, seed)
	}
	s.build(g)
	return g, nil
}

// runScenario runs the named scenario once with the given seed and returns
// the per-qubit measurement outcomes. seed == 0 picks a process-random seed.
func runScenario(name string, seed int64) ([]QubitResult, error) {
	s, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}

	var g *graphsim.GraphSim
	if seed == 0 {
		g = graphsim.New(s.qubits)
	} else {
		g = graphsim.NewSeeded(s.qubits, seed)
	}

	s.build(g)
	outcomes := s.measure(g)

	results := make([]QubitResult, 0, len(outcomes))
	for q := 0; q < s.qubits; q++ {
		r, ok := outcomes[q]
		if !ok {
			continue
		}
		results = append(results, QubitResult{Qubit: q, Result: r.String()})
	}
	return results, nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	return names
}
