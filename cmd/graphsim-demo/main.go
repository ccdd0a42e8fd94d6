// Command graphsim-demo runs a fixed graph-state scenario many times
// directly against the graphsim package and prints an outcome histogram.
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/kegliz/graphstate/graphsim"
	"github.com/kegliz/graphstate/graphsim/vop"
)

func main() {
	name := flag.String("scenario", "bell", "scenario to run: bell, ghz3, cluster4")
	shots := flag.Int("shots", 1024, "number of repetitions")
	flag.Parse()

	run, qubits, ok := scenario(*name)
	if !ok {
		fmt.Printf("unknown scenario %q (want bell, ghz3, cluster4)\n", *name)
		return
	}

	hist := map[string]int{}
	for i := 0; i < *shots; i++ {
		g := graphsim.New(qubits)
		outcomes := run(g)
		hist[label(outcomes, qubits)]++
	}

	pretty(hist, *shots)
}

func scenario(name string) (func(g *graphsim.GraphSim) []vop.Result, int, bool) {
	switch name {
	case "bell":
		return func(g *graphsim.GraphSim) []vop.Result {
			g.H(0)
			g.H(1)
			g.CZ(0, 1)
			g.H(1)
			return []vop.Result{g.MeasureZ(0), g.MeasureZ(1)}
		}, 2, true
	case "ghz3":
		return func(g *graphsim.GraphSim) []vop.Result {
			g.H(0)
			g.H(1)
			g.H(2)
			g.CZ(0, 1)
			g.CZ(0, 2)
			g.H(1)
			g.H(2)
			return []vop.Result{g.MeasureZ(0), g.MeasureZ(1), g.MeasureZ(2)}
		}, 3, true
	case "cluster4":
		return func(g *graphsim.GraphSim) []vop.Result {
			for q := 0; q < 4; q++ {
				g.H(q)
			}
			g.CZ(0, 1)
			g.CZ(1, 2)
			g.CZ(2, 3)
			out := make([]vop.Result, 4)
			for q := 0; q < 4; q++ {
				out[q] = g.MeasureX(q)
			}
			return out
		}, 4, true
	default:
		return nil, 0, false
	}
}

func label(outcomes []vop.Result, qubits int) string {
	bits := make([]string, qubits)
	for i, r := range outcomes {
		if r == vop.PlusOne {
			bits[i] = "0"
		} else {
			bits[i] = "1"
		}
	}
	return strings.Join(bits, "")
}

func pretty(hist map[string]int, shots int) {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, state := range keys {
		count := hist[state]
		fmt.Printf("|%s>: %d counts (%.2f%%)\n", state, count, 100*float64(count)/float64(shots))
	}
}
