// Package graphrender draws a graphsim.GraphSim's current graph and VOP
// labeling as a PNG, for diagnostics and the demo scenarios. Vertices are
// placed on a circle; edges are straight lines; each vertex is labeled with
// its VOP's name (see vop.VOP.String), e.g. "YC".
package graphrender

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/kegliz/graphstate/graphsim"
)

// Renderer draws a graph state on a square canvas of Cell*(n+2) pixels per
// side, so the canvas grows with the qubit count n. Cell scales the
// overall canvas the way renderer.GGPNG's Cell scales circuit diagrams.
type Renderer struct {
	Cell float64
}

// New returns a Renderer with the given cell size in pixels.
func New(cellPx int) Renderer {
	return Renderer{Cell: float64(cellPx)}
}

// Render draws g's current graph and VOP labels to a PNG image. Vertices
// are arranged evenly on a circle in qubit order.
func (r Renderer) Render(g *graphsim.GraphSim) (image.Image, error) {
	n := g.Len()
	if n <= 0 {
		return nil, fmt.Errorf("graphrender: empty graph")
	}

	size := r.Cell * float64(n+2)
	dc := gg.NewContext(int(size), int(size))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx, cy := size/2, size/2
	radius := size/2 - r.Cell

	positions := make([]struct{ x, y float64 }, n)
	for q := 0; q < n; q++ {
		theta := 2 * math.Pi * float64(q) / float64(n)
		positions[q].x = cx + radius*math.Cos(theta)
		positions[q].y = cy + radius*math.Sin(theta)
	}

	// edges, each drawn once from the lower-indexed endpoint
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	for q := 0; q < n; q++ {
		for _, nb := range g.Adjacent(q) {
			if nb <= q {
				continue
			}
			dc.DrawLine(positions[q].x, positions[q].y, positions[nb].x, positions[nb].y)
			dc.Stroke()
		}
	}

	// vertices, drawn over edges
	vertexRadius := r.Cell * 0.3
	for q := 0; q < n; q++ {
		p := positions[q]
		dc.SetRGB(1, 1, 1)
		dc.DrawCircle(p.x, p.y, vertexRadius)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1.5)
		dc.Stroke()
		dc.DrawStringAnchored(g.VOP(q).String(), p.x, p.y, 0.5, 0.5)
	}

	return dc.Image(), nil
}
