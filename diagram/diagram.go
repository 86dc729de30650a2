// Package diagram renders solved frames: the structure sketch, the deformed
// shape from the element shape functions, and axial/shear/moment diagrams.
// PNG output uses gonum/plot; quick terminal output uses asciigraph. The
// package consumes only the exported sampling surface of the core, so it can
// be swapped out without touching the solver.
package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/structlab/frame2d/element"
)

// Force selects which internal-force distribution to render.
type Force int

const (
	Axial Force = iota
	Shear
	Moment
)

func (f Force) String() string {
	switch f {
	case Axial:
		return "axial"
	case Shear:
		return "shear"
	case Moment:
		return "moment"
	}
	return fmt.Sprintf("Force(%d)", int(f))
}

// sampleForce evaluates the selected internal force at n evenly spaced
// points of ξ ∈ [-1, 1].
func sampleForce(e *element.BeamElement, f Force, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	for i := range out {
		xi := -1 + 2*float64(i)/float64(n-1)
		switch f {
		case Axial:
			out[i] = e.AxialForce(xi)
		case Shear:
			out[i] = e.ShearForce(xi)
		default:
			out[i] = e.BendingMoment(xi)
		}
	}
	return out
}

// ASCII renders one element's internal-force diagram as a terminal sparkline.
// Call after solving; before a solve all sampled forces are zero.
func ASCII(e *element.BeamElement, f Force, samples int) string {
	n1, n2 := e.Nodes()
	values := sampleForce(e, f, samples)
	return asciigraph.Plot(values,
		asciigraph.Height(8),
		asciigraph.Caption(fmt.Sprintf("%s diagram, element %d-%d", f, n1.ID(), n2.ID())),
	)
}
