package element

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistributedLoad is a transverse load varying linearly along an element,
// from intensity Q1 at the first node to Q2 at the second. Over the element's
// local coordinate ξ ∈ [-1, 1] the intensity is q(ξ) = qm + dq·ξ/2 with
// qm = (Q1+Q2)/2 and dq = Q2−Q1. Immutable.
type DistributedLoad struct {
	Q1, Q2 float64

	qm, dq float64
}

// NewDistributedLoad creates a trapezoidal load with intensities q1 and q2 at
// the element's start and end.
func NewDistributedLoad(q1, q2 float64) *DistributedLoad {
	return &DistributedLoad{
		Q1: q1,
		Q2: q2,
		qm: (q1 + q2) / 2,
		dq: q2 - q1,
	}
}

// NewUniformLoad creates a load of constant intensity q.
func NewUniformLoad(q float64) *DistributedLoad {
	return NewDistributedLoad(q, q)
}

// Intensity returns the load value at local coordinate xi ∈ [-1, 1].
func (l *DistributedLoad) Intensity(xi float64) float64 {
	return l.qm + l.dq*xi/2
}

// EquivalentNodalLoads returns the consistent nodal load vector in local
// element coordinates for an element of length L, ordered
// (axial1, shear1, moment1, axial2, shear2, moment2):
//
//	[0, qm−dq/5, qm·L/6−dq·L/60, 0, qm+dq/5, −qm·L/6−dq·L/60] · L/2
//
// This is the closed-form consistent load for a cubic-Hermite beam under a
// linearly varying transverse load. Axial entries are zero: the load is
// transverse only.
func (l *DistributedLoad) EquivalentNodalLoads(length float64) *mat.VecDense {
	qm, dq := l.qm, l.dq
	half := length / 2
	return mat.NewVecDense(6, []float64{
		0,
		(qm - dq/5) * half,
		(qm*length/6 - dq*length/60) * half,
		0,
		(qm + dq/5) * half,
		(-qm*length/6 - dq*length/60) * half,
	})
}

// Shape samples the load profile over an element of length L for rendering.
// It returns n points with x ∈ [0, L] along the element axis and y the load
// intensity normalized by the largest absolute intensity (so the tallest
// ordinate is 1), negated to draw above the element for downward loads.
func (l *DistributedLoad) Shape(length float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	peak := math.Max(math.Abs(l.Q1), math.Abs(l.Q2))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := length * float64(i) / float64(n-1)
		xs[i] = x
		if peak != 0 {
			ys[i] = -l.Intensity(2*x/length-1) / peak
		}
	}
	return xs, ys
}
