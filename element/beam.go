package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// BeamElement is a two-node Euler-Bernoulli plane frame element with three
// DOFs per node. The local stiffness matrix and the local-global rotation
// transform are computed once at construction from the node coordinates and
// material; node coordinates must not change afterwards.
//
// Elements borrow their nodes: many elements may share a node, and the only
// node state an element mutates is the equivalent-load accumulator, when a
// distributed load is applied.
type BeamElement struct {
	n1, n2   *Node
	material *Material

	length   float64
	cos, sin float64 // direction cosines of the element axis
	angle    float64 // orientation from the global x-axis, degrees

	k *mat.Dense // 6×6 local stiffness matrix
	t *mat.Dense // 6×6 local-global rotation transform

	load *DistributedLoad // at most one per element
}

// NewBeamElement builds the element connecting n1 to n2 with the given
// material. Fails with ErrDegenerateElement if the nodes coincide.
func NewBeamElement(n1, n2 *Node, m *Material) (*BeamElement, error) {
	x1, y1 := n1.Coord()
	x2, y2 := n2.Coord()
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, fmt.Errorf("nodes %d and %d coincide at (%v, %v): %w",
			n1.ID(), n2.ID(), x1, y1, ErrDegenerateElement)
	}

	c, s := dx/length, dy/length

	e := &BeamElement{
		n1:       n1,
		n2:       n2,
		material: m,
		length:   length,
		cos:      c,
		sin:      s,
		angle:    math.Atan2(dy, dx) * 180 / math.Pi,
		t:        rotationTransform(c, s),
		k:        localStiffness(m, length),
	}
	return e, nil
}

// rotationTransform returns the 6×6 global-to-local transform, block-diagonal
// in 3×3 blocks: translations rotate by (c, s), rotation DOFs pass through.
func rotationTransform(c, s float64) *mat.Dense {
	return mat.NewDense(6, 6, []float64{
		c, s, 0, 0, 0, 0,
		-s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

// localStiffness returns the 6×6 local stiffness matrix: axial terms EA/L on
// the (0,3) block, Euler-Bernoulli bending terms 12EI/L³, 6EI/L², 4EI/L and
// 2EI/L on the (1,2,4,5) block with the standard sign pattern.
func localStiffness(m *Material, length float64) *mat.Dense {
	l := length
	al := m.A / l
	i12 := 12 * m.I / (l * l * l)
	i6 := 6 * m.I / (l * l)
	i4 := 4 * m.I / l
	i2 := 2 * m.I / l

	k := mat.NewDense(6, 6, []float64{
		al, 0, 0, -al, 0, 0,
		0, i12, i6, 0, -i12, i6,
		0, i6, i4, 0, -i6, i2,
		-al, 0, 0, al, 0, 0,
		0, -i12, -i6, 0, i12, -i6,
		0, i6, i2, 0, -i6, i4,
	})
	k.Scale(m.E, k)
	return k
}

// Nodes returns the element's end nodes in (start, end) order.
func (e *BeamElement) Nodes() (*Node, *Node) { return e.n1, e.n2 }

// Material returns the element's material.
func (e *BeamElement) Material() *Material { return e.material }

// Length returns the element length.
func (e *BeamElement) Length() float64 { return e.length }

// Angle returns the element orientation measured from the global x-axis,
// in degrees.
func (e *BeamElement) Angle() float64 { return e.angle }

// Direction returns the direction cosines (cos θ, sin θ) of the element axis.
func (e *BeamElement) Direction() (c, s float64) { return e.cos, e.sin }

// DOFs returns the element's six global DOF indices: the three DOFs of the
// first node followed by the three of the second, in that fixed order.
func (e *BeamElement) DOFs() [6]int {
	d1 := e.n1.DOFs()
	d2 := e.n2.DOFs()
	return [6]int{d1[0], d1[1], d1[2], d2[0], d2[1], d2[2]}
}

// LocalStiffness returns the element's 6×6 local stiffness matrix.
func (e *BeamElement) LocalStiffness() mat.Matrix { return e.k }

// Transform returns the element's 6×6 global-to-local rotation transform.
func (e *BeamElement) Transform() mat.Matrix { return e.t }

// GlobalStiffness returns the element stiffness in the global frame,
// Tᵗ·K·T, ready for scatter-add into the global matrix.
func (e *BeamElement) GlobalStiffness() *mat.Dense {
	var kt, kg mat.Dense
	kt.Mul(e.k, e.t)
	kg.Mul(e.t.T(), &kt)
	return &kg
}

// ApplyDistributedLoad attaches a distributed load to the element and folds
// its equivalent nodal loads, rotated to the global frame, into both end
// nodes. At most one load is attached; applying a second replaces the
// reference for rendering purposes but its equivalent loads still accumulate
// additively in the nodes, so replacing a load without rebuilding the nodes
// double-counts. Apply each element's load exactly once per configuration.
func (e *BeamElement) ApplyDistributedLoad(l *DistributedLoad) error {
	if l == nil {
		return fmt.Errorf("nil distributed load: %w", ErrInvalidArgument)
	}
	e.load = l

	local := l.EquivalentNodalLoads(e.length)
	var global mat.VecDense
	global.MulVec(e.t.T(), local)

	e.n1.addEquivalent(global.AtVec(0), global.AtVec(1), global.AtVec(2))
	e.n2.addEquivalent(global.AtVec(3), global.AtVec(4), global.AtVec(5))
	return nil
}

// Load returns the attached distributed load, or nil.
func (e *BeamElement) Load() *DistributedLoad { return e.load }

// LocalDisplacements returns the six nodal displacements of the element
// rotated into local coordinates. Before the first solve all displacements
// are zero, so the internal-force queries silently report zero rather than
// failing.
func (e *BeamElement) LocalDisplacements() *mat.VecDense {
	d1 := e.n1.Displacement()
	d2 := e.n2.Displacement()
	global := mat.NewVecDense(6, []float64{
		d1[0], d1[1], d1[2],
		d2[0], d2[1], d2[2],
	})
	var local mat.VecDense
	local.MulVec(e.t, global)
	return &local
}

// ShapeFunctions returns the cubic Hermite shape functions at local
// coordinate xi ∈ [-1, 1], mapping the six local DOFs to transverse
// displacement.
func (e *BeamElement) ShapeFunctions(xi float64) [6]float64 {
	l := e.length
	xi2 := xi * xi
	xi3 := xi2 * xi
	return [6]float64{
		0,
		0.5 - 0.75*xi + 0.25*xi3,
		l / 8 * (1 - xi - xi2 + xi3),
		0,
		0.5 + 0.75*xi - 0.25*xi3,
		l / 8 * (-1 - xi + xi2 + xi3),
	}
}

// Deflection returns the transverse displacement at xi ∈ [-1, 1]
// interpolated from the nodal solution via the Hermite shape functions,
// in local coordinates.
func (e *BeamElement) Deflection(xi float64) float64 {
	n := e.ShapeFunctions(xi)
	u := e.LocalDisplacements()
	var w float64
	for i, ni := range n {
		w += ni * u.AtVec(i)
	}
	return w
}

// AxialForce returns the axial force at xi ∈ [-1, 1]. It is constant along
// the element: distributed axial loads are not supported.
func (e *BeamElement) AxialForce(xi float64) float64 {
	u := e.LocalDisplacements()
	return e.material.EA * (u.AtVec(3) - u.AtVec(0)) / e.length
}

// BendingMoment returns the bending moment at xi ∈ [-1, 1] from the second
// derivative of the Hermite shape functions.
//
// Like ShearForce, this is the homogeneous (nodal-displacement-driven) part
// only: the variation a distributed load adds between the nodes is not
// included. Downstream diagram rendering relies on this profile.
func (e *BeamElement) BendingMoment(xi float64) float64 {
	l := e.length
	bxx := [6]float64{
		0,
		3 * xi / 2,
		l * (-2 + 6*xi) / 8,
		0,
		-3 * xi / 2,
		l * (2 + 6*xi) / 8,
	}
	u := e.LocalDisplacements()
	var sum float64
	for i, b := range bxx {
		sum += b * u.AtVec(i)
	}
	return 4 * e.material.EI * sum / (l * l)
}

// ShearForce returns the shear force from the third derivative of the
// Hermite shape functions. Cubic shape functions differentiated three times
// are constant, so the homogeneous shear is element-constant; the
// distributed-load contribution to shear variation is not included.
func (e *BeamElement) ShearForce(xi float64) float64 {
	l := e.length
	bxxx := [6]float64{
		0,
		1.5,
		l * 3 / 4,
		0,
		-1.5,
		l * 3 / 4,
	}
	u := e.LocalDisplacements()
	var sum float64
	for i, b := range bxxx {
		sum += b * u.AtVec(i)
	}
	return 8 * e.material.EI * sum / (l * l * l)
}
