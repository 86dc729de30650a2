// Package structure assembles plane frames from nodes and beam elements and
// solves them by the direct-stiffness method: global assembly, partition of
// the DOFs by support condition, a dense LU solve of the free partition, and
// recovery of support reactions.
package structure

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/structlab/frame2d/element"
)

// Structure aggregates the nodes and elements of a plane frame. It owns the
// sequential node-ID counter, so node numbering is deterministic per
// Structure and independent across instances.
//
// Solve may be called repeatedly; each call re-assembles from the current
// node and element state. Results stored in nodes and in the structure are
// current only until the next mutation; no staleness guard is kept.
type Structure struct {
	nodes    []*element.Node
	elements []*element.BeamElement

	// Derived artifacts of the most recent Solve.
	stiffness *mat.Dense
	loads     *mat.VecDense
	disp      *mat.VecDense
	free      []int
	fixed     []int
}

// New returns an empty structure.
func New() *Structure {
	return &Structure{}
}

// AddNode creates a node at (x, y), assigns it the next sequential ID and
// adds it to the structure.
func (s *Structure) AddNode(x, y float64) *element.Node {
	n := element.NewNode(len(s.nodes), x, y)
	s.nodes = append(s.nodes, n)
	return n
}

// AddElement creates a beam element between two nodes of this structure and
// adds it. Fails with ErrDegenerateElement for coincident nodes and
// ErrInvalidArgument for nil arguments.
func (s *Structure) AddElement(a, b *element.Node, m *element.Material) (*element.BeamElement, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("nil node: %w", element.ErrInvalidArgument)
	}
	if m == nil {
		return nil, fmt.Errorf("nil material: %w", element.ErrInvalidArgument)
	}
	e, err := element.NewBeamElement(a, b, m)
	if err != nil {
		return nil, err
	}
	s.elements = append(s.elements, e)
	return e, nil
}

// Nodes returns the structure's nodes in ID order.
func (s *Structure) Nodes() []*element.Node { return s.nodes }

// Elements returns the structure's elements in insertion order.
func (s *Structure) Elements() []*element.BeamElement { return s.elements }

// NumDOF returns the global DOF count, three per node.
func (s *Structure) NumDOF() int { return element.NDOF * len(s.nodes) }

// StiffnessMatrix returns the global stiffness matrix assembled by the most
// recent Solve, or nil before the first solve.
func (s *Structure) StiffnessMatrix() mat.Matrix {
	if s.stiffness == nil {
		return nil
	}
	return s.stiffness
}

// LoadVector returns the global load vector from the most recent Solve.
// At fixed DOFs the entries hold the computed reactions.
func (s *Structure) LoadVector() mat.Vector {
	if s.loads == nil {
		return nil
	}
	return s.loads
}

// DisplacementVector returns the global displacement vector from the most
// recent Solve.
func (s *Structure) DisplacementVector() mat.Vector {
	if s.disp == nil {
		return nil
	}
	return s.disp
}

// FreeDOFs returns the global indices of unrestrained DOFs from the most
// recent Solve, in node order then DOF-within-node order.
func (s *Structure) FreeDOFs() []int { return s.free }

// FixedDOFs returns the global indices of restrained DOFs from the most
// recent Solve, in node order then DOF-within-node order.
func (s *Structure) FixedDOFs() []int { return s.fixed }

// Solve assembles the global system and solves it:
//
//  1. scatter-add each element's global-frame stiffness Tᵗ·K·T into the
//     global matrix at its six DOF indices,
//  2. build the load vector from nodal plus equivalent loads and split the
//     DOFs into free and fixed sets,
//  3. solve K_LL·U_free = F_free by LU decomposition,
//  4. recover reactions R = K_FL·U_free − F_fixed,
//  5. scatter displacements and reactions back into the nodes.
//
// A singular or near-singular K_LL (under-restrained structure, isolated
// free node, zero supports) fails with ErrSingularSystem.
func (s *Structure) Solve() (*Result, error) {
	if len(s.nodes) == 0 {
		return nil, fmt.Errorf("structure has no nodes: %w", element.ErrInvalidArgument)
	}

	ngl := s.NumDOF()
	kg := mat.NewDense(ngl, ngl, nil)
	f := mat.NewVecDense(ngl, nil)
	u := mat.NewVecDense(ngl, nil)

	for _, e := range s.elements {
		ke := e.GlobalStiffness()
		dofs := e.DOFs()
		for i, gi := range dofs {
			for j, gj := range dofs {
				kg.Set(gi, gj, kg.At(gi, gj)+ke.At(i, j))
			}
		}
	}

	var free, fixed []int
	for _, n := range s.nodes {
		load := n.AppliedLoad()
		for d, gl := range n.DOFs() {
			if n.Fixed(d) {
				fixed = append(fixed, gl)
			} else {
				free = append(free, gl)
			}
			f.SetVec(gl, load[d])
		}
	}

	var ufree *mat.VecDense
	if len(free) > 0 {
		ufree = mat.NewVecDense(len(free), nil)
		kll := pick(kg, free, free)
		fl := pickVec(f, free)

		var lu mat.LU
		lu.Factorize(kll)
		if err := lu.SolveVecTo(ufree, false, fl); err != nil {
			return nil, fmt.Errorf("reduced system of %d equations is not solvable "+
				"(unstable or under-restrained structure): %w", len(free), element.ErrSingularSystem)
		}
	}

	reactions := make([]float64, len(fixed))
	if len(fixed) > 0 {
		r := mat.NewVecDense(len(fixed), nil)
		if len(free) > 0 {
			kfl := pick(kg, fixed, free)
			r.MulVec(kfl, ufree)
		}
		for i, gl := range fixed {
			reactions[i] = r.AtVec(i) - f.AtVec(gl)
			f.SetVec(gl, reactions[i])
		}
	}

	displacements := make([]float64, len(free))
	for i, gl := range free {
		displacements[i] = ufree.AtVec(i)
		u.SetVec(gl, displacements[i])
	}

	for _, n := range s.nodes {
		var d, r [element.NDOF]float64
		for i, gl := range n.DOFs() {
			d[i] = u.AtVec(gl)
			if n.Fixed(i) {
				r[i] = f.AtVec(gl)
			}
		}
		n.SetDisplacement(d)
		n.SetReaction(r)
	}

	s.stiffness = kg
	s.loads = f
	s.disp = u
	s.free = free
	s.fixed = fixed

	return &Result{
		FreeDOFs:      free,
		Displacements: displacements,
		FixedDOFs:     fixed,
		Reactions:     reactions,
	}, nil
}

// pick extracts the submatrix of m at the given row and column index sets.
func pick(m *mat.Dense, rows, cols []int) *mat.Dense {
	out := mat.NewDense(len(rows), len(cols), nil)
	for i, r := range rows {
		for j, c := range cols {
			out.Set(i, j, m.At(r, c))
		}
	}
	return out
}

// pickVec extracts the subvector of v at the given index set.
func pickVec(v *mat.VecDense, idx []int) *mat.VecDense {
	out := mat.NewVecDense(len(idx), nil)
	for i, k := range idx {
		out.SetVec(i, v.AtVec(k))
	}
	return out
}
