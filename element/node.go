package element

// DOF indices within a node, in the fixed (x, y, rotation) order used
// throughout assembly.
const (
	DOFX   = 0 // x translation
	DOFY   = 1 // y translation
	DOFRot = 2 // rotation about z
)

// NDOF is the number of degrees of freedom per plane-frame node.
const NDOF = 3

// Node is a frame joint with three degrees of freedom: x translation,
// y translation and rotation. The global DOF indices of node i are
// {3i, 3i+1, 3i+2} in that order; assembly depends on this numbering.
//
// Coordinates and ID are fixed at construction. Supports and loads may be
// set freely until the structure is solved; displacements and reactions are
// written back by the solver.
type Node struct {
	id   int
	x, y float64

	fixed [NDOF]bool // support flags, true = restrained

	force  [2]float64 // accumulated external nodal force (fx, fy)
	moment float64    // accumulated external nodal moment

	equiv [NDOF]float64 // equivalent loads folded in by adjacent elements

	disp     [NDOF]float64 // post-solve displacements
	reaction [NDOF]float64 // post-solve reactions, nonzero only at fixed DOFs
}

// NewNode creates a node at (x, y) with the given global ID. IDs are assigned
// sequentially from zero by whoever owns the node collection (normally
// structure.Structure); they determine the node's global DOF indices.
// All supports start free and all load and result state starts at zero.
func NewNode(id int, x, y float64) *Node {
	return &Node{id: id, x: x, y: y}
}

// ID returns the node's global identifier.
func (n *Node) ID() int { return n.id }

// Coord returns the node's position.
func (n *Node) Coord() (x, y float64) { return n.x, n.y }

// DOFs returns the node's three global DOF indices in (x, y, rotation) order.
func (n *Node) DOFs() [NDOF]int {
	base := NDOF * n.id
	return [NDOF]int{base, base + 1, base + 2}
}

// SetSupport restrains or frees each of the node's DOFs independently.
// May be called any number of times before solving.
func (n *Node) SetSupport(fixX, fixY, fixRot bool) {
	n.fixed = [NDOF]bool{fixX, fixY, fixRot}
}

// Fixed reports whether the given DOF (DOFX, DOFY or DOFRot) is restrained.
func (n *Node) Fixed(dof int) bool { return n.fixed[dof] }

// FullyFixed reports whether all three DOFs are restrained.
func (n *Node) FullyFixed() bool {
	return n.fixed[DOFX] && n.fixed[DOFY] && n.fixed[DOFRot]
}

// AddLoad accumulates an external nodal load. Repeated calls sum.
func (n *Node) AddLoad(fx, fy, m float64) {
	n.force[0] += fx
	n.force[1] += fy
	n.moment += m
}

// Load returns the accumulated external nodal load (excluding equivalent
// loads from distributed loads on adjacent elements).
func (n *Node) Load() (fx, fy, m float64) {
	return n.force[0], n.force[1], n.moment
}

// addEquivalent folds a distributed load's equivalent nodal contribution
// into the node. Called by BeamElement.ApplyDistributedLoad.
func (n *Node) addEquivalent(fx, fy, m float64) {
	n.equiv[DOFX] += fx
	n.equiv[DOFY] += fy
	n.equiv[DOFRot] += m
}

// AppliedLoad returns the total load per DOF entering global assembly:
// external nodal load plus accumulated equivalent loads.
func (n *Node) AppliedLoad() [NDOF]float64 {
	return [NDOF]float64{
		n.force[0] + n.equiv[DOFX],
		n.force[1] + n.equiv[DOFY],
		n.moment + n.equiv[DOFRot],
	}
}

// Displacement returns the node's post-solve displacements in
// (x, y, rotation) order. Zero before the first solve.
func (n *Node) Displacement() [NDOF]float64 { return n.disp }

// SetDisplacement stores the solved displacements. Written exactly once per
// solve by the structure; not intended for general use.
func (n *Node) SetDisplacement(d [NDOF]float64) { n.disp = d }

// Reaction returns the node's post-solve reactions. A reaction at a free DOF
// is always zero and has no physical meaning; only fixed DOFs carry one.
func (n *Node) Reaction() [NDOF]float64 { return n.reaction }

// SetReaction stores the solved reactions. Written by the structure after
// each solve; not intended for general use.
func (n *Node) SetReaction(r [NDOF]float64) { n.reaction = r }
