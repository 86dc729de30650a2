package structure

import (
	"fmt"
	"strings"

	"github.com/structlab/frame2d/element"
)

// Result holds the outcome of a solve: displacements at the free DOFs and
// reactions at the fixed DOFs, each paired with its global DOF indices in
// node order then DOF-within-node order.
type Result struct {
	FreeDOFs      []int
	Displacements []float64
	FixedDOFs     []int
	Reactions     []float64
}

var dofNames = [element.NDOF]string{"ux", "uy", "rz"}

// String renders the reactions and displacements as a plain-text report.
func (r *Result) String() string {
	var sb strings.Builder

	sb.WriteString("Support reactions:\n")
	if len(r.FixedDOFs) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, gl := range r.FixedDOFs {
		sb.WriteString(fmt.Sprintf("  node %d %s: % 12.4f\n",
			gl/element.NDOF, dofNames[gl%element.NDOF], r.Reactions[i]))
	}

	sb.WriteString("\nDisplacements:\n")
	if len(r.FreeDOFs) == 0 {
		sb.WriteString("  (none)\n")
	}
	for i, gl := range r.FreeDOFs {
		sb.WriteString(fmt.Sprintf("  node %d %s: % 12.6e\n",
			gl/element.NDOF, dofNames[gl%element.NDOF], r.Displacements[i]))
	}

	return sb.String()
}
