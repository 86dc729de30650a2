package element

import (
	"fmt"
	"math"
)

// Material holds the linear-elastic and cross-section properties shared by
// beam elements. A single Material may be referenced by any number of
// elements; it is immutable after construction.
type Material struct {
	E float64 // elastic modulus
	A float64 // cross-section area
	I float64 // second moment of area

	EA float64 // axial stiffness product E*A
	EI float64 // bending stiffness product E*I
}

// NewMaterial validates the section properties and precomputes the stiffness
// products. All three values must be positive and finite.
func NewMaterial(e, a, i float64) (*Material, error) {
	props := []struct {
		name string
		val  float64
	}{
		{"E", e},
		{"A", a},
		{"I", i},
	}
	for _, p := range props {
		if p.val <= 0 || math.IsInf(p.val, 0) || math.IsNaN(p.val) {
			return nil, fmt.Errorf("material %s=%v must be positive and finite: %w",
				p.name, p.val, ErrInvalidParameter)
		}
	}
	return &Material{
		E:  e,
		A:  a,
		I:  i,
		EA: e * a,
		EI: e * i,
	}, nil
}
