// Package model loads frame definitions from YAML and builds solvable
// structures from them. The file format mirrors the construction API: named
// materials, a node list with supports and nodal loads, and an element list
// referencing nodes by index and materials by name.
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/structlab/frame2d/element"
	"github.com/structlab/frame2d/structure"
)

// Definition is a complete YAML frame description.
type Definition struct {
	Materials map[string]MaterialDef `yaml:"materials"`
	Nodes     []NodeDef              `yaml:"nodes"`
	Elements  []ElementDef           `yaml:"elements"`
}

// MaterialDef holds linear-elastic section properties.
type MaterialDef struct {
	E float64 `yaml:"e"`
	A float64 `yaml:"a"`
	I float64 `yaml:"i"`
}

// NodeDef places a node, optionally with supports and a nodal load.
// Support is a three-entry list restraining (x, y, rotation) in order.
type NodeDef struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Support []bool   `yaml:"support,omitempty"`
	Load    *LoadDef `yaml:"load,omitempty"`
}

// LoadDef is an external nodal load.
type LoadDef struct {
	Fx float64 `yaml:"fx"`
	Fy float64 `yaml:"fy"`
	M  float64 `yaml:"m"`
}

// ElementDef connects two nodes by index with a named material, optionally
// carrying one trapezoidal distributed load. Q2 defaults to Q1 (uniform).
type ElementDef struct {
	From        int             `yaml:"from"`
	To          int             `yaml:"to"`
	Material    string          `yaml:"material"`
	Distributed *DistributedDef `yaml:"distributed,omitempty"`
}

// DistributedDef is a trapezoidal transverse load over an element.
type DistributedDef struct {
	Q1 float64  `yaml:"q1"`
	Q2 *float64 `yaml:"q2,omitempty"`
}

// Load parses a YAML frame definition.
func Load(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing frame definition: %w", err)
	}
	return &def, nil
}

// LoadFile reads and parses a YAML frame definition from disk.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading frame definition: %w", err)
	}
	return Load(data)
}

// Build constructs the structure described by the definition. Material,
// geometry and reference errors surface with the element-package sentinels
// (ErrInvalidParameter, ErrDegenerateElement, ErrInvalidArgument).
func (d *Definition) Build() (*structure.Structure, error) {
	materials := make(map[string]*element.Material, len(d.Materials))
	for name, md := range d.Materials {
		m, err := element.NewMaterial(md.E, md.A, md.I)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	s := structure.New()

	for i, nd := range d.Nodes {
		n := s.AddNode(nd.X, nd.Y)
		if len(nd.Support) > 0 {
			if len(nd.Support) != element.NDOF {
				return nil, fmt.Errorf("node %d: support needs %d entries, got %d: %w",
					i, element.NDOF, len(nd.Support), element.ErrInvalidArgument)
			}
			n.SetSupport(nd.Support[0], nd.Support[1], nd.Support[2])
		}
		if nd.Load != nil {
			n.AddLoad(nd.Load.Fx, nd.Load.Fy, nd.Load.M)
		}
	}

	nodes := s.Nodes()
	for i, ed := range d.Elements {
		if ed.From < 0 || ed.From >= len(nodes) || ed.To < 0 || ed.To >= len(nodes) {
			return nil, fmt.Errorf("element %d: node index out of range (%d nodes): %w",
				i, len(nodes), element.ErrInvalidArgument)
		}
		m, ok := materials[ed.Material]
		if !ok {
			return nil, fmt.Errorf("element %d: unknown material %q: %w",
				i, ed.Material, element.ErrInvalidArgument)
		}
		e, err := s.AddElement(nodes[ed.From], nodes[ed.To], m)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if ed.Distributed != nil {
			q2 := ed.Distributed.Q1
			if ed.Distributed.Q2 != nil {
				q2 = *ed.Distributed.Q2
			}
			if err := e.ApplyDistributedLoad(element.NewDistributedLoad(ed.Distributed.Q1, q2)); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
	}

	return s, nil
}
