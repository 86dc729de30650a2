package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structlab/frame2d/element"
)

const cantileverYAML = `
materials:
  steel: {e: 2.0e8, a: 4.0e-3, i: 1.5e-4}
nodes:
  - {x: 0, y: 0, support: [true, true, true]}
  - {x: 4, y: 0, load: {fy: -10}}
elements:
  - {from: 0, to: 1, material: steel}
`

func TestLoadAndSolveCantilever(t *testing.T) {
	def, err := Load([]byte(cantileverYAML))
	require.NoError(t, err)
	require.Len(t, def.Nodes, 2)
	require.Len(t, def.Elements, 1)

	s, err := def.Build()
	require.NoError(t, err)

	res, err := s.Solve()
	require.NoError(t, err)

	tip := s.Nodes()[1].Displacement()
	assert.InDelta(t, -10.0*64/(3*3e4), tip[element.DOFY], 1e-12)
	assert.InDeltaSlice(t, []float64{0, 10, 40}, res.Reactions, 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cantileverYAML), 0o644))

	def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, def.Materials, 1)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("nodes: [not: {valid"))
	assert.Error(t, err)
}

func TestDistributedLoadDefaultsToUniform(t *testing.T) {
	def, err := Load([]byte(`
materials:
  steel: {e: 2.0e8, a: 4.0e-3, i: 1.5e-4}
nodes:
  - {x: 0, y: 0, support: [true, true, false]}
  - {x: 4, y: 0, support: [false, true, false]}
elements:
  - {from: 0, to: 1, material: steel, distributed: {q1: -5}}
`))
	require.NoError(t, err)

	s, err := def.Build()
	require.NoError(t, err)

	l := s.Elements()[0].Load()
	require.NotNil(t, l)
	assert.Equal(t, -5.0, l.Q1)
	assert.Equal(t, -5.0, l.Q2)

	res, err := s.Solve()
	require.NoError(t, err)
	// qL/2 at each support.
	assert.InDelta(t, 10, res.Reactions[1], 1e-9)
	assert.InDelta(t, 10, res.Reactions[2], 1e-9)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			"unknown material",
			`
materials:
  steel: {e: 1, a: 1, i: 1}
nodes:
  - {x: 0, y: 0}
  - {x: 1, y: 0}
elements:
  - {from: 0, to: 1, material: concrete}
`,
			element.ErrInvalidArgument,
		},
		{
			"node index out of range",
			`
materials:
  steel: {e: 1, a: 1, i: 1}
nodes:
  - {x: 0, y: 0}
elements:
  - {from: 0, to: 3, material: steel}
`,
			element.ErrInvalidArgument,
		},
		{
			"bad support shape",
			`
materials:
  steel: {e: 1, a: 1, i: 1}
nodes:
  - {x: 0, y: 0, support: [true, true]}
`,
			element.ErrInvalidArgument,
		},
		{
			"non-physical material",
			`
materials:
  steel: {e: -1, a: 1, i: 1}
nodes:
  - {x: 0, y: 0}
`,
			element.ErrInvalidParameter,
		},
		{
			"coincident element nodes",
			`
materials:
  steel: {e: 1, a: 1, i: 1}
nodes:
  - {x: 0, y: 0}
  - {x: 0, y: 0}
elements:
  - {from: 0, to: 1, material: steel}
`,
			element.ErrDegenerateElement,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Load([]byte(tc.yaml))
			require.NoError(t, err)

			s, err := def.Build()
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
