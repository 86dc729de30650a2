package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structlab/frame2d/model"
)

// The model snippet in the solve help text must stay a loadable, solvable
// frame with distinct members.
func TestSolveHelpModelExample(t *testing.T) {
	long := solveCmd.Long
	start := strings.Index(long, "  materials:")
	require.NotEqual(t, -1, start)
	end := strings.Index(long, "Diagram flags")
	require.Greater(t, end, start)

	var b strings.Builder
	for _, line := range strings.Split(long[start:end], "\n") {
		b.WriteString(strings.TrimPrefix(line, "  "))
		b.WriteByte('\n')
	}

	def, err := model.Load([]byte(b.String()))
	require.NoError(t, err)
	s, err := def.Build()
	require.NoError(t, err)
	_, err = s.Solve()
	require.NoError(t, err)

	require.Len(t, s.Elements(), 2)
	a1, b1 := s.Elements()[0].Nodes()
	a2, b2 := s.Elements()[1].Nodes()
	assert.NotEqual(t, [2]int{a1.ID(), b1.ID()}, [2]int{a2.ID(), b2.ID()})
}
