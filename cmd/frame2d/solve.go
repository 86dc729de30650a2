package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/structlab/frame2d/diagram"
	"github.com/structlab/frame2d/model"
)

var solveFlags struct {
	outDir        string
	structurePNG  bool
	deformedPNG   bool
	axialPNG      bool
	shearPNG      bool
	momentPNG     bool
	ascii         bool
	deformedScale float64
	forceScale    float64
}

var solveCmd = &cobra.Command{
	Use:   "solve <model.yaml>",
	Short: "Solve a frame model and report reactions and displacements",
	Long: `Solve reads a YAML frame definition, runs the direct-stiffness solve and
prints support reactions and free-DOF displacements.

Model format:

  materials:
    steel: {e: 2.0e8, a: 4.0e-3, i: 1.5e-4}
  nodes:
    - {x: 0, y: 0, support: [true, true, true]}
    - {x: 4, y: 0, load: {fy: -10}}
    - {x: 8, y: 0, support: [false, true, false]}
  elements:
    - {from: 0, to: 1, material: steel}
    - {from: 1, to: 2, material: steel, distributed: {q1: -5}}

Diagram flags write PNG files into the --out directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := model.LoadFile(args[0])
		if err != nil {
			return err
		}
		st, err := def.Build()
		if err != nil {
			return err
		}
		logger.Debug("model loaded",
			"nodes", len(st.Nodes()), "elements", len(st.Elements()))

		res, err := st.Solve()
		if err != nil {
			return err
		}
		fmt.Println(res)

		if solveFlags.ascii {
			for _, e := range st.Elements() {
				for _, f := range []diagram.Force{diagram.Axial, diagram.Shear, diagram.Moment} {
					fmt.Println(diagram.ASCII(e, f, 40))
					fmt.Println()
				}
			}
		}

		saves := []struct {
			enabled bool
			name    string
			render  func(path string) error
		}{
			{solveFlags.structurePNG, "structure.png", func(p string) error {
				return diagram.SaveStructure(st, p)
			}},
			{solveFlags.deformedPNG, "deformed.png", func(p string) error {
				return diagram.SaveDeformed(st, solveFlags.deformedScale, p)
			}},
			{solveFlags.axialPNG, "axial.png", func(p string) error {
				return diagram.SaveForce(st, diagram.Axial, solveFlags.forceScale, p)
			}},
			{solveFlags.shearPNG, "shear.png", func(p string) error {
				return diagram.SaveForce(st, diagram.Shear, solveFlags.forceScale, p)
			}},
			{solveFlags.momentPNG, "moment.png", func(p string) error {
				return diagram.SaveForce(st, diagram.Moment, solveFlags.forceScale, p)
			}},
		}
		for _, sv := range saves {
			if !sv.enabled {
				continue
			}
			if err := os.MkdirAll(solveFlags.outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(solveFlags.outDir, sv.name)
			if err := sv.render(path); err != nil {
				return fmt.Errorf("rendering %s: %w", sv.name, err)
			}
			logger.Debug("diagram written", "path", path)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFlags.outDir, "out", "o", ".", "output directory for diagram files")
	solveCmd.Flags().BoolVar(&solveFlags.structurePNG, "structure", false, "write the structure sketch")
	solveCmd.Flags().BoolVar(&solveFlags.deformedPNG, "deformed", false, "write the deformed shape")
	solveCmd.Flags().BoolVar(&solveFlags.axialPNG, "axial", false, "write the axial force diagram")
	solveCmd.Flags().BoolVar(&solveFlags.shearPNG, "shear", false, "write the shear force diagram")
	solveCmd.Flags().BoolVar(&solveFlags.momentPNG, "moment", false, "write the bending moment diagram")
	solveCmd.Flags().BoolVar(&solveFlags.ascii, "ascii", false, "print ASCII force diagrams per element")
	solveCmd.Flags().Float64Var(&solveFlags.deformedScale, "deformed-scale", 250, "distortion scale for the deformed shape")
	solveCmd.Flags().Float64Var(&solveFlags.forceScale, "force-scale", 20, "ordinate scale divisor for force diagrams")

	rootCmd.AddCommand(solveCmd)
}
