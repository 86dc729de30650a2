package diagram

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/structlab/frame2d/element"
	"github.com/structlab/frame2d/structure"
)

const curveSamples = 50

var (
	memberColor  = color.Black
	loadColor    = color.RGBA{B: 200, A: 255}
	resultColor  = color.RGBA{R: 200, A: 255}
	supportColor = color.RGBA{B: 150, G: 80, A: 255}
)

// toGlobal maps a curve given in an element's local frame (x along the axis
// from the first node, y perpendicular) into global coordinates.
func toGlobal(e *element.BeamElement, xs, ys []float64) plotter.XYs {
	c, s := e.Direction()
	n1, _ := e.Nodes()
	x0, y0 := n1.Coord()
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{
			X: x0 + c*xs[i] - s*ys[i],
			Y: y0 + s*xs[i] + c*ys[i],
		}
	}
	return pts
}

func addMemberLine(p *plot.Plot, e *element.BeamElement, dashed bool) error {
	n1, n2 := e.Nodes()
	x1, y1 := n1.Coord()
	x2, y2 := n2.Coord()
	line, err := plotter.NewLine(plotter.XYs{{X: x1, Y: y1}, {X: x2, Y: y2}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = memberColor
	line.LineStyle.Width = vg.Points(2)
	if dashed {
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	p.Add(line)
	return nil
}

func addNodes(p *plot.Plot, s *structure.Structure) error {
	var joints, supports plotter.XYs
	for _, n := range s.Nodes() {
		x, y := n.Coord()
		joints = append(joints, plotter.XY{X: x, Y: y})
		if n.Fixed(element.DOFX) || n.Fixed(element.DOFY) || n.Fixed(element.DOFRot) {
			supports = append(supports, plotter.XY{X: x, Y: y})
		}
	}

	sc, err := plotter.NewScatter(joints)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Color = memberColor
	p.Add(sc)

	if len(supports) > 0 {
		sup, err := plotter.NewScatter(supports)
		if err != nil {
			return err
		}
		sup.GlyphStyle.Shape = draw.BoxGlyph{}
		sup.GlyphStyle.Radius = vg.Points(6)
		sup.GlyphStyle.Color = supportColor
		p.Add(sup)
	}
	return nil
}

// SaveStructure renders the undeformed frame with supports and distributed
// load shapes to a PNG (or any extension gonum/plot supports).
func SaveStructure(s *structure.Structure, path string) error {
	p := plot.New()
	p.Title.Text = "Structure"

	for _, e := range s.Elements() {
		if err := addMemberLine(p, e, false); err != nil {
			return err
		}
		if l := e.Load(); l != nil {
			xs, ys := l.Shape(e.Length(), curveSamples)
			line, err := plotter.NewLine(toGlobal(e, xs, ys))
			if err != nil {
				return err
			}
			line.LineStyle.Color = loadColor
			p.Add(line)
		}
	}
	if err := addNodes(p, s); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// SaveDeformed renders the deformed shape at the given distortion scale over
// the dashed undeformed frame. The transverse curve comes from the Hermite
// shape functions; the axial stretch interpolates the end displacements.
func SaveDeformed(s *structure.Structure, scale float64, path string) error {
	p := plot.New()
	p.Title.Text = "Deformed shape"

	for _, e := range s.Elements() {
		if err := addMemberLine(p, e, true); err != nil {
			return err
		}

		u := e.LocalDisplacements()
		xs := make([]float64, curveSamples)
		ys := make([]float64, curveSamples)
		x0 := scale * u.AtVec(0)
		x1 := e.Length() + scale*u.AtVec(3)
		for i := range xs {
			t := float64(i) / float64(curveSamples-1)
			xi := -1 + 2*t
			xs[i] = x0 + t*(x1-x0)
			ys[i] = scale * e.Deflection(xi)
		}
		line, err := plotter.NewLine(toGlobal(e, xs, ys))
		if err != nil {
			return err
		}
		line.LineStyle.Color = memberColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}
	if err := addNodes(p, s); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// SaveForce renders the selected internal-force diagram drawn normal to each
// element, closed to the member axis at both ends, at 1/scale ordinate
// distortion.
func SaveForce(s *structure.Structure, f Force, scale float64, path string) error {
	if scale == 0 {
		scale = 1
	}
	p := plot.New()
	p.Title.Text = f.String() + " diagram"

	for _, e := range s.Elements() {
		if err := addMemberLine(p, e, false); err != nil {
			return err
		}

		values := sampleForce(e, f, curveSamples)
		xs := make([]float64, 0, curveSamples+2)
		ys := make([]float64, 0, curveSamples+2)
		xs = append(xs, 0)
		ys = append(ys, 0)
		for i, v := range values {
			xs = append(xs, e.Length()*float64(i)/float64(curveSamples-1))
			// Moment diagrams are conventionally drawn on the tension side.
			if f == Moment {
				v = -v
			}
			ys = append(ys, v/scale)
		}
		xs = append(xs, e.Length())
		ys = append(ys, 0)

		line, err := plotter.NewLine(toGlobal(e, xs, ys))
		if err != nil {
			return err
		}
		line.LineStyle.Color = resultColor
		p.Add(line)
	}
	if err := addNodes(p, s); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
