package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSection writes the section diagram (outline, stress block, neutral
// axis, tension steel) to an image file. The format follows the file
// extension; png, svg and pdf are supported, anything else falls back to
// png.
func ExportSection(data Data, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section Analysis"
	p.X.Label.Text = fmt.Sprintf("Width (%s)", data.Units.Length)
	p.Y.Label.Text = fmt.Sprintf("Height (%s)", data.Units.Length)

	// Beam outline
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Width, Y: 0},
		{X: data.Width, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Whitney stress block
	blockPts := plotter.XYs{
		{X: 0, Y: data.Height},
		{X: data.Width, Y: data.Height},
		{X: data.Width, Y: data.Height - data.StressBlockDepth},
		{X: 0, Y: data.Height - data.StressBlockDepth},
	}
	block, err := plotter.NewPolygon(blockPts)
	if err != nil {
		return err
	}
	block.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	block.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(block)

	// Neutral axis
	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.1 * data.Width, Y: naY},
		{X: 1.1 * data.Width, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// Tension steel markers
	steel, err := plotter.NewScatter(plotter.XYs{
		{X: 0.3 * data.Width, Y: data.SteelY},
		{X: 0.5 * data.Width, Y: data.SteelY},
		{X: 0.7 * data.Width, Y: data.SteelY},
	})
	if err != nil {
		return err
	}
	steel.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	steel.GlyphStyle.Radius = vg.Points(6)
	steel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(steel)

	// Annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{1.12 * data.Width, naY, "N.A."},
		{1.12 * data.Width, data.Height - data.StressBlockDepth/2,
			fmt.Sprintf("a=%.1f %s", data.StressBlockDepth, data.Units.Length)},
		{0.5 * data.Width, data.SteelY - 0.05*data.Height,
			fmt.Sprintf("As=%.2f %s", data.SteelArea, data.Units.Area)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportStrain writes the linear strain distribution to an image file.
func ExportStrain(data Data, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = fmt.Sprintf("Depth from top (%s)", data.Units.Length)

	// Depth increases downward
	p.Y.Min = data.Height
	p.Y.Max = 0

	steelDepth := data.Height - data.SteelY

	strainLine, err := plotter.NewLine(plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: steelDepth},
	})
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{G: 100, A: 255}
	p.Add(strainLine)

	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: data.Height},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Yield strain reference on the tension side
	yieldLine, err := plotter.NewLine(plotter.XYs{
		{X: -data.EpsilonY, Y: 0},
		{X: -data.EpsilonY, Y: data.Height},
	})
	if err != nil {
		return err
	}
	yieldLine.LineStyle.Color = color.RGBA{R: 255, G: 165, A: 255}
	yieldLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(yieldLine)

	keyPoints, err := plotter.NewScatter(plotter.XYs{
		{X: data.EpsilonCU, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -data.EpsilonT, Y: steelDepth},
	})
	if err != nil {
		return err
	}
	keyPoints.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	p.Add(keyPoints)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return p.Save(6*vg.Inch, 8*vg.Inch, filename)
}
