package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seralva/forcecurve/internal/curve"
)

var seriesPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// SavePNG renders the force curves as a line chart, one series per
// supply limit, and writes it to path (format from the extension, so
// .svg and .pdf also work).
func SavePNG(path, title string, t *curve.Table) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "cable speed (m/s)"
	p.Y.Label.Text = "force (lbf)"
	p.Y.Min = 0
	if t.MaxY > 0 {
		p.Y.Max = t.MaxY
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range t.Series() {
		pts := make(plotter.XYs, len(s.Values))
		for j, f := range s.Values {
			pts[j].X = t.Speeds[j]
			pts[j].Y = f
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = seriesPalette[i%len(seriesPalette)]
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
