//Package puckplot renders the standard summary plots of a puckering batch: a
//histogram of the total amplitudes and a polar-style scatter of the
//(theta, phi) pairs with the landmark positions of the five conformational
//families marked.
package puckplot

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	pucker "github.com/dkplab/gopucker"
	"github.com/dkplab/gopucker/batch"
)

//Fixed per-family marker styles, mirroring the published figures.
type markerStyle struct {
	label string
	shape draw.GlyphDrawer
	color color.RGBA
}

var markers = []markerStyle{
	{pucker.Chair, draw.CircleGlyph{}, color.RGBA{R: 200, A: 255}},
	{pucker.Boat, draw.BoxGlyph{}, color.RGBA{G: 150, A: 255}},
	{pucker.TwistBoat, draw.TriangleGlyph{}, color.RGBA{R: 230, G: 140, A: 255}},
	{pucker.HalfChair, draw.PyramidGlyph{}, color.RGBA{R: 128, B: 128, A: 255}},
	{pucker.HalfBoat, draw.CrossGlyph{}, color.RGBA{B: 200, A: 255}},
}

//Landmark angles per family, with the full 30-degree phi grid for the
//families whose phi is unconstrained.
var landmarks = map[string]struct{ thetas, phis []float64 }{
	pucker.Chair:     {[]float64{0, 180}, phiGrid()},
	pucker.Boat:      {[]float64{90}, []float64{0, 60, 120, 180, 240, 300}},
	pucker.TwistBoat: {[]float64{90}, []float64{30, 90, 150, 210, 270, 330}},
	pucker.HalfChair: {[]float64{30, 150}, phiGrid()},
	pucker.HalfBoat:  {[]float64{60, 120}, phiGrid()},
}

func phiGrid() []float64 {
	g := make([]float64, 12)
	for i := range g {
		g[i] = float64(i) * 30
	}
	return g
}

//AmplitudeHisto plots a histogram of the total puckering amplitudes in the
//record set and saves it to file (format taken from the extension).
func AmplitudeHisto(records map[string]batch.Record, file string) error {
	p := plot.New()
	p.X.Label.Text = "Q / Å"
	p.Y.Label.Text = "Counts"
	vals := make(plotter.Values, 0, len(records))
	for _, k := range sortedKeys(records) {
		vals = append(vals, records[k].Amplitude)
	}
	h, err := plotter.NewHist(vals, 60)
	if err != nil {
		return err
	}
	p.Add(h)
	p.X.Min = 0
	p.X.Max = 0.6
	return p.Save(10*vg.Centimeter, 8*vg.Centimeter, file)
}

//PolarScatter plots the (theta, phi) pair of every record on a polar-style
//map (radius = theta in [0,180], azimuth = phi) together with the landmark
//positions of the five conformational families, and saves it to file.
func PolarScatter(records map[string]batch.Record, file string) error {
	p := plot.New()
	p.X.Label.Text = "Φ / °"
	p.Y.Label.Text = "Θ / °"
	//landmarks first so data points draw on top of them.
	for _, m := range markers {
		lm := landmarks[m.label]
		xys := make(plotter.XYs, 0, len(lm.thetas)*len(lm.phis))
		for _, theta := range lm.thetas {
			for _, phi := range lm.phis {
				xys = append(xys, polarXY(theta, phi))
			}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = m.shape
		s.GlyphStyle.Color = m.color
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		p.Legend.Add(m.label, s)
	}
	xys := make(plotter.XYs, 0, len(records))
	for _, k := range sortedKeys(records) {
		r := records[k]
		xys = append(xys, polarXY(math.Mod(r.Theta, 180), math.Mod(r.Phi, 360)))
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = draw.RingGlyph{}
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(s)
	p.X.Min, p.X.Max = -190, 190
	p.Y.Min, p.Y.Max = -190, 190
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, file)
}

//polarXY projects the polar point (radius = theta, azimuth = phi degrees)
//onto the cartesian plane of the plot.
func polarXY(theta, phi float64) plotter.XY {
	rad := pucker.Deg2Rad(phi)
	return plotter.XY{X: theta * math.Cos(rad), Y: theta * math.Sin(rad)}
}

func sortedKeys(records map[string]batch.Record) []string {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
