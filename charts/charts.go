// Package charts renders the inequality comparison charts to PNG files.
package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/ginireport/report"
)

var continentColors = map[string]color.RGBA{
	"Africa":        {R: 214, G: 96, B: 77, A: 255},
	"Asia":          {R: 69, G: 117, B: 180, A: 255},
	"Europe":        {R: 27, G: 158, B: 119, A: 255},
	"North America": {R: 230, G: 171, B: 2, A: 255},
	"Oceania":       {R: 117, G: 112, B: 179, A: 255},
	"South America": {R: 231, G: 41, B: 138, A: 255},
}

var (
	preTaxColor  = color.RGBA{R: 178, G: 24, B: 43, A: 255}
	postTaxColor = color.RGBA{R: 33, G: 102, B: 172, A: 255}
	stemColor    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	fallbackGray = color.RGBA{R: 99, G: 99, B: 99, A: 255}
)

func continentColor(continent string) color.RGBA {
	if c, ok := continentColors[continent]; ok {
		return c
	}
	return fallbackGray
}

// populationRadius buckets the marker size by country population.
func populationRadius(population float64) vg.Length {
	switch {
	case population > 1e8:
		return vg.Points(9)
	case population > 1e7:
		return vg.Points(6)
	case population > 1e6:
		return vg.Points(4)
	default:
		return vg.Points(3)
	}
}

// ScatterOptions holds rendering options for the scatter chart.
type ScatterOptions struct {
	Title      string    // Chart title (default derived from the snapshot year)
	Width      vg.Length // Canvas width
	Height     vg.Length // Canvas height
	LabelEvery int       // Label every n-th country by rank (0 disables labels)
}

// DefaultScatterOptions returns the options used for the published chart.
func DefaultScatterOptions() *ScatterOptions {
	return &ScatterOptions{
		Width:      12 * vg.Inch,
		Height:     9 * vg.Inch,
		LabelEvery: 4,
	}
}

// Scatter renders pre-tax vs post-tax Gini per country, colored by
// continent and sized by population, with a dashed equality line.
func Scatter(s *report.Snapshot, filename string, opts *ScatterOptions) error {
	if opts == nil {
		opts = DefaultScatterOptions()
	}
	if len(s.Countries) == 0 {
		return fmt.Errorf("snapshot for %d has no complete countries", s.Year)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("Income inequality before and after redistribution, %d", s.Year)
	}
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Gini coefficient (pre-tax)"
	p.Y.Label.Text = "Gini coefficient (post-tax)"

	points := make(plotter.XYs, len(s.Countries))
	labels := make([]string, len(s.Countries))
	for i, c := range s.Countries {
		points[i].X = c.PreTax
		points[i].Y = c.PostTax
		labels[i] = c.Entity
	}

	for i, c := range s.Countries {
		dot, err := plotter.NewScatter(plotter.XYs{points[i]})
		if err != nil {
			return err
		}
		dot.GlyphStyle.Color = continentColor(c.Continent)
		dot.GlyphStyle.Radius = populationRadius(c.Population)
		dot.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(dot)
	}

	// Equality line: countries on it are unaffected by redistribution.
	equality := plotter.NewFunction(func(x float64) float64 { return x })
	equality.Color = color.RGBA{A: 255}
	equality.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(equality)

	p.Add(plotter.NewGrid())

	if opts.LabelEvery > 0 {
		var labelled plotter.XYLabels
		for i := range points {
			if i%opts.LabelEvery != 0 {
				continue
			}
			labelled.XYs = append(labelled.XYs, points[i])
			labelled.Labels = append(labelled.Labels, labels[i])
		}
		labelPoints, err := plotter.NewLabels(labelled)
		if err != nil {
			return err
		}
		p.Add(labelPoints)
	}

	for _, continent := range s.Continents() {
		thumb, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
		if err != nil {
			return err
		}
		thumb.GlyphStyle.Color = continentColor(continent)
		thumb.GlyphStyle.Radius = vg.Points(4)
		thumb.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Legend.Add(continent, thumb)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	min, max := giniRange(s)
	p.X.Min, p.X.Max = min, max
	p.Y.Min, p.Y.Max = min, max

	return p.Save(opts.Width, opts.Height, filename)
}

// giniRange returns padded shared axis bounds across both metrics.
func giniRange(s *report.Snapshot) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, c := range s.Countries {
		min = math.Min(min, math.Min(c.PreTax, c.PostTax))
		max = math.Max(max, math.Max(c.PreTax, c.PostTax))
	}
	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 0.05
	}
	return min - pad, max + pad
}
