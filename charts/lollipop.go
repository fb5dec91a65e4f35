package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/ginireport/report"
)

// LollipopOptions holds rendering options for the lollipop chart.
type LollipopOptions struct {
	Title  string    // Chart title (default derived from the snapshot year)
	Width  vg.Length // Canvas width
	Height vg.Length // Canvas height
	Top    int       // Number of countries shown, by pre-tax Gini (0 = all)
}

// DefaultLollipopOptions returns the options used for the published chart.
func DefaultLollipopOptions() *LollipopOptions {
	return &LollipopOptions{
		Width:  10 * vg.Inch,
		Height: 12 * vg.Inch,
		Top:    30,
	}
}

// Lollipop renders one horizontal stem per country from its post-tax to
// its pre-tax Gini, with a dot at each end. Countries are ordered by
// pre-tax Gini, highest at the top.
func Lollipop(s *report.Snapshot, filename string, opts *LollipopOptions) error {
	if opts == nil {
		opts = DefaultLollipopOptions()
	}
	countries := s.Top(opts.Top)
	if len(countries) == 0 {
		return fmt.Errorf("snapshot for %d has no complete countries", s.Year)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("Gini coefficient before and after taxes and transfers, %d", s.Year)
	}
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Gini coefficient"

	// Highest pre-tax Gini at the top of the chart.
	names := make([]string, len(countries))
	prePoints := make(plotter.XYs, len(countries))
	postPoints := make(plotter.XYs, len(countries))
	for i, c := range countries {
		y := float64(len(countries) - 1 - i)
		names[len(countries)-1-i] = c.Entity

		stem, err := plotter.NewLine(plotter.XYs{
			{X: c.PostTax, Y: y},
			{X: c.PreTax, Y: y},
		})
		if err != nil {
			return err
		}
		stem.Color = stemColor
		stem.Width = vg.Points(1.5)
		p.Add(stem)

		prePoints[i] = plotter.XY{X: c.PreTax, Y: y}
		postPoints[i] = plotter.XY{X: c.PostTax, Y: y}
	}

	pre, err := plotter.NewScatter(prePoints)
	if err != nil {
		return err
	}
	pre.GlyphStyle.Color = preTaxColor
	pre.GlyphStyle.Radius = vg.Points(4)
	pre.GlyphStyle.Shape = draw.CircleGlyph{}

	post, err := plotter.NewScatter(postPoints)
	if err != nil {
		return err
	}
	post.GlyphStyle.Color = postTaxColor
	post.GlyphStyle.Radius = vg.Points(4)
	post.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(pre, post)
	p.Add(plotter.NewGrid())
	p.NominalY(names...)

	p.Legend.Add("Pre-tax", pre)
	p.Legend.Add("Post-tax", post)
	p.Legend.Top = true

	return p.Save(opts.Width, opts.Height, filename)
}
