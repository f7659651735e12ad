package clipAndMerge

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Category is one stacked bar segment.
type Category struct {
	Key  string
	Name string
}

// BarGraph is a stacked bar chart configuration over ordered categories.
type BarGraph struct {
	ID                  string
	Title               string
	YLab                string
	CpswitchCountsLabel string
	HideZeroCats        bool
	Categories          []Category
}

// NewBarGraph returns the removed-reads chart.
func NewBarGraph() *BarGraph {
	return &BarGraph{
		ID:                  "clipandmerge_rates",
		Title:               "ClipAndMerge: Deduplicated Reads",
		YLab:                "# Reads",
		CpswitchCountsLabel: "Number of Reads",
		HideZeroCats:        false,
		Categories: []Category{
			{NotRemoved, "Not Removed"},
			{ReverseRemoved, "Reverse Removed"},
			{ForwardRemoved, "Forward Removed"},
			{MergedRemoved, "Merged Removed"},
		},
	}
}

// Series shapes data for plotting: sorted samples, the categories shown and
// values[category][sample]. A key missing from a record counts as 0.
func (g *BarGraph) Series(data ResultSet) (samples []string, cats []Category, values [][]float64) {
	samples = data.Samples()
	for _, c := range g.Categories {
		var (
			vs    = make([]float64, len(samples))
			total float64
		)
		for i, name := range samples {
			vs[i] = data[name][c.Key]
			total += vs[i]
		}
		if g.HideZeroCats && total == 0 {
			continue
		}
		cats = append(cats, c)
		values = append(values, vs)
	}
	return
}

// Percentages is Series with every sample's segments scaled to sum to 100.
func (g *BarGraph) Percentages(data ResultSet) (samples []string, cats []Category, values [][]float64) {
	samples, cats, values = g.Series(data)
	for i := range samples {
		var sum float64
		for _, vs := range values {
			sum += vs[i]
		}
		if sum == 0 {
			continue
		}
		for _, vs := range values {
			vs[i] = vs[i] * 100 / sum
		}
	}
	return
}

func GenerateBarItems(vs []float64) []opts.BarData {
	var items = make([]opts.BarData, 0, len(vs))
	for _, v := range vs {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

func (g *BarGraph) newBar(id, subtitle, yLab string, samples []string, cats []Category, values [][]float64) *charts.Bar {
	var bar = charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros, ChartID: id}),
		charts.WithTitleOpts(opts.Title{
			Title:    g.Title,
			Subtitle: subtitle,
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: yLab}),
	)
	bar.SetXAxis(samples)
	for i, c := range cats {
		bar.AddSeries(c.Name, GenerateBarItems(values[i]), charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}
	return bar
}

// Charts returns the counts chart followed by the percentage chart.
func (g *BarGraph) Charts(data ResultSet) []*charts.Bar {
	var samples, cats, counts = g.Series(data)
	var _, _, percents = g.Percentages(data)
	return []*charts.Bar{
		g.newBar(g.ID, g.CpswitchCountsLabel, g.YLab, samples, cats, counts),
		g.newBar(g.ID+"_pct", "Percentages", "Percentage of Reads", samples, cats, percents),
	}
}

// RenderHTML writes both charts as one echarts page.
func (g *BarGraph) RenderHTML(w io.Writer, data ResultSet) error {
	var page = components.NewPage()
	page.PageTitle = g.Title
	for _, bar := range g.Charts(data) {
		page.AddCharts(bar)
	}
	return page.Render(w)
}

// SavePNG draws the counts chart as a static image.
func (g *BarGraph) SavePNG(path string, data ResultSet) error {
	var samples, cats, values = g.Series(data)

	var p = plot.New()
	p.Title.Text = g.Title
	p.Y.Label.Text = g.YLab
	p.Legend.Top = true

	var prev *plotter.BarChart
	for i, c := range cats {
		bars, err := plotter.NewBarChart(plotter.Values(values[i]), vg.Points(20))
		if err != nil {
			return fmt.Errorf("bar %s: %w", c.Key, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(c.Name, bars)
		prev = bars
	}
	p.NominalX(samples...)

	var width = vg.Length(len(samples)+4) * vg.Centimeter
	if width < 16*vg.Centimeter {
		width = 16 * vg.Centimeter
	}
	return p.Save(width, 12*vg.Centimeter, path)
}
