package main

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/osuushi/delaunay/mesh"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "800px",
			Width:  "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Write the mesh as an interactive chart: one scatter point per vertex and one
// closed line per triangle.
func renderChart(w io.Writer, m *mesh.Mesh) error {
	scatter := charts.NewScatter()
	prepareScatter(scatter, "Delaunay triangulation")

	points := make([]opts.ScatterData, 0, len(m.Vertices))
	for _, v := range m.Vertices {
		points = append(points, opts.ScatterData{
			Value: []float64{v.X, v.Y, v.Z},
		})
	}
	scatter.AddSeries("Points", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "orange",
			}),
		)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		line := charts.NewLine()
		line.AddSeries("Triangles", []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
			{Value: []float64{c.X, c.Y}},
			{Value: []float64{a.X, a.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
			}),
		)
		scatter.Overlap(line)
	}

	return scatter.Render(w)
}
