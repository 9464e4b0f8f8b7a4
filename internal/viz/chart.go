package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/harmonic/internal/dynamo"
)

var seriesColors = []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Yellow, asciigraph.Blue}

// ChartOptions controls the asciigraph time-series charts.
type ChartOptions struct {
	Width  int
	Height int
	// Velocity plots v(t) instead of x(t).
	Velocity bool
}

// TimeSeries renders position (or velocity) against sample index for every
// trajectory on one asciigraph chart.
func TimeSeries(trs []dynamo.Trajectory, opts ChartOptions) string {
	data := make([][]float64, 0, len(trs))
	labels := make([]string, 0, len(trs))
	for _, tr := range trs {
		if tr.Len() == 0 {
			continue
		}
		series := tr.Positions()
		if opts.Velocity {
			series = tr.Velocities()
		}
		series = finiteOnly(series)
		if len(series) == 0 {
			continue
		}
		data = append(data, series)
		labels = append(labels, tr.Label)
	}
	if len(data) == 0 {
		return ""
	}

	caption := "position vs step"
	if opts.Velocity {
		caption = "velocity vs step"
	}

	colors := seriesColors
	if len(data) < len(colors) {
		colors = colors[:len(data)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(labels...),
	)
}

// finiteOnly truncates series at the first NaN or Inf.
func finiteOnly(series []float64) []float64 {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return series[:i]
		}
	}
	return series
}
