package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/seralva/forcecurve/internal/curve"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Magenta,
	asciigraph.Blue,
}

// Chart renders the force curves as a terminal plot, one colored series
// per supply limit.
func Chart(t *curve.Table, width, height int) string {
	series := t.Series()
	if len(series) == 0 || len(t.Rows) == 0 {
		return ""
	}

	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	colors := make([]asciigraph.AnsiColor, len(series))
	for i, s := range series {
		data[i] = s.Values
		legends[i] = s.Label
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	maxSpeed := t.Speeds[len(t.Speeds)-1]
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("force (lbf) vs cable speed, 0 to %.2f m/s", maxSpeed)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
	return graph
}

// Table formats the sample rows as a plain text table, capped at
// maxRows evenly spaced samples so a 500-step sweep stays readable.
func Table(t *curve.Table, maxRows int) string {
	if len(t.Rows) == 0 {
		return ""
	}
	if maxRows < 2 {
		maxRows = 2
	}

	var sb strings.Builder
	sb.WriteString("speed (m/s)")
	for _, lbl := range t.Labels {
		fmt.Fprintf(&sb, "  %10s", lbl)
	}
	sb.WriteByte('\n')

	stride := 1
	if len(t.Rows) > maxRows {
		stride = (len(t.Rows) + maxRows - 1) / maxRows
	}
	for i := 0; i < len(t.Rows); i += stride {
		row := t.Rows[i]
		fmt.Fprintf(&sb, "%11.3f", row.Speed)
		for _, lbl := range t.Labels {
			fmt.Fprintf(&sb, "  %10.1f", row.Forces[lbl])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
