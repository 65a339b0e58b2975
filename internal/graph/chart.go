package graph

import (
	"github.com/guptarohit/asciigraph"
)

const chartCaption = "height (m) over horizontal distance (m)"

// LineChart draws the sample heights as a continuous line chart. A
// non-positive height or width leaves that dimension to asciigraph, which
// uses one column per sample and one row per unit of height range.
func (g *Graph) LineChart(height, width int) (string, error) {
	if len(g.coords) == 0 {
		return "", ErrEmptyTrajectory
	}

	ys := make([]float64, len(g.coords))
	for i, c := range g.coords {
		ys[i] = c.Y
	}

	opts := []asciigraph.Option{asciigraph.Caption(chartCaption)}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(ys, opts...), nil
}
