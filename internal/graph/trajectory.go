package graph

import (
	"fmt"
	"math"
	"strings"
)

// cell is a sample rounded to a grid position.
type cell struct{ x, y int }

// Trajectory plots the samples on a character grid sized to the largest
// rounded x and y. Larger y is drawn nearer the top; samples rounding to the
// same cell overwrite each other. Every row carries the y-axis tick and a final
// row of x-axis ticks closes the grid. The result starts and ends with a newline.
func (g *Graph) Trajectory() (string, error) {
	if len(g.coords) == 0 {
		return "", ErrEmptyTrajectory
	}

	cells := make([]cell, len(g.coords))
	xMax, yMax := math.MinInt, math.MinInt
	for i, c := range g.coords {
		rc := cell{x: c.X, y: int(math.RoundToEven(c.Y))}
		if rc.x < 0 || rc.y < 0 {
			return "", fmt.Errorf("sample %d (%d, %g): %w", i, c.X, c.Y, ErrOutsideGrid)
		}
		cells[i] = rc
		xMax = max(xMax, rc.x)
		yMax = max(yMax, rc.y)
	}

	grid := make([][]rune, yMax+1)
	for row := range grid {
		grid[row] = []rune(strings.Repeat(" ", xMax+1))
	}
	marker := g.glyphs.marker()
	for _, c := range cells {
		grid[yMax-c.y][c.x] = marker
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	for _, row := range grid {
		sb.WriteString(g.glyphs.YTick)
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(" ", max(1, cellWidth.StringWidth(g.glyphs.YTick))))
	sb.WriteString(strings.Repeat(g.glyphs.XTick, xMax+1))
	sb.WriteByte('\n')
	return sb.String(), nil
}
