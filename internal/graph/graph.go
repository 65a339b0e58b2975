// Package graph renders trajectory samples as text: a coordinate table, an
// ASCII scatter plot on a character grid, or a line chart.
package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cxd309/trajectory/internal/kinematics"
)

var (
	// ErrEmptyTrajectory is returned when a plot is requested for zero samples.
	ErrEmptyTrajectory = errors.New("graph: empty trajectory")

	// ErrOutsideGrid is returned when a sample rounds to a negative x or y cell.
	ErrOutsideGrid = errors.New("graph: sample outside the plot grid")
)

// tableHeader is the column header of CoordinatesTable.
const tableHeader = "  x      y"

// Graph holds an ordered sequence of trajectory samples and renders it.
// It never mutates its samples.
type Graph struct {
	coords []kinematics.Coordinate
	glyphs Glyphs
}

// Option configures a Graph.
type Option func(*Graph)

// WithGlyphs replaces the default plot glyphs. Callers should check
// Glyphs.Validate first; New does not.
func WithGlyphs(g Glyphs) Option {
	return func(gr *Graph) { gr.glyphs = g }
}

// New creates a Graph over a copy of coords.
func New(coords []kinematics.Coordinate, opts ...Option) *Graph {
	g := &Graph{
		coords: append([]kinematics.Coordinate(nil), coords...),
		glyphs: DefaultGlyphs,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CoordinatesTable returns one header line followed by one line per sample,
// in input order: x right-aligned in 3 columns, y right-aligned in 7 with
// two decimals.
func (g *Graph) CoordinatesTable() string {
	var sb strings.Builder
	sb.Grow((len(g.coords) + 1) * (len(tableHeader) + 1))
	sb.WriteString(tableHeader)
	sb.WriteByte('\n')
	for _, c := range g.coords {
		fmt.Fprintf(&sb, "%3d%7.2f\n", c.X, c.Y)
	}
	return sb.String()
}

func (g *Graph) GoString() string {
	parts := make([]string, len(g.coords))
	for i, c := range g.coords {
		parts[i] = fmt.Sprintf("(%d, %s)", c.X, formatFloat(c.Y))
	}
	return "graph.Graph([" + strings.Join(parts, ", ") + "])"
}

// formatFloat prints y the way a float literal reads: whole values keep ".0".
func formatFloat(y float64) string {
	s := strconv.FormatFloat(y, 'f', -1, 64)
	if math.IsInf(y, 0) || math.IsNaN(y) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
