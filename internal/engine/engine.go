// Package engine runs a projectile calculation end to end.
//
// A run has two stages:
//
//  1. Model - the launch input becomes a kinematics.Projectile, which is
//     sampled at every whole metre of its range.
//
//  2. Render - the samples are handed to a graph.Graph, which produces the
//     coordinate table, the scatter plot and the line chart asked for.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/cxd309/trajectory/internal/graph"
	"github.com/cxd309/trajectory/internal/kinematics"
)

// NewCalculator checks the rendering settings of input and builds the
// projectile. Launch parameters are only checked when input.Strict is set.
func NewCalculator(input LaunchInput) (*Calculator, error) {
	format := input.Format
	if format == "" {
		format = FormatAll
	}
	switch format {
	case FormatTable, FormatPlot, FormatChart, FormatAll:
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	glyphs := graph.DefaultGlyphs
	if input.Glyphs != nil {
		glyphs = input.Glyphs.WithDefaults()
	}
	if err := glyphs.Validate(); err != nil {
		return nil, fmt.Errorf("glyphs: %w", err)
	}

	p := kinematics.NewProjectile(input.Speed, input.Height, input.Angle)
	if input.Strict {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("launch parameters: %w", err)
		}
	}

	c := &Calculator{projectile: p, glyphs: glyphs, format: format}
	if input.Chart != nil {
		c.chart = *input.Chart
	}
	return c, nil
}

// Projectile exposes the underlying model so callers can adjust it between runs.
func (c *Calculator) Projectile() *kinematics.Projectile { return c.projectile }

// Run samples the trajectory and renders it.
func (c *Calculator) Run() (Report, error) {
	coords, err := c.projectile.Coordinates()
	if err != nil {
		return Report{}, fmt.Errorf("computing coordinates: %w", err)
	}

	report := Report{
		Summary:      c.projectile.String(),
		Displacement: c.projectile.Displacement(),
		Angle:        c.projectile.Angle(),
		Coordinates:  coords,
	}

	g := graph.New(coords, graph.WithGlyphs(c.glyphs))
	if c.wants(FormatTable) {
		report.Table = g.CoordinatesTable()
	}
	if c.wants(FormatPlot) {
		report.Plot, err = g.Trajectory()
		if err != nil {
			return Report{}, fmt.Errorf("plotting trajectory: %w", err)
		}
	}
	if c.wants(FormatChart) {
		report.Chart, err = g.LineChart(c.chart.Height, c.chart.Width)
		if err != nil {
			return Report{}, fmt.Errorf("charting trajectory: %w", err)
		}
	}
	return report, nil
}

func (c *Calculator) wants(f Format) bool {
	return c.format == FormatAll || c.format == f
}

// Run builds a Calculator from input and runs it once.
func Run(input LaunchInput) (Report, error) {
	c, err := NewCalculator(input)
	if err != nil {
		return Report{}, err
	}
	return c.Run()
}

// RunJSON is the entry point shared by the CLI and WASM targets.
// It accepts a JSON-encoded LaunchInput and returns a JSON-encoded Report.
func RunJSON(jsonInput string) (string, error) {
	var input LaunchInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	report, err := Run(input)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}

// Schema describes the LaunchInput document accepted by RunJSON.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(LaunchInput))
	schema.Title = "Projectile launch input"
	schema.Description = "Launch parameters and rendering options for the trajectory calculator"
	return schema
}
