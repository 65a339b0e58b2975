package engine

import (
	"github.com/cxd309/trajectory/internal/graph"
	"github.com/cxd309/trajectory/internal/kinematics"
)

// Format selects which renderings a run produces.
type Format string

const (
	FormatTable Format = "table"
	FormatPlot  Format = "plot"
	FormatChart Format = "chart"
	FormatAll   Format = "all"
)

// ChartSize bounds the line chart. Zero leaves a dimension to the chart library.
type ChartSize struct {
	Height int `json:"height,omitempty" jsonschema:"minimum=0,description=Chart rows"`
	Width  int `json:"width,omitempty" jsonschema:"minimum=0,description=Chart columns"`
}

// LaunchInput is the JSON-serialisable input to the engine.
type LaunchInput struct {
	Speed  float64 `json:"speed" jsonschema:"description=Launch speed in m/s"`   // m/s
	Height float64 `json:"height" jsonschema:"description=Launch height in metres"` // metres
	Angle  float64 `json:"angle" jsonschema:"description=Launch angle in degrees"`  // degrees

	// Strict rejects non-physical parameters before any computation.
	Strict bool          `json:"strict,omitempty" jsonschema:"description=Reject non-physical parameters up front"`
	Format Format        `json:"format,omitempty" jsonschema:"enum=table,enum=plot,enum=chart,enum=all,default=all"`
	Glyphs *graph.Glyphs `json:"glyphs,omitempty"`
	Chart  *ChartSize    `json:"chart,omitempty"`
}

// Report is the complete output of a run. Renderings not selected by the
// input format are left empty.
type Report struct {
	Summary      string                  `json:"summary"`
	Displacement float64                 `json:"displacement"` // metres
	Angle        int                     `json:"angle"`        // whole degrees
	Coordinates  []kinematics.Coordinate `json:"coordinates"`
	Table        string                  `json:"table,omitempty"`
	Plot         string                  `json:"plot,omitempty"`
	Chart        string                  `json:"chart,omitempty"`
}

// Calculator is a prepared run: the projectile plus rendering settings.
type Calculator struct {
	projectile *kinematics.Projectile
	glyphs     graph.Glyphs
	format     Format
	chart      ChartSize
}
