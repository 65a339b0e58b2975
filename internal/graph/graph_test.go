package graph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/trajectory/internal/kinematics"
)

func coords(pairs ...float64) []kinematics.Coordinate {
	out := make([]kinematics.Coordinate, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, kinematics.Coordinate{X: int(pairs[i]), Y: pairs[i+1]})
	}
	return out
}

func TestCoordinatesTable(t *testing.T) {
	t.Parallel()

	g := New(coords(0, 0, 1, 1.234, 2, -0.5, 10, 12.346))
	want := "  x      y\n" +
		"  0   0.00\n" +
		"  1   1.23\n" +
		"  2  -0.50\n" +
		" 10  12.35\n"
	assert.Equal(t, want, g.CoordinatesTable())
}

func TestCoordinatesTableLineCount(t *testing.T) {
	t.Parallel()

	samples, err := kinematics.NewProjectile(20, 0, 45).Coordinates()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(New(samples).CoordinatesTable(), "\n"), "\n")
	require.Len(t, lines, len(samples)+1)
	assert.Equal(t, tableHeader, lines[0])
	for i, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, fmt.Sprintf("%3d", i)), "row %d: %q", i, line)
	}
}

func TestCoordinatesTableEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tableHeader+"\n", New(nil).CoordinatesTable())
}

func TestTrajectoryTriangle(t *testing.T) {
	t.Parallel()

	got, err := New(coords(0, 0, 1, 1, 2, 0)).Trajectory()
	require.NoError(t, err)
	want := "\n" +
		"⊣ ∙ \n" +
		"⊣∙ ∙\n" +
		" TTT\n"
	assert.Equal(t, want, got)
}

func TestTrajectoryRoundsAndOverwrites(t *testing.T) {
	t.Parallel()

	// 1.6 and 2.4 both land on y=2; 0.5 rounds half to even, to 0.
	got, err := New(coords(0, 0.5, 1, 1.6, 1, 2.4, 3, 0.2)).Trajectory()
	require.NoError(t, err)
	want := "\n" +
		"⊣ ∙  \n" +
		"⊣    \n" +
		"⊣∙  ∙\n" +
		" TTTT\n"
	assert.Equal(t, want, got)
}

func TestTrajectoryEmpty(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Trajectory()
	assert.ErrorIs(t, err, ErrEmptyTrajectory)

	samples, err := kinematics.NewProjectile(10, 0, 0).Coordinates()
	require.NoError(t, err)
	_, err = New(samples).Trajectory()
	assert.ErrorIs(t, err, ErrEmptyTrajectory)
}

func TestTrajectoryOutsideGrid(t *testing.T) {
	t.Parallel()

	_, err := New(coords(0, 1, 1, -2)).Trajectory()
	assert.ErrorIs(t, err, ErrOutsideGrid)

	_, err = New(coords(-1, 1)).Trajectory()
	assert.ErrorIs(t, err, ErrOutsideGrid)
}

func TestTrajectoryShape(t *testing.T) {
	t.Parallel()

	samples, err := kinematics.NewProjectile(20, 0, 45).Coordinates()
	require.NoError(t, err)
	plot, err := New(samples).Trajectory()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(plot, "\n"))
	require.True(t, strings.HasSuffix(plot, "\n"))
	rows := strings.Split(strings.Trim(plot, "\n"), "\n")

	// Apex of v²/(4g) ≈ 10.19 m rounds to 10, so 11 grid rows plus the axis.
	require.Len(t, rows, 12)
	for _, row := range rows[:11] {
		assert.True(t, strings.HasPrefix(row, "⊣"))
		assert.Equal(t, 42, len([]rune(row)))
	}
	assert.Equal(t, " "+strings.Repeat("T", 41), rows[11])
	assert.Contains(t, rows[0], "∙")
}

func TestTrajectoryDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := coords(0, 0.4, 1, 1.7, 2, 0.1)
	snapshot := append([]kinematics.Coordinate(nil), in...)
	g := New(in)
	_, err := g.Trajectory()
	require.NoError(t, err)
	g.CoordinatesTable()
	assert.Equal(t, snapshot, in)

	in[0].Y = 99
	assert.Equal(t, 0.4, g.coords[0].Y)
}

func TestTrajectoryCustomGlyphs(t *testing.T) {
	t.Parallel()

	glyphs := Glyphs{Marker: "*", XTick: "-", YTick: "|"}
	require.NoError(t, glyphs.Validate())

	got, err := New(coords(0, 0, 1, 1, 2, 0), WithGlyphs(glyphs)).Trajectory()
	require.NoError(t, err)
	assert.Equal(t, "\n| * \n|* *\n ---\n", got)
}

func TestGlyphsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		glyphs Glyphs
		ok     bool
	}{
		{"defaults", DefaultGlyphs, true},
		{"ascii", Glyphs{Marker: "o", XTick: "+", YTick: "|"}, true},
		{"empty marker", Glyphs{XTick: "+", YTick: "|"}, false},
		{"two runes", Glyphs{Marker: "oo", XTick: "+", YTick: "|"}, false},
		{"wide rune", Glyphs{Marker: "o", XTick: "界", YTick: "|"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.glyphs.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrGlyphWidth)
			}
		})
	}
}

func TestGlyphsWithDefaults(t *testing.T) {
	t.Parallel()

	got := Glyphs{Marker: "x"}.WithDefaults()
	assert.Equal(t, Glyphs{Marker: "x", XTick: "T", YTick: "⊣"}, got)
}

func TestLineChart(t *testing.T) {
	t.Parallel()

	samples, err := kinematics.NewProjectile(20, 0, 45).Coordinates()
	require.NoError(t, err)

	chart, err := New(samples).LineChart(8, 40)
	require.NoError(t, err)
	assert.Contains(t, chart, chartCaption)
	assert.NotEmpty(t, strings.TrimSpace(chart))

	_, err = New(nil).LineChart(8, 40)
	assert.ErrorIs(t, err, ErrEmptyTrajectory)
}

func TestGoString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "graph.Graph([(0, 0.0), (1, 1.5), (2, -3.0)])", New(coords(0, 0, 1, 1.5, 2, -3)).GoString())
	assert.Equal(t, "graph.Graph([])", New(nil).GoString())
}
