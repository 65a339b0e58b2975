package graph

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ErrGlyphWidth is returned for a glyph that is not exactly one terminal cell wide.
var ErrGlyphWidth = errors.New("graph: glyph must be a single one-cell character")

// Glyphs are the characters used to draw the scatter plot.
type Glyphs struct {
	Marker string `json:"marker,omitempty" jsonschema:"description=Character marking a trajectory point"`
	XTick  string `json:"x_tick,omitempty" jsonschema:"description=Character repeated along the x axis"`
	YTick  string `json:"y_tick,omitempty" jsonschema:"description=Character prefixed to every grid row"`
}

// DefaultGlyphs draws points with a bullet and the axes with T and ⊣.
var DefaultGlyphs = Glyphs{Marker: "∙", XTick: "T", YTick: "⊣"}

// cellWidth measures terminal cells with East Asian ambiguous runes treated
// as narrow, so results do not depend on the caller's locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// WithDefaults fills empty fields from DefaultGlyphs.
func (g Glyphs) WithDefaults() Glyphs {
	if g.Marker == "" {
		g.Marker = DefaultGlyphs.Marker
	}
	if g.XTick == "" {
		g.XTick = DefaultGlyphs.XTick
	}
	if g.YTick == "" {
		g.YTick = DefaultGlyphs.YTick
	}
	return g
}

// Validate checks that every glyph is one rune drawn in one terminal cell,
// which keeps grid columns aligned with the x axis.
func (g Glyphs) Validate() error {
	for _, f := range []struct{ name, glyph string }{
		{"marker", g.Marker},
		{"x tick", g.XTick},
		{"y tick", g.YTick},
	} {
		if utf8.RuneCountInString(f.glyph) != 1 || cellWidth.StringWidth(f.glyph) != 1 {
			return fmt.Errorf("%s %q: %w", f.name, f.glyph, ErrGlyphWidth)
		}
	}
	return nil
}

// marker returns the marker rune.
func (g Glyphs) marker() rune {
	r, _ := utf8.DecodeRuneInString(g.Marker)
	return r
}
