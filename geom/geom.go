// Package geom provides the glyphs drawn into dataset rows: box-and-whisker
// plots for one statistics record and value axes with min, mid and max ticks.
//
// Every glyph comes in two orientations. A Horizontal box plot maps values
// along x and is BoxWidth high; a Vertical one maps values along y and is
// BoxWidth wide. Glyphs are built into a scene.Element by an Append function
// and brought up to date in place by the matching Update function.
package geom

// Fixed pixel sizes shared by all renderers.
const (
	BoxWidth      = 10 // thickness of a box plot
	AxisWidth     = 16 // room reserved below a row for a horizontal axis
	GroupVPadding = 4  // padding above and below a row's glyphs
	AxisSize      = 60 // length of a vertical value axis
	TickSize      = 3  // length of axis ticks
)

// Orientation selects the direction in which values are mapped.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	return []string{"horizontal", "vertical"}[int(o)]
}
