package geom

import (
	"image/color"

	"github.com/vdobler/pathplot/scene"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle combines the line styles of a box plot with the fill color used
// for the box when the caller provides none.
type BoxStyle struct {
	Fill   color.Color
	Median draw.LineStyle
	Border draw.LineStyle // frame, whisker caps and whisker connectors
}

// DefaultBoxStyle is a gray box with a white median and black outlines.
var DefaultBoxStyle = BoxStyle{
	Fill:   color.Gray{0x80},
	Median: draw.LineStyle{Color: color.White, Width: vg.Length(1)},
	Border: draw.LineStyle{Color: color.Black, Width: vg.Length(1)},
}

// AxisStyle controls the look of a value axis.
type AxisStyle struct {
	Line  draw.LineStyle
	Label color.Color
}

// DefaultAxisStyle draws black axes with black labels.
var DefaultAxisStyle = AxisStyle{
	Line:  draw.LineStyle{Color: color.Black, Width: vg.Length(1)},
	Label: color.Black,
}

// stroke applies the line style sty to e.
func stroke(e *scene.Element, sty draw.LineStyle) {
	e.Stroke = sty.Color
	e.StrokeWidth = float64(sty.Width)
}
