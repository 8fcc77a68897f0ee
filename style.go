package pathplot

import (
	"image/color"

	"github.com/vdobler/pathplot/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how dataset rows are drawn.
type Style struct {
	Background color.Color

	// Label is used for dataset and data group labels. Its color is only
	// used for labels of datasets without a valid color.
	Label draw.TextStyle

	// GroupBackground fills the row of an expanded data group.
	GroupBackground color.Color

	Box  geom.BoxStyle
	Axis geom.AxisStyle

	Node struct {
		Fill   color.Color
		Border draw.LineStyle
		Label  draw.TextStyle
	}
}

// DefaultStyle returns a Style with fonts and sizes derived from
// baseFontSize.
func DefaultStyle(baseFontSize vg.Length) Style {
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	st := Style{}
	st.Background = color.White

	st.Label.Color = color.Black
	st.Label.Font = baseFont
	st.Label.XAlign = draw.XLeft
	st.Label.YAlign = draw.YBottom

	st.GroupBackground = color.NRGBA{240, 240, 240, 128}

	st.Box = geom.DefaultBoxStyle
	st.Axis = geom.DefaultAxisStyle

	st.Node.Fill = color.Gray16{0xeeee}
	st.Node.Border.Color = color.Gray16{0x1111}
	st.Node.Border.Width = vg.Length(1)
	st.Node.Label = st.Label
	st.Node.Label.XAlign = draw.XCenter

	return st
}
