package geom

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/scene"
)

// Formatter formats a number for human display.
type Formatter func(float64) string

// ----------------------------------------------------------------------------
// Boxplot

// A box plot glyph is a group holding, in document order:
//     rect.box                  the filled box from Quartile25 to Quartile75
//     line.median               the median
//     rect.boxFrame             an unfilled copy of the box with a crisp border
//     line.lowerWhisker         cap at IQRMin          (absent if IQRMin is NaN)
//     line.lowerWhiskerConnector  IQRMin to Quartile25 (absent if IQRMin is NaN)
//     line.upperWhisker         cap at IQRMax          (absent if IQRMax is NaN)
//     line.upperWhiskerConnector  Quartile75 to IQRMax (absent if IQRMax is NaN)
// The group's title is the tooltip listing all statistics.

type whisker struct {
	prefix    string // "lower" or "upper"
	ok        bool
	cap       scene.Geometry
	connector scene.Geometry
}

type boxLayout struct {
	box, median scene.Geometry
	whiskers    [2]whisker
}

// layoutBox computes the geometry of the parts of a box plot for st.
func layoutBox(o Orientation, st data.Stats, scale func(float64) float64) boxLayout {
	var l boxLayout
	q25, q75, med := scale(st.Quartile25), scale(st.Quartile75), scale(st.Median)
	bounds := [2]struct {
		prefix        string
		iqr, quartile float64
	}{
		{"lower", st.IQRMin, st.Quartile25},
		{"upper", st.IQRMax, st.Quartile75},
	}

	switch o {
	case Horizontal:
		l.box = scene.Geometry{X: q25, Y: 0, Width: q75 - q25, Height: BoxWidth}
		l.median = scene.Geometry{X1: med, Y1: 0, X2: med, Y2: BoxWidth}
		for i, b := range bounds {
			w := whisker{prefix: b.prefix, ok: !math.IsNaN(b.iqr)}
			v := scale(b.iqr)
			w.cap = scene.Geometry{X1: v, Y1: BoxWidth / 4, X2: v, Y2: 3 * BoxWidth / 4}
			w.connector = scene.Geometry{X1: v, Y1: BoxWidth / 2, X2: scale(b.quartile), Y2: BoxWidth / 2}
			l.whiskers[i] = w
		}
	case Vertical:
		l.box = scene.Geometry{X: -BoxWidth / 2, Y: q75, Width: BoxWidth, Height: q25 - q75}
		l.median = scene.Geometry{X1: -BoxWidth / 2, Y1: med, X2: BoxWidth / 2, Y2: med}
		for i, b := range bounds {
			w := whisker{prefix: b.prefix, ok: !math.IsNaN(b.iqr)}
			v := scale(b.iqr)
			w.cap = scene.Geometry{X1: -BoxWidth / 4, Y1: v, X2: BoxWidth / 4, Y2: v}
			w.connector = scene.Geometry{X1: 0, Y1: v, X2: 0, Y2: scale(b.quartile)}
			l.whiskers[i] = w
		}
	default:
		panic(o)
	}
	return l
}

// AppendBoxPlot draws the box plot of st into the empty group parent. The
// scale maps values to pixels along the orientation's value direction. A nil
// fill uses sty.Fill.
func AppendBoxPlot(o Orientation, parent *scene.Element, st data.Stats, scale func(float64) float64,
	fill color.Color, sty BoxStyle, format Formatter) {

	if fill == nil {
		fill = sty.Fill
	}
	l := layoutBox(o, st, scale)

	parent.Owner = o.String()
	parent.Title = Tooltip(st, format)

	box := parent.Append(scene.Rect, "box")
	box.Geometry = l.box
	box.Fill = fill

	median := parent.Append(scene.Line, "median")
	median.Geometry = l.median
	median.Crisp = true
	stroke(median, sty.Median)

	frame := parent.Append(scene.Rect, "boxFrame")
	frame.Geometry = l.box
	frame.Fill = color.Transparent
	frame.Crisp = true
	stroke(frame, sty.Border)

	for _, w := range l.whiskers {
		if w.ok {
			appendWhisker(parent, w, sty)
		}
	}
}

func appendWhisker(parent *scene.Element, w whisker, sty BoxStyle) {
	cap := parent.Append(scene.Line, w.prefix+"Whisker")
	cap.Geometry = w.cap
	cap.Crisp = true
	stroke(cap, sty.Border)

	conn := parent.Append(scene.Line, w.prefix+"WhiskerConnector")
	conn.Geometry = w.connector
	conn.Crisp = true
	stroke(conn, sty.Border)
}

// UpdateBoxPlot brings the box plot in parent up to date with st, animating
// the box, frame, median and whiskers in place. A whisker whose bound became
// NaN is removed, one whose bound became a number is added. A glyph drawn in
// the other orientation is cleared and drawn afresh.
func UpdateBoxPlot(o Orientation, parent *scene.Element, st data.Stats, scale func(float64) float64,
	sty BoxStyle, format Formatter) {

	if parent.Owner != o.String() {
		var fill color.Color
		if box := parent.Child(scene.Rect, "box"); box != nil {
			fill = box.Fill
		}
		parent.Clear()
		AppendBoxPlot(o, parent, st, scale, fill, sty, format)
		return
	}

	l := layoutBox(o, st, scale)
	parent.Title = Tooltip(st, format)
	for _, class := range []string{"box", "boxFrame"} {
		if r := parent.Child(scene.Rect, class); r != nil {
			r.Animate(func(e *scene.Element) { e.Geometry = l.box })
		}
	}
	if m := parent.Child(scene.Line, "median"); m != nil {
		m.Animate(func(e *scene.Element) { e.Geometry = l.median })
	}

	for _, w := range l.whiskers {
		cap := parent.Child(scene.Line, w.prefix+"Whisker")
		conn := parent.Child(scene.Line, w.prefix+"WhiskerConnector")
		switch {
		case !w.ok:
			if cap != nil {
				cap.Remove()
			}
			if conn != nil {
				conn.Remove()
			}
		case cap == nil || conn == nil:
			if cap != nil {
				cap.Remove()
			}
			if conn != nil {
				conn.Remove()
			}
			appendWhisker(parent, w, sty)
		default:
			cap.Animate(func(e *scene.Element) { e.Geometry = w.cap })
			conn.Animate(func(e *scene.Element) { e.Geometry = w.connector })
		}
	}
}

// Tooltip lists the statistics of st, one per line.
func Tooltip(st data.Stats, format Formatter) string {
	if format == nil {
		format = FormatNumber
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Elements: %d\n", st.NumElements)
	fmt.Fprintf(&b, "NaNs: %d\n", st.NaNs)
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"Median", st.Median},
		{"Mean", st.Mean},
		{"Standard Deviation", st.Std},
		{"1st Quartile", st.Quartile25},
		{"3rd Quartile", st.Quartile75},
		{"Lowest value in 1.5xIQR range", st.IQRMin},
		{"Highest value in 1.5xIQR range", st.IQRMax},
		{"Min", st.Min},
		{"Max", st.Max},
	} {
		fmt.Fprintf(&b, "%s: %s\n", f.name, format(f.value))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
