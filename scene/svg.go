package scene

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// ClipRect is a rectangular clip path. Elements use it by setting their
// ClipPath to "url(#ID)".
type ClipRect struct {
	ID                  string
	X, Y, Width, Height int
}

// WriteSVG writes the visible part of the scene below root as an SVG
// document of the given size to w. The clip rectangles are written as
// definitions ahead of the scene.
//
// Rectangles and lines are written as path data to keep fractional
// coordinates; tooltips become <title> children of the owning group or of a
// group wrapping the owning leaf.
func WriteSVG(w io.Writer, root *Element, width, height int, clips ...ClipRect) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, `font-size="10px" font-family="sans-serif"`)
	if len(clips) > 0 {
		canvas.Def()
		for _, c := range clips {
			canvas.ClipPath(fmt.Sprintf(`id=%q`, c.ID))
			canvas.Rect(c.X, c.Y, c.Width, c.Height)
			canvas.ClipEnd()
		}
		canvas.DefEnd()
	}
	writeElement(canvas, root)
	canvas.End()
	return ew.err
}

func writeElement(canvas *svg.SVG, e *Element) {
	if e.Hidden || !e.Defined() {
		return
	}

	if e.Tag == Group {
		canvas.Group(groupAttrs(e)...)
		if e.Title != "" {
			canvas.Title(e.Title)
		}
		for _, c := range e.children {
			writeElement(canvas, c)
		}
		canvas.Gend()
		return
	}

	if e.Title != "" {
		canvas.Group()
		canvas.Title(e.Title)
		defer canvas.Gend()
	}

	a := leafAttrs(e)
	g := e.Geometry
	switch e.Tag {
	case Rect:
		d := fmt.Sprintf("M%s %sh%sv%sh%sZ", num(g.X), num(g.Y),
			num(g.Width), num(g.Height), num(-g.Width))
		canvas.Path(d, a...)
	case Line:
		d := fmt.Sprintf("M%s %sL%s %s", num(g.X1), num(g.Y1), num(g.X2), num(g.Y2))
		canvas.Path(d, a...)
	case Path:
		if len(e.Points) == 0 {
			return
		}
		var d strings.Builder
		for i, p := range e.Points {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&d, "%s%s %s", cmd, num(p.X), num(p.Y))
		}
		if e.Fill == nil {
			a = append(a, `fill="none"`)
		}
		canvas.Path(d.String(), a...)
	case Text:
		canvas.Text(round(g.X), round(g.Y), e.Text, a...)
	}
}

func groupAttrs(e *Element) []string {
	var a []string
	if e.Class != "" {
		a = append(a, fmt.Sprintf(`class=%q`, e.Class))
	}
	if e.TX != 0 || e.TY != 0 {
		a = append(a, fmt.Sprintf(`transform="translate(%s,%s)"`, num(e.TX), num(e.TY)))
	}
	return a
}

func leafAttrs(e *Element) []string {
	var a []string
	if e.Class != "" {
		a = append(a, fmt.Sprintf(`class=%q`, e.Class))
	}
	if e.Fill != nil {
		rgb, opacity := cssColor(e.Fill)
		a = append(a, fmt.Sprintf(`fill=%q`, rgb))
		if opacity < 1 {
			a = append(a, fmt.Sprintf(`fill-opacity="%s"`, num(opacity)))
		}
	}
	if e.Stroke != nil {
		rgb, opacity := cssColor(e.Stroke)
		a = append(a, fmt.Sprintf(`stroke=%q`, rgb))
		if opacity < 1 {
			a = append(a, fmt.Sprintf(`stroke-opacity="%s"`, num(opacity)))
		}
		if e.StrokeWidth > 0 {
			a = append(a, fmt.Sprintf(`stroke-width="%s"`, num(e.StrokeWidth)))
		}
	}
	if e.Crisp {
		a = append(a, `shape-rendering="crispEdges"`)
	}
	if e.Anchor != "" {
		a = append(a, fmt.Sprintf(`text-anchor=%q`, e.Anchor))
	}
	if e.DY != "" {
		a = append(a, fmt.Sprintf(`dy=%q`, e.DY))
	}
	if e.ClipPath != "" {
		a = append(a, fmt.Sprintf(`clip-path=%q`, e.ClipPath))
	}
	return a
}

// cssColor returns c as an rgb() color and its opacity in [0,1].
func cssColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B), float64(n.A) / 255
}

func num(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
