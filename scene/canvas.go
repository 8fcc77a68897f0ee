package scene

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Paint draws the visible part of the scene below root onto c. Scene
// coordinates are taken as points with the origin in the top-left corner of
// c. Text is drawn with the font of text; its color is taken from the
// element's fill, falling back to text.Color.
func Paint(c draw.Canvas, root *Element, text draw.TextStyle) {
	p := painter{c: c, text: text}
	p.paint(root, 0, 0)
}

type painter struct {
	c    draw.Canvas
	text draw.TextStyle
}

// pt maps the scene point (x,y) into the canvas.
func (p *painter) pt(x, y float64) vg.Point {
	return vg.Point{
		X: p.c.Min.X + vg.Length(x),
		Y: p.c.Max.Y - vg.Length(y),
	}
}

func (p *painter) paint(e *Element, ox, oy float64) {
	if e.Hidden || !e.Defined() {
		return
	}
	ox, oy = ox+e.TX, oy+e.TY

	g := e.Geometry
	switch e.Tag {
	case Group:
		for _, c := range e.children {
			p.paint(c, ox, oy)
		}
	case Rect:
		var path vg.Path
		path.Move(p.pt(ox+g.X, oy+g.Y))
		path.Line(p.pt(ox+g.X+g.Width, oy+g.Y))
		path.Line(p.pt(ox+g.X+g.Width, oy+g.Y+g.Height))
		path.Line(p.pt(ox+g.X, oy+g.Y+g.Height))
		path.Close()
		if e.Fill != nil && !transparent(e.Fill) {
			p.c.SetColor(e.Fill)
			p.c.Fill(path)
		}
		if e.Stroke != nil {
			p.c.SetLineStyle(lineStyle(e))
			p.c.Stroke(path)
		}
	case Line:
		if e.Stroke == nil {
			return
		}
		a, b := p.pt(ox+g.X1, oy+g.Y1), p.pt(ox+g.X2, oy+g.Y2)
		p.c.StrokeLine2(lineStyle(e), a.X, a.Y, b.X, b.Y)
	case Path:
		if e.Stroke == nil || len(e.Points) < 2 {
			return
		}
		pts := make([]vg.Point, len(e.Points))
		for i, q := range e.Points {
			pts[i] = p.pt(ox+q.X, oy+q.Y)
		}
		p.c.StrokeLines(lineStyle(e), pts)
	case Text:
		if e.Text == "" {
			return
		}
		sty := p.text
		if e.Fill != nil {
			sty.Color = e.Fill
		}
		switch e.Anchor {
		case "middle":
			sty.XAlign = draw.XCenter
		case "end":
			sty.XAlign = draw.XRight
		default:
			sty.XAlign = draw.XLeft
		}
		switch e.DY {
		case ".71em":
			sty.YAlign = draw.YTop
		case ".32em":
			sty.YAlign = draw.YCenter
		default:
			sty.YAlign = draw.YBottom
		}
		p.c.FillText(sty, p.pt(ox+g.X, oy+g.Y), e.Text)
	}
}

func lineStyle(e *Element) draw.LineStyle {
	w := e.StrokeWidth
	if w == 0 {
		w = 1
	}
	return draw.LineStyle{Color: e.Stroke, Width: vg.Length(w)}
}

func transparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}
