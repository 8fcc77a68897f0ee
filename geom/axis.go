package geom

import (
	"github.com/vdobler/pathplot/scene"
	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Axis

// Ticks returns the three ticks drawn on a value axis over dom: its min, its
// midpoint and its max.
func Ticks(dom Interval) plot.ConstantTicks {
	format := TickFormat(dom)
	values := []float64{dom.Min, dom.Mid(), dom.Max}
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: format(v)}
	}
	return ticks
}

// DrawAxis draws a value axis for s into the group g. A Horizontal axis is
// oriented to the bottom with ticks below the line, a Vertical one to the
// left. DrawAxis may be called repeatedly on the same group: ticks are kept
// as g.tick children bound by position and brought up to date in place, the
// axis line is the single path.domain child.
func DrawAxis(g *scene.Element, o Orientation, s LinearScale, sty AxisStyle) {
	ticks := Ticks(s.Domain)

	j := g.Join(scene.Group, "tick", scene.IndexKeys(len(ticks)))
	j.Enter(func(_ int, t *scene.Element) {
		stroke(t.Append(scene.Line, ""), sty.Line)
		label := t.Append(scene.Text, "")
		label.Fill = sty.Label
	})
	j.Each(func(i int, t *scene.Element) {
		pos := s.Map(ticks[i].Value)
		line, label := t.Child(scene.Line, ""), t.Child(scene.Text, "")
		label.Text = ticks[i].Label
		switch o {
		case Horizontal:
			t.Translate(pos, 0)
			line.Geometry = scene.Geometry{Y2: TickSize}
			label.Geometry = scene.Geometry{Y: TickSize + 3}
			label.DY, label.Anchor = ".71em", "middle"
		case Vertical:
			t.Translate(0, pos)
			line.Geometry = scene.Geometry{X2: -TickSize}
			label.Geometry = scene.Geometry{X: -(TickSize + 3)}
			label.DY, label.Anchor = ".32em", "end"
		}
	})
	j.Exit()

	domain := g.Child(scene.Path, "domain")
	if domain == nil {
		domain = g.Append(scene.Path, "domain")
		stroke(domain, sty.Line)
	}
	r := s.Range.Extent()
	switch o {
	case Horizontal:
		domain.Points = []scene.Point{
			{X: r.Min, Y: TickSize}, {X: r.Min, Y: 0}, {X: r.Max, Y: 0}, {X: r.Max, Y: TickSize},
		}
	case Vertical:
		domain.Points = []scene.Point{
			{X: -TickSize, Y: r.Min}, {X: 0, Y: r.Min}, {X: 0, Y: r.Max}, {X: -TickSize, Y: r.Max},
		}
	}
}
