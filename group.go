package pathplot

import (
	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
)

// ----------------------------------------------------------------------------
// DataGroupWrapper

// DataGroupWrapper is one named group of the values of a dataset, e.g. one
// attribute of a matrix dataset.
type DataGroupWrapper struct {
	Name   string
	parent *DatasetWrapper
}

// Parent returns the dataset the group belongs to.
func (g *DataGroupWrapper) Parent() *DatasetWrapper { return g.parent }

func (g *DataGroupWrapper) BaseHeight(ctx *Context) float64 { return baseHeight(ctx) }

// Height of a data group is its base height; groups have no children.
func (g *DataGroupWrapper) Height(ctx *Context) float64 { return g.BaseHeight(ctx) }

// IsSticky reports whether the group stays visible in a collapsed dataset.
func (g *DataGroupWrapper) IsSticky(ctx *Context) bool {
	return ctx.Settings.IsDataGroupSticky(g.parent.ID(), g.Name)
}

// CanBeShown reports whether the group is visible: its dataset is
// expanded or the group is sticky.
func (g *DataGroupWrapper) CanBeShown(ctx *Context) bool {
	return !g.parent.Collapsed || g.IsSticky(ctx)
}

// backgroundSize is the size of the row background spanning all nodes of pw.
func (g *DataGroupWrapper) backgroundSize(ctx *Context, pw *PathWrapper) (w, h float64) {
	s := ctx.Settings
	w = ctx.Paths.NodePositionX(pw, len(pw.Path.Nodes)-1, false) + s.NodeWidth
	h = geom.BoxWidth
	if ctx.Tilted() {
		h = geom.AxisSize
	} else {
		w += s.EdgeSize / 2
	}
	return w, h
}

func (g *DataGroupWrapper) renderEnter(ctx *Context, el *scene.Element, pw *PathWrapper) {
	bg := el.Append(scene.Rect, "background")
	bg.X = ctx.Settings.SetTypeIndent
	bg.Y = geom.GroupVPadding
	bg.Width, bg.Height = g.backgroundSize(ctx, pw)
	bg.Fill = ctx.Style.GroupBackground

	label := el.Append(scene.Text, "label")
	label.X = ctx.Settings.SetTypeIndent
	label.Y = labelY(ctx)
	label.ClipPath = LabelClipPath
	label.Fill = g.parent.labelColor(ctx)
	label.Text = g.Name
	label.Title = g.Name

	strategies[ctx.Orientation].groupEnter(ctx, el, pw, g.parent, g)
}

func (g *DataGroupWrapper) renderUpdate(ctx *Context, el *scene.Element, pw *PathWrapper) {
	w, h := g.backgroundSize(ctx, pw)
	el.Child(scene.Rect, "background").Animate(func(e *scene.Element) {
		e.Width, e.Height = w, h
	})
	el.Child(scene.Text, "label").Y = labelY(ctx)

	strat := strategies[ctx.Orientation]
	strat.groupUpdate(ctx, el, pw, g.parent, g)

	list := ctx.statData(pw, g.parent.ID(), g.Name)
	j := el.Join(scene.Group, "nodeData", nodeKeys(list))
	j.Enter(func(i int, nd *scene.Element) {
		strat.nodeDataEnter(ctx, nd, pw, g.parent, g, list[i])
	})
	j.Each(func(i int, nd *scene.Element) {
		strat.nodeDataUpdate(ctx, nd, pw, g.parent, g, list[i])
	})
	ctx.Metrics.exit("nodeData", j)
}
