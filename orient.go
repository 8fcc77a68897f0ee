package pathplot

import (
	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
)

// A strategy draws the orientation specific parts of the dataset rows.
// Exactly one strategy, selected by Context.Orientation, is used per pass.
type strategy struct {
	datasetEnter   func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper)
	datasetUpdate  func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper)
	groupEnter     func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, g *DataGroupWrapper)
	groupUpdate    func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, g *DataGroupWrapper)
	nodeDataEnter  func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, g *DataGroupWrapper, sd StatData)
	nodeDataUpdate func(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, g *DataGroupWrapper, sd StatData)
}

var strategies = [...]strategy{
	Horizontal: {
		datasetEnter:   hDatasetEnter,
		datasetUpdate:  hDatasetUpdate,
		groupEnter:     func(*Context, *scene.Element, *PathWrapper, *DatasetWrapper, *DataGroupWrapper) {},
		groupUpdate:    hGroupUpdate,
		nodeDataEnter:  nodeDataEnter,
		nodeDataUpdate: nodeDataUpdate,
	},
	Vertical: {
		datasetEnter:   vDatasetEnter,
		datasetUpdate:  vDatasetUpdate,
		groupEnter:     vGroupEnter,
		groupUpdate:    vGroupUpdate,
		nodeDataEnter:  nodeDataEnter,
		nodeDataUpdate: nodeDataUpdate,
	},
}

// Element classes of the axes. Each strategy removes the axes of the other.
const (
	axisXClass = "boxPlotAxisX"
	axisYClass = "boxPlotAxisY"
)

// glyphPosition is where the box plot of the node at nodeIndex is placed.
func glyphPosition(ctx *Context, pw *PathWrapper, nodeIndex int) (x, y float64) {
	x = ctx.Paths.NodePositionX(pw, nodeIndex, true)
	if !ctx.Tilted() {
		x -= ctx.axisSize() / 2
	}
	return x, geom.GroupVPadding
}

func nodeDataEnter(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, _ *DataGroupWrapper, sd StatData) {
	el.Translate(glyphPosition(ctx, pw, sd.NodeIndex))
	geom.AppendBoxPlot(ctx.Orientation, el, sd.Stats, ctx.valueScale(d).Map, d.Color(), ctx.Style.Box, ctx.Format)
}

func nodeDataUpdate(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper, _ *DataGroupWrapper, sd StatData) {
	x, y := glyphPosition(ctx, pw, sd.NodeIndex)
	el.Animate(func(e *scene.Element) { e.Translate(x, y) })
	geom.UpdateBoxPlot(ctx.Orientation, el, sd.Stats, ctx.valueScale(d).Map, ctx.Style.Box, ctx.Format)
}

// summarize reconciles the g.nodeSummaryData glyphs of d, one per node with
// dataset level statistics. Datasets without data groups have no summary.
func summarize(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper) {
	var list []StatData
	if len(d.Children) > 0 {
		list = ctx.statData(pw, d.ID(), "")
	}
	scale := ctx.valueScale(d).Map

	j := el.Join(scene.Group, "nodeSummaryData", nodeKeys(list))
	j.Enter(func(i int, g *scene.Element) {
		g.Translate(glyphPosition(ctx, pw, list[i].NodeIndex))
		geom.AppendBoxPlot(ctx.Orientation, g, list[i].Stats, scale, d.Color(), ctx.Style.Box, ctx.Format)
	})
	j.Update(func(i int, g *scene.Element) {
		x, y := glyphPosition(ctx, pw, list[i].NodeIndex)
		g.Animate(func(e *scene.Element) { e.Translate(x, y) })
		geom.UpdateBoxPlot(ctx.Orientation, g, list[i].Stats, scale, ctx.Style.Box, ctx.Format)
	})
	ctx.Metrics.exit("nodeSummaryData", j)
}

// ----------------------------------------------------------------------------
// Horizontal

// nodeAxes reconciles one bottom axis per node of pw below the data groups
// of d.
func nodeAxes(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper) {
	scale := ctx.valueScale(d)
	y := d.Height(ctx) - geom.AxisWidth

	j := el.Join(scene.Group, axisXClass, scene.IndexKeys(len(pw.Path.Nodes)))
	j.Each(func(i int, ax *scene.Element) {
		x := ctx.Paths.NodePositionX(pw, i, true) - ctx.axisSize()/2
		if j.Entered(i) {
			ax.Translate(x, y)
		} else {
			ax.Animate(func(e *scene.Element) { e.Translate(x, y) })
		}
		geom.DrawAxis(ax, geom.Horizontal, scale, ctx.Style.Axis)
	})
	ctx.Metrics.exit(axisXClass, j)
}

func hDatasetEnter(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper) {
	nodeAxes(ctx, el, pw, d)
}

func hDatasetUpdate(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper) {
	ctx.Metrics.removeAll(el, scene.Group, axisYClass)
	if d.Collapsed {
		ctx.Metrics.removeAll(el, scene.Group, axisXClass)
	} else {
		nodeAxes(ctx, el, pw, d)
	}
	summarize(ctx, el, pw, d)
}

func hGroupUpdate(ctx *Context, el *scene.Element, _ *PathWrapper, _ *DatasetWrapper, _ *DataGroupWrapper) {
	ctx.Metrics.removeAll(el, scene.Group, axisYClass)
}

// ----------------------------------------------------------------------------
// Vertical

// valueAxis draws the single left axis of a dataset or data group row into
// el, adding it if el has none.
func valueAxis(ctx *Context, el *scene.Element, d *DatasetWrapper) {
	ax := el.Child(scene.Group, axisYClass)
	if ax == nil {
		ax = el.Append(scene.Group, axisYClass)
		ax.Translate(ctx.Settings.NodeStart+geom.AxisWidth, geom.GroupVPadding)
		ctx.Metrics.entered(axisYClass, 1)
	}
	geom.DrawAxis(ax, geom.Vertical, ctx.valueScale(d), ctx.Style.Axis)
}

func vDatasetEnter(ctx *Context, el *scene.Element, _ *PathWrapper, d *DatasetWrapper) {
	valueAxis(ctx, el, d)
}

func vDatasetUpdate(ctx *Context, el *scene.Element, pw *PathWrapper, d *DatasetWrapper) {
	ctx.Metrics.removeAll(el, scene.Group, axisXClass)
	valueAxis(ctx, el, d)
	summarize(ctx, el, pw, d)
}

func vGroupEnter(ctx *Context, el *scene.Element, _ *PathWrapper, d *DatasetWrapper, _ *DataGroupWrapper) {
	valueAxis(ctx, el, d)
}

func vGroupUpdate(ctx *Context, el *scene.Element, _ *PathWrapper, d *DatasetWrapper, _ *DataGroupWrapper) {
	valueAxis(ctx, el, d)
}
