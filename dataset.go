package pathplot

import (
	"image/color"

	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
)

// LabelClipPath is referenced by all row labels; see LabelClip.
const LabelClipPath = "url(#SetLabelClipPath)"

// Icons of the collapse toggle (Font Awesome caret right and caret down).
const (
	iconCollapsed = "\uf0da"
	iconExpanded  = "\uf0dd"
)

// ----------------------------------------------------------------------------
// DatasetWrapper

// DatasetWrapper is one dataset attached to a path together with its view
// state.
type DatasetWrapper struct {
	Dataset data.Dataset

	// Collapsed datasets show only their sticky data groups.
	Collapsed bool

	// Hidden datasets are filtered out of the view. They keep their
	// element but take no room.
	Hidden bool

	// Value range of the dataset's scales. NaN unless the dataset is a
	// matrix.
	MinValue, MaxValue float64

	Children []*DataGroupWrapper

	color color.Color
}

// NewDatasetWrapper wraps ds in a collapsed wrapper with one data group per
// name in groups.
func NewDatasetWrapper(ds data.Dataset, groups ...string) *DatasetWrapper {
	d := &DatasetWrapper{Dataset: ds, Collapsed: true}
	d.MinValue, d.MaxValue = ds.Range()
	if ds.Color != "" {
		c, err := data.ParseHexColor(ds.Color)
		if err != nil {
			Warning.Printf("dataset %q: %v", ds.ID, err)
		}
		d.color = c
	}
	for _, g := range groups {
		d.AddGroup(g)
	}
	return d
}

// AddGroup appends a data group called name.
func (d *DatasetWrapper) AddGroup(name string) *DataGroupWrapper {
	g := &DataGroupWrapper{Name: name, parent: d}
	d.Children = append(d.Children, g)
	return g
}

func (d *DatasetWrapper) ID() string   { return d.Dataset.ID }
func (d *DatasetWrapper) Name() string { return d.Dataset.Name }

// Color is the color of the dataset or nil if it has none.
func (d *DatasetWrapper) Color() color.Color { return d.color }

// BaseHeight is the height of the dataset's own row.
func (d *DatasetWrapper) BaseHeight(ctx *Context) float64 { return baseHeight(ctx) }

// Height is the height of the dataset including its visible data groups
// and, for expanded horizontal rows, the per-node axes.
func (d *DatasetWrapper) Height(ctx *Context) float64 {
	h := d.BaseHeight(ctx) + sum(d.childHeights(ctx, d.VisibleChildren(ctx)))
	if !ctx.Tilted() && !d.Collapsed {
		h += geom.AxisWidth
	}
	return h
}

// CanBeShown reports whether the dataset is part of the view.
func (d *DatasetWrapper) CanBeShown() bool { return !d.Hidden }

// VisibleChildren returns the data groups which can be shown.
func (d *DatasetWrapper) VisibleChildren(ctx *Context) []*DataGroupWrapper {
	var list []*DataGroupWrapper
	for _, g := range d.Children {
		if g.CanBeShown(ctx) {
			list = append(list, g)
		}
	}
	return list
}

func (d *DatasetWrapper) childHeights(ctx *Context, groups []*DataGroupWrapper) []float64 {
	hs := make([]float64, len(groups))
	for i, g := range groups {
		hs[i] = g.Height(ctx)
	}
	return hs
}

func (d *DatasetWrapper) labelColor(ctx *Context) color.Color {
	if d.color == nil {
		return ctx.Style.Label.Color
	}
	return d.color
}

func collapseIcon(collapsed bool) string {
	if collapsed {
		return iconCollapsed
	}
	return iconExpanded
}

func (d *DatasetWrapper) renderEnter(ctx *Context, el *scene.Element, pw *PathWrapper) {
	toggle := el.Append(scene.Text, "collapseIconSmall")
	toggle.X = 5
	toggle.Y = labelY(ctx)

	label := el.Append(scene.Text, "label")
	label.X = ctx.Settings.SetTypeIndent
	label.Y = labelY(ctx)
	label.ClipPath = LabelClipPath
	label.Fill = d.labelColor(ctx)
	label.Text = d.Name()
	label.Title = d.Name()

	strategies[ctx.Orientation].datasetEnter(ctx, el, pw, d)
}

func (d *DatasetWrapper) renderUpdate(ctx *Context, el *scene.Element, pw *PathWrapper) {
	toggle := el.Child(scene.Text, "collapseIconSmall")
	toggle.Text = collapseIcon(d.Collapsed)
	toggle.Y = labelY(ctx)
	el.Child(scene.Text, "label").Y = labelY(ctx)

	bus, paths := ctx.Settings.Bus, ctx.Paths
	toggle.OnClick = func(ev scene.ClickEvent) {
		collapsed := !d.Collapsed
		if ev.Ctrl {
			bus.Notify(Event{
				Type:     EventCollapseElementType,
				Collapse: CollapseType{Type: d.Name(), Collapsed: collapsed},
			})
			return
		}
		d.Collapsed = collapsed
		toggle.Text = collapseIcon(collapsed)
		paths.UpdatePathList()
	}

	strategies[ctx.Orientation].datasetUpdate(ctx, el, pw, d)

	groups := d.VisibleChildren(ctx)
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Name
	}
	j := el.Join(scene.Group, "dataGroup", keys)
	j.Enter(func(i int, g *scene.Element) {
		groups[i].renderEnter(ctx, g, pw)
	})
	ys := offsets(d.BaseHeight(ctx), d.childHeights(ctx, groups))
	j.Each(func(i int, g *scene.Element) {
		g.Translate(0, ys[i])
	})
	j.Each(func(i int, g *scene.Element) {
		groups[i].renderUpdate(ctx, g, pw)
	})
	ctx.Metrics.exit("dataGroup", j)
}
