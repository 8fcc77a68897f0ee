package pathplot

import (
	"errors"

	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// DatasetRenderer

// DatasetRenderer draws the datasets of all paths of a path list.
type DatasetRenderer struct {
	Paths    PathList
	Store    DataStore
	Settings *Settings

	Style   Style
	Format  geom.Formatter // nil means geom.FormatNumber
	Metrics *Metrics       // may be nil

	rendering bool
	dirty     bool
}

// NewDatasetRenderer returns a renderer using the default style.
func NewDatasetRenderer(paths PathList, store DataStore, settings *Settings) *DatasetRenderer {
	return &DatasetRenderer{
		Paths:    paths,
		Store:    store,
		Settings: settings,
		Style:    DefaultStyle(vg.Length(10)),
		Format:   geom.FormatNumber,
	}
}

// Context returns the context of the next render pass.
func (r *DatasetRenderer) Context() *Context {
	format := r.Format
	if format == nil {
		format = geom.FormatNumber
	}
	return &Context{
		Orientation: r.Settings.Orientation(),
		Settings:    r.Settings,
		Store:       r.Store,
		Paths:       r.Paths,
		Style:       r.Style,
		Format:      format,
		Metrics:     r.Metrics,
	}
}

// Render brings the dataset containers of all paths up to date. A call
// made while a pass is running, e.g. from a handler triggered by the pass,
// does not render itself but makes the running pass start over once it is
// done.
func (r *DatasetRenderer) Render() error {
	if r.Paths == nil || r.Store == nil || r.Settings == nil {
		return errors.New("pathplot: renderer needs a path list, a data store and settings")
	}
	if r.rendering {
		r.dirty = true
		return nil
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		r.render(r.Context())
		if !r.dirty {
			return nil
		}
		debugf("render requested during a pass, starting over")
	}
}

func (r *DatasetRenderer) render(ctx *Context) {
	for _, pw := range ctx.Paths.PathWrappers() {
		if pw.Container == nil {
			Warning.Printf("path %q has no dataset container", pw.Path.ID)
			continue
		}
		renderPath(ctx, pw)
	}
	ctx.Metrics.pass()
}

func renderPath(ctx *Context, pw *PathWrapper) {
	s := ctx.Settings
	pw.Container.Translate(0, s.PathHeight+pw.SetHeight+pw.PropertyHeight)

	keys := make([]string, len(pw.Datasets))
	heights := make([]float64, len(pw.Datasets))
	for i, d := range pw.Datasets {
		keys[i] = d.ID()
		if d.CanBeShown() {
			heights[i] = d.Height(ctx)
		}
	}

	j := pw.Container.Join(scene.Group, "dataset", keys)
	j.Enter(func(i int, el *scene.Element) {
		pw.Datasets[i].renderEnter(ctx, el, pw)
	})
	ys := offsets(0, heights)
	j.Each(func(i int, el *scene.Element) {
		el.Translate(0, ys[i])
		el.Hidden = !pw.Datasets[i].CanBeShown()
	})
	j.Each(func(i int, el *scene.Element) {
		pw.Datasets[i].renderUpdate(ctx, el, pw)
	})
	ctx.Metrics.exit("dataset", j)
}

// Subscribe makes r follow the layout notifications on bus: collapsing or
// expanding all datasets of a name, and the tilt and align switches. Each
// notification requests an update of the path list. The returned function
// cancels the subscriptions.
func (r *DatasetRenderer) Subscribe(bus *Bus) (cancel func()) {
	cancels := []func(){
		bus.Subscribe(EventCollapseElementType, func(ev Event) {
			for _, pw := range r.Paths.PathWrappers() {
				for _, d := range pw.Datasets {
					if d.Name() == ev.Collapse.Type {
						d.Collapsed = ev.Collapse.Collapsed
					}
				}
			}
			r.Paths.UpdatePathList()
		}),
		bus.Subscribe(EventTiltAttributes, func(Event) { r.Paths.UpdatePathList() }),
		bus.Subscribe(EventAlignPathNodes, func(Event) { r.Paths.UpdatePathList() }),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// LabelClip returns the clip rectangle referenced by LabelClipPath: row
// labels end where the first node starts.
func LabelClip(s *Settings) scene.ClipRect {
	return scene.ClipRect{
		ID:     "SetLabelClipPath",
		Width:  int(s.NodeStart),
		Height: int(geom.AxisSize + 2*geom.GroupVPadding),
	}
}
