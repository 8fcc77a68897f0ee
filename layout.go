package pathplot

import (
	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/scene"
)

// DataStore provides precomputed statistics. The empty group selects the
// aggregate over all groups of the dataset.
type DataStore interface {
	StatsForNode(node data.Node, datasetID, group string) (data.Stats, bool)
}

// PathList owns the paths shown and the horizontal layout of their nodes.
type PathList interface {
	PathWrappers() []*PathWrapper
	NodePositionX(pw *PathWrapper, nodeIndex int, centered bool) float64

	// UpdatePathList lays out the whole list again and redraws it.
	UpdatePathList()
}

// PathWrapper is one path of a path list together with the datasets
// attached to it.
type PathWrapper struct {
	Path     data.Path
	Datasets []*DatasetWrapper

	// Heights of the rows between the path header and the datasets.
	SetHeight      float64
	PropertyHeight float64

	// Container is the group the datasets of the path are drawn into.
	Container *scene.Element
}

// Height returns the height of the dataset rows of pw.
func (pw *PathWrapper) Height(ctx *Context) float64 {
	h := 0.0
	for _, d := range pw.Datasets {
		if d.CanBeShown() {
			h += d.Height(ctx)
		}
	}
	return h
}

// ----------------------------------------------------------------------------
// FixedLayout

// FixedLayout is a PathList which stacks its paths vertically and places
// the nodes of every path at fixed distances. Each path gets a
// g.pathContainer below Root holding the node boxes and the path's
// g.datasetGroup.
type FixedLayout struct {
	Settings *Settings
	Style    Style
	Root     *scene.Element

	// OnUpdate is called by UpdatePathList after the layout is done,
	// typically to render the datasets.
	OnUpdate func() error

	paths      []*PathWrapper
	containers map[*PathWrapper]*scene.Element
}

// NewFixedLayout returns an empty layout drawing into root.
func NewFixedLayout(settings *Settings, style Style, root *scene.Element) *FixedLayout {
	return &FixedLayout{
		Settings:   settings,
		Style:      style,
		Root:       root,
		containers: make(map[*PathWrapper]*scene.Element),
	}
}

// AddPath appends p with the given datasets to the list.
func (l *FixedLayout) AddPath(p data.Path, datasets ...*DatasetWrapper) *PathWrapper {
	pc := l.Root.Append(scene.Group, "pathContainer")
	pc.Key = p.ID
	pw := &PathWrapper{Path: p, Datasets: datasets}
	pw.Container = pc.Append(scene.Group, "datasetGroup")
	l.paths = append(l.paths, pw)
	l.containers[pw] = pc
	l.drawNodes(pw, pc)
	l.Layout()
	return pw
}

func (l *FixedLayout) drawNodes(pw *PathWrapper, pc *scene.Element) {
	s := l.Settings
	y := (s.PathHeight - s.NodeHeight) / 2
	j := pc.Join(scene.Group, "node", scene.IndexKeys(len(pw.Path.Nodes)))
	j.Enter(func(i int, g *scene.Element) {
		box := g.Append(scene.Rect, "nodeBox")
		box.Fill = l.Style.Node.Fill
		box.Stroke = l.Style.Node.Border.Color
		box.StrokeWidth = float64(l.Style.Node.Border.Width)
		label := g.Append(scene.Text, "nodeLabel")
		label.Anchor = "middle"
		label.DY = ".32em"
		label.Fill = l.Style.Node.Label.Color
	})
	j.Each(func(i int, g *scene.Element) {
		n := pw.Path.Nodes[i]
		g.Translate(l.NodePositionX(pw, i, false), y)
		g.Title = n.Name
		box := g.Child(scene.Rect, "nodeBox")
		box.Geometry = scene.Geometry{Width: s.NodeWidth, Height: s.NodeHeight}
		label := g.Child(scene.Text, "nodeLabel")
		label.Geometry = scene.Geometry{X: s.NodeWidth / 2, Y: s.NodeHeight / 2}
		label.Text = n.Name
	})
	j.Exit()
}

// PathWrappers returns the paths in display order.
func (l *FixedLayout) PathWrappers() []*PathWrapper { return l.paths }

// NodePositionX returns the x of the left edge, or with centered the
// center, of the node at nodeIndex.
func (l *FixedLayout) NodePositionX(pw *PathWrapper, nodeIndex int, centered bool) float64 {
	s := l.Settings
	x := s.NodeStart + float64(nodeIndex)*(s.NodeWidth+s.EdgeSize)
	if centered {
		x += s.NodeWidth / 2
	}
	return x
}

// Layout stacks the path containers for the current dataset heights.
func (l *FixedLayout) Layout() {
	ctx := &Context{Orientation: l.Settings.Orientation(), Settings: l.Settings}
	y := 0.0
	for _, pw := range l.paths {
		pc := l.containers[pw]
		pc.Translate(0, y)
		y += l.pathHeight(ctx, pw) + l.Settings.PathSpacing
	}
}

func (l *FixedLayout) pathHeight(ctx *Context, pw *PathWrapper) float64 {
	return l.Settings.PathHeight + pw.SetHeight + pw.PropertyHeight + pw.Height(ctx)
}

// UpdatePathList lays out the list and calls OnUpdate.
func (l *FixedLayout) UpdatePathList() {
	l.Layout()
	if l.OnUpdate == nil {
		return
	}
	if err := l.OnUpdate(); err != nil {
		Warning.Printf("update path list: %v", err)
	}
}

// Size returns the extent of the laid out list.
func (l *FixedLayout) Size() (width, height float64) {
	ctx := &Context{Orientation: l.Settings.Orientation(), Settings: l.Settings}
	s := l.Settings
	for i, pw := range l.paths {
		if i > 0 {
			height += s.PathSpacing
		}
		height += l.pathHeight(ctx, pw)
		if n := len(pw.Path.Nodes); n > 0 {
			if w := l.NodePositionX(pw, n-1, false) + s.NodeWidth + s.EdgeSize/2; w > width {
				width = w
			}
		}
	}
	return width, height
}
