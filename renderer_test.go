package pathplot

import (
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
)

func TestRenderNeedsCollaborators(t *testing.T) {
	r := &DatasetRenderer{Settings: DefaultSettings(nil)}
	if err := r.Render(); err == nil {
		t.Errorf("Render without path list and store succeeded")
	}
}

func TestDatasetOffsets(t *testing.T) {
	e := newEnv()
	first := NewDatasetWrapper(matrix("m1", "first"), "a")
	first.Collapsed = false
	second := NewDatasetWrapper(matrix("m2", "second"))
	second.Hidden = true
	third := NewDatasetWrapper(matrix("m3", "third"))
	pw := e.layout.AddPath(testPath, first, second, third)

	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	ctx := e.r.Context()
	elems := datasetElems(pw)
	if got := keys(elems); !reflect.DeepEqual(got, []string{"m1", "m2", "m3"}) {
		t.Fatalf("datasets = %v", got)
	}
	if elems[2].TY != first.Height(ctx) {
		t.Errorf("third dataset at %g, want height of first %g", elems[2].TY, first.Height(ctx))
	}
	if !elems[1].Hidden || elems[0].Hidden || elems[2].Hidden {
		t.Errorf("hidden flags = %t %t %t", elems[0].Hidden, elems[1].Hidden, elems[2].Hidden)
	}
	want := ctx.Settings.PathHeight + pw.SetHeight + pw.PropertyHeight
	if pw.Container.TY != want {
		t.Errorf("container at %g, want %g", pw.Container.TY, want)
	}
}

func TestGlyphsMatchStore(t *testing.T) {
	e := newEnv()
	d := NewDatasetWrapper(matrix("m1", "expr"), "a")
	d.Collapsed = false
	pw := e.layout.AddPath(testPath, d)
	e.store.Put("n1", "m1", "a", boxStats(5))
	e.store.Put("n3", "m1", "a", boxStats(6))
	e.store.Put("n2", "m1", "", boxStats(4))

	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	el := datasetElems(pw)[0]
	group := el.Child(scene.Group, "dataGroup")
	if got := keys(group.ChildrenOf(scene.Group, "nodeData")); !reflect.DeepEqual(got, []string{"n1", "n3"}) {
		t.Errorf("node glyphs = %v, want [n1 n3]", got)
	}
	if got := keys(el.ChildrenOf(scene.Group, "nodeSummaryData")); !reflect.DeepEqual(got, []string{"n2"}) {
		t.Errorf("summary glyphs = %v, want [n2]", got)
	}

	kept := group.ChildrenOf(scene.Group, "nodeData")[1]
	e.store.Delete("n1", "m1", "a")
	e.store.Put("n2", "m1", "a", boxStats(3))
	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	glyphs := group.ChildrenOf(scene.Group, "nodeData")
	if got := keys(glyphs); !reflect.DeepEqual(got, []string{"n3", "n2"}) {
		t.Errorf("node glyphs after update = %v, want [n3 n2]", got)
	}
	if glyphs[0] != kept {
		t.Errorf("glyph of n3 was recreated")
	}

	// node n2 is the second node: its box is centered below the node
	x := e.layout.NodePositionX(pw, 1, true) - (e.settings.NodeWidth+e.settings.EdgeSize/2)/2
	if glyphs[1].TX != x || glyphs[1].TY != geom.GroupVPadding {
		t.Errorf("glyph of n2 at (%g,%g), want (%g,%g)", glyphs[1].TX, glyphs[1].TY, x, float64(geom.GroupVPadding))
	}
}

type elemState struct {
	tag         scene.Tag
	class, key  string
	tx, ty      float64
	geom        scene.Geometry
	text, title string
	hidden      bool
	owner       string
	points      int
	numChildren int
}

func snapshot(root *scene.Element) ([]elemState, []*scene.Element) {
	var states []elemState
	var elems []*scene.Element
	root.Walk(func(e *scene.Element) bool {
		states = append(states, elemState{
			tag: e.Tag, class: e.Class, key: e.Key,
			tx: e.TX, ty: e.TY, geom: e.Geometry,
			text: e.Text, title: e.Title, hidden: e.Hidden, owner: e.Owner,
			points: len(e.Points), numChildren: len(e.Children()),
		})
		elems = append(elems, e)
		return true
	})
	return states, elems
}

func TestRenderIdempotent(t *testing.T) {
	for _, tilt := range []bool{false, true} {
		e := newEnv()
		e.settings.SetTiltAttributes(tilt)
		d := NewDatasetWrapper(matrix("m1", "expr"), "a", "b")
		d.Collapsed = false
		e.layout.AddPath(testPath, d, NewDatasetWrapper(matrix("m2", "other"), "x"))
		for i, n := range testPath.Nodes {
			e.store.Put(n.ID, "m1", "a", boxStats(float64(3+i)))
			e.store.Put(n.ID, "m1", "", boxStats(5))
		}

		if err := e.r.Render(); err != nil {
			t.Fatal(err)
		}
		before, beforeElems := snapshot(e.layout.Root)
		if err := e.r.Render(); err != nil {
			t.Fatal(err)
		}
		after, afterElems := snapshot(e.layout.Root)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("tilt=%t: second pass changed the scene", tilt)
			continue
		}
		for i := range afterElems {
			if afterElems[i] != beforeElems[i] {
				t.Errorf("tilt=%t: element %d (%s) recreated", tilt, i, after[i].class)
				break
			}
		}
	}
}

func TestOrientationSwitch(t *testing.T) {
	e := newEnv()
	defer e.r.Subscribe(e.settings.Bus)()
	d := NewDatasetWrapper(matrix("m1", "expr"), "a", "b")
	d.Collapsed = false
	pw := e.layout.AddPath(testPath, d)
	for _, n := range testPath.Nodes {
		e.store.Put(n.ID, "m1", "a", boxStats(5))
		e.store.Put(n.ID, "m1", "", boxStats(5))
	}
	root := e.layout.Root

	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	if n := len(root.SelectAll(scene.Group, axisXClass)); n != len(testPath.Nodes) {
		t.Fatalf("%d horizontal axes, want one per node", n)
	}

	e.settings.SetTiltAttributes(true)
	if e.updates != 1 {
		t.Errorf("tilt caused %d path list updates", e.updates)
	}
	if n := len(root.SelectAll(scene.Group, axisXClass)); n != 0 {
		t.Errorf("%d horizontal axes left after tilting", n)
	}
	el := datasetElems(pw)[0]
	axisX, axisY := e.settings.NodeStart+geom.AxisWidth, float64(geom.GroupVPadding)
	if ax := el.Child(scene.Group, axisYClass); ax == nil {
		t.Errorf("dataset has no vertical axis")
	} else if ax.TX != axisX || ax.TY != axisY {
		t.Errorf("dataset axis at (%g,%g), want (%g,%g)", ax.TX, ax.TY, axisX, axisY)
	}
	for _, g := range el.ChildrenOf(scene.Group, "dataGroup") {
		axes := g.ChildrenOf(scene.Group, axisYClass)
		if len(axes) != 1 {
			t.Errorf("group %s has %d vertical axes", g.Key, len(axes))
			continue
		}
		if ax := axes[0]; ax.TX != axisX || ax.TY != axisY {
			t.Errorf("group %s axis at (%g,%g), want (%g,%g)", g.Key, ax.TX, ax.TY, axisX, axisY)
		}
	}
	nodeIndex := make(map[string]int)
	for i, n := range testPath.Nodes {
		nodeIndex[n.ID] = i
	}
	for _, class := range []string{"nodeData", "nodeSummaryData"} {
		for _, glyph := range root.SelectAll(scene.Group, class) {
			x := e.layout.NodePositionX(pw, nodeIndex[glyph.Key], true)
			if glyph.TX != x || glyph.TY != axisY {
				t.Errorf("%s %s at (%g,%g), want (%g,%g)", class, glyph.Key, glyph.TX, glyph.TY, x, axisY)
			}
			if glyph.Owner != Vertical.String() {
				t.Errorf("%s %s drawn %s", class, glyph.Key, glyph.Owner)
			}
			if n := len(glyph.ChildrenOf(scene.Rect, "box")); n != 1 {
				t.Errorf("%s %s has %d boxes", class, glyph.Key, n)
			}
			if box := glyph.Child(scene.Rect, "box"); box.Width != geom.BoxWidth {
				t.Errorf("%s %s box not vertical: %+v", class, glyph.Key, box.Geometry)
			}
		}
	}

	e.settings.SetTiltAttributes(false)
	if n := len(root.SelectAll(scene.Group, axisYClass)); n != 0 {
		t.Errorf("%d vertical axes left after untilting", n)
	}
	half := (e.settings.NodeWidth + e.settings.EdgeSize/2) / 2
	for _, glyph := range root.SelectAll(scene.Group, "nodeData") {
		x := e.layout.NodePositionX(pw, nodeIndex[glyph.Key], true) - half
		if glyph.TX != x || glyph.TY != axisY {
			t.Errorf("horizontal nodeData %s at (%g,%g), want (%g,%g)", glyph.Key, glyph.TX, glyph.TY, x, axisY)
		}
	}
	if n := len(root.SelectAll(scene.Group, axisXClass)); n != len(testPath.Nodes) {
		t.Errorf("%d horizontal axes after untilting", n)
	}
}

func TestCollapseToggle(t *testing.T) {
	e := newEnv()
	d := NewDatasetWrapper(matrix("m1", "expr"), "a")
	pw := e.layout.AddPath(testPath, d)
	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}

	var events []Event
	e.settings.Bus.Subscribe(EventCollapseElementType, func(ev Event) {
		events = append(events, ev)
	})
	toggle := datasetElems(pw)[0].Child(scene.Text, "collapseIconSmall")
	if toggle.Text != iconCollapsed {
		t.Errorf("icon = %q", toggle.Text)
	}

	toggle.Click(scene.ClickEvent{Ctrl: true})
	want := []Event{{Type: EventCollapseElementType, Collapse: CollapseType{Type: "expr", Collapsed: false}}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, want %+v", events, want)
	}
	if !d.Collapsed || e.updates != 0 {
		t.Errorf("ctrl-click changed the dataset: collapsed=%t updates=%d", d.Collapsed, e.updates)
	}

	toggle.Click(scene.ClickEvent{})
	if d.Collapsed || e.updates != 1 {
		t.Errorf("click: collapsed=%t updates=%d", d.Collapsed, e.updates)
	}
	if toggle.Text != iconExpanded {
		t.Errorf("icon after expanding = %q", toggle.Text)
	}
	if n := len(datasetElems(pw)[0].ChildrenOf(scene.Group, "dataGroup")); n != 1 {
		t.Errorf("%d data groups shown after expanding", n)
	}
	if len(events) != 1 {
		t.Errorf("plain click published %d events", len(events)-1)
	}
}

func TestCollapseElementType(t *testing.T) {
	e := newEnv()
	defer e.r.Subscribe(e.settings.Bus)()
	a := NewDatasetWrapper(matrix("m1", "expr"))
	b := NewDatasetWrapper(matrix("m2", "expr"))
	other := NewDatasetWrapper(matrix("m3", "other"))
	e.layout.AddPath(testPath, a, other)
	e.layout.AddPath(data.Path{ID: "p2", Nodes: testPath.Nodes[:2]}, b)

	e.settings.Bus.Notify(Event{Type: EventCollapseElementType, Collapse: CollapseType{Type: "expr", Collapsed: false}})
	if a.Collapsed || b.Collapsed || !other.Collapsed {
		t.Errorf("collapsed = %t %t %t, want false false true", a.Collapsed, b.Collapsed, other.Collapsed)
	}
	if e.updates != 1 {
		t.Errorf("%d path list updates", e.updates)
	}
}

// reentrantStore renders again from within the first lookup of a pass.
type reentrantStore struct {
	DataStore
	r     *DatasetRenderer
	calls int
	err   error
}

func (s *reentrantStore) StatsForNode(n data.Node, dataset, group string) (data.Stats, bool) {
	s.calls++
	if s.calls == 1 {
		s.err = s.r.Render()
	}
	return s.DataStore.StatsForNode(n, dataset, group)
}

func TestRenderCoalesces(t *testing.T) {
	e := newEnv()
	store := &reentrantStore{DataStore: e.store, r: e.r}
	e.r.Store = store
	e.r.Metrics = NewMetrics(prometheus.NewRegistry())
	e.layout.AddPath(testPath, NewDatasetWrapper(matrix("m1", "expr"), "a"))

	if err := e.r.Render(); err != nil || store.err != nil {
		t.Fatal(err, store.err)
	}
	if got := testutil.ToFloat64(e.r.Metrics.Passes); got != 2 {
		t.Errorf("%g passes, want 2", got)
	}
	if n := len(datasetElems(e.layout.PathWrappers()[0])); n != 1 {
		t.Errorf("%d dataset elements", n)
	}
}

func TestMetrics(t *testing.T) {
	e := newEnv()
	m := NewMetrics(prometheus.NewRegistry())
	e.r.Metrics = m
	d := NewDatasetWrapper(matrix("m1", "expr"), "a", "b")
	d.Collapsed = false
	e.layout.AddPath(testPath, d)
	e.store.Put("n1", "m1", "a", boxStats(5))
	e.store.Put("n2", "m1", "b", boxStats(5))

	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	for class, want := range map[string]float64{
		"dataset": 1, "dataGroup": 2, "nodeData": 2, axisXClass: 3,
	} {
		if got := testutil.ToFloat64(m.Entered.WithLabelValues(class)); got != want {
			t.Errorf("entered %s = %g, want %g", class, got, want)
		}
	}

	d.Collapsed = true
	if err := e.r.Render(); err != nil {
		t.Fatal(err)
	}
	for class, want := range map[string]float64{"dataGroup": 2, axisXClass: 3} {
		if got := testutil.ToFloat64(m.Exited.WithLabelValues(class)); got != want {
			t.Errorf("exited %s = %g, want %g", class, got, want)
		}
	}
	if got := testutil.ToFloat64(m.Passes); got != 2 {
		t.Errorf("passes = %g", got)
	}
}

func TestGroupBackground(t *testing.T) {
	for _, tc := range []struct {
		tilt bool
		w, h float64
	}{
		{false, 290 + 50 + 25, geom.BoxWidth},
		{true, 290 + 50, geom.AxisSize},
	} {
		e := newEnv()
		e.settings.SetTiltAttributes(tc.tilt)
		d := NewDatasetWrapper(matrix("m1", "expr"), "a")
		d.Collapsed = false
		pw := e.layout.AddPath(testPath, d)
		if err := e.r.Render(); err != nil {
			t.Fatal(err)
		}
		bg := datasetElems(pw)[0].Select(scene.Rect, "background")
		if bg.Width != tc.w || bg.Height != tc.h || bg.X != e.settings.SetTypeIndent {
			t.Errorf("tilt=%t: background %+v, want %gx%g", tc.tilt, bg.Geometry, tc.w, tc.h)
		}
	}
}
