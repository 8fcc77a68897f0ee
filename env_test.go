package pathplot

import (
	"image/color"

	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/geom"
	"github.com/vdobler/pathplot/scene"
)

// testEnv is a path list with a renderer drawing into a fresh scene.
type testEnv struct {
	settings *Settings
	store    *data.MemStore
	layout   *FixedLayout
	r        *DatasetRenderer
	updates  int // calls of UpdatePathList
}

func newEnv() *testEnv {
	e := &testEnv{
		settings: DefaultSettings(NewBus()),
		store:    data.NewMemStore(),
	}
	e.layout = NewFixedLayout(e.settings, testStyle(), scene.New())
	e.r = &DatasetRenderer{
		Paths:    e.layout,
		Store:    e.store,
		Settings: e.settings,
		Style:    testStyle(),
	}
	e.layout.OnUpdate = func() error {
		e.updates++
		return e.r.Render()
	}
	return e
}

// testStyle is a style without fonts.
func testStyle() Style {
	var st Style
	st.Label.Color = color.Black
	st.GroupBackground = color.NRGBA{240, 240, 240, 128}
	st.Box = geom.DefaultBoxStyle
	st.Axis = geom.DefaultAxisStyle
	return st
}

var testPath = data.Path{
	ID: "p1",
	Nodes: []data.Node{
		{ID: "n1", Name: "A"},
		{ID: "n2", Name: "B"},
		{ID: "n3", Name: "C"},
	},
}

func matrix(id, name string) data.Dataset {
	ds := data.Dataset{ID: id, Name: name, Color: "#1f77b4", Type: data.MatrixType}
	ds.Stats.Min, ds.Stats.Max = 0, 10
	return ds
}

func boxStats(median float64) data.Stats {
	st := data.EmptyStats()
	st.Quartile25, st.Median, st.Quartile75 = median-3, median, median+3
	st.IQRMin, st.IQRMax = 0, 10
	st.Min, st.Max, st.Mean, st.Std = 0, 10, median, 2
	st.NumElements = 20
	return st
}

func datasetElems(pw *PathWrapper) []*scene.Element {
	return pw.Container.ChildrenOf(scene.Group, "dataset")
}

func keys(elems []*scene.Element) []string {
	var list []string
	for _, e := range elems {
		list = append(list, e.Key)
	}
	return list
}
