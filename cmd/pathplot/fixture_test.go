package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/vdobler/pathplot"
	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/scene"
)

func load(t *testing.T) *Fixture {
	t.Helper()
	f, err := LoadFixture("testdata/example.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadFixture(t *testing.T) {
	f := load(t)
	if len(f.Paths) != 2 || len(f.Datasets) != 2 || len(f.Samples) != 9 {
		t.Fatalf("fixture has %d paths, %d datasets, %d samples",
			len(f.Paths), len(f.Datasets), len(f.Samples))
	}
	if n := f.Paths[0].Nodes[1]; n.ID != "n2" || n.Name != "Pyruvate" {
		t.Errorf("node = %+v", n)
	}
	if d := f.Datasets[0]; d.Max == nil || *d.Max != 10 || d.Type != data.MatrixType || len(d.Sticky) != 1 {
		t.Errorf("dataset = %+v", d)
	}
	if v := f.Samples[2].Values[4]; !math.IsNaN(v) {
		t.Errorf(".nan decoded as %g", v)
	}
}

const rangeFixture = `
datasets:
  - {id: a, min: -1}
  - {id: b}
samples:
  - {node: n1, dataset: a, values: [2, 7]}
  - {node: n2, dataset: a, group: g, values: [3, .nan, 9]}
  - {node: n1, dataset: c, values: [100]}
`

func TestFixtureRange(t *testing.T) {
	f, err := ReadFixture(strings.NewReader(rangeFixture))
	if err != nil {
		t.Fatal(err)
	}
	if min, max := f.Range(f.Datasets[0]); min != -1 || max != 9 {
		t.Errorf("range of a = [%g,%g], want [-1,9]", min, max)
	}
	if min, max := f.Range(f.Datasets[1]); !math.IsNaN(min) || !math.IsNaN(max) {
		t.Errorf("range of b without samples = [%g,%g], want NaN", min, max)
	}
}

func TestReadFixtureUnknownField(t *testing.T) {
	if _, err := ReadFixture(strings.NewReader("pathz: []\n")); err == nil {
		t.Errorf("unknown field accepted")
	}
}

func TestFixtureStore(t *testing.T) {
	store := load(t).Store()
	n1 := data.Node{ID: "n1"}

	tumor, ok := store.StatsForNode(n1, "expr", "tumor")
	if !ok || tumor.NumElements != 6 {
		t.Fatalf("tumor stats = %+v, %t", tumor, ok)
	}
	pooled, ok := store.StatsForNode(n1, "expr", "")
	if !ok || pooled.NumElements != 11 {
		t.Errorf("pooled stats = %+v, %t", pooled, ok)
	}
	explicit, ok := store.StatsForNode(data.Node{ID: "n3"}, "mut", "")
	if !ok || explicit.NumElements != 4 {
		t.Errorf("explicit dataset stats = %+v, %t", explicit, ok)
	}
	if _, ok := store.StatsForNode(data.Node{ID: "n4"}, "mut", "somatic"); ok {
		t.Errorf("stats for a node without samples")
	}
}

func TestBuildUnknownDataset(t *testing.T) {
	f := &Fixture{Paths: []FixturePath{{ID: "p", Datasets: []string{"nope"}}}}
	settings := pathplot.DefaultSettings(nil)
	layout := pathplot.NewFixedLayout(settings, pathplot.Style{}, scene.New())
	if err := f.Build(layout, settings); err == nil {
		t.Errorf("unknown dataset accepted")
	}
}

func TestRenderFixture(t *testing.T) {
	f := load(t)
	settings := pathplot.DefaultSettings(pathplot.NewBus())
	root := scene.New()
	layout := pathplot.NewFixedLayout(settings, pathplot.Style{}, root)
	if err := f.Build(layout, settings); err != nil {
		t.Fatal(err)
	}
	if !settings.IsDataGroupSticky("expr", "tumor") {
		t.Errorf("sticky group not configured")
	}

	r := &pathplot.DatasetRenderer{Paths: layout, Store: f.Store(), Settings: settings}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w, h := layout.Size()
	if err := scene.WriteSVG(&buf, root, int(w), int(h), pathplot.LabelClip(settings)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// Collapsed datasets show the summary glyphs plus the sticky tumor group.
	if n := strings.Count(out, `class="nodeSummaryData"`); n != 7 {
		t.Errorf("%d summary glyphs, want 7", n)
	}
	if n := strings.Count(out, `class="nodeData"`); n != 4 {
		t.Errorf("%d node glyphs, want 4", n)
	}
}
