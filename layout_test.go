package pathplot

import (
	"testing"

	"github.com/vdobler/pathplot/data"
	"github.com/vdobler/pathplot/scene"
)

func TestNodePositionX(t *testing.T) {
	e := newEnv()
	pw := e.layout.AddPath(testPath)
	for _, tc := range []struct {
		i        int
		centered bool
		want     float64
	}{
		{0, false, 90},
		{0, true, 115},
		{2, false, 290},
		{2, true, 315},
	} {
		if got := e.layout.NodePositionX(pw, tc.i, tc.centered); got != tc.want {
			t.Errorf("NodePositionX(%d, %t) = %g, want %g", tc.i, tc.centered, got, tc.want)
		}
	}
}

func TestFixedLayoutStacksPaths(t *testing.T) {
	e := newEnv()
	e.layout.AddPath(testPath, NewDatasetWrapper(matrix("m1", "expr")))
	e.layout.AddPath(data.Path{ID: "p2", Nodes: testPath.Nodes[:1]})

	pcs := e.layout.Root.ChildrenOf(scene.Group, "pathContainer")
	if len(pcs) != 2 {
		t.Fatalf("%d path containers", len(pcs))
	}
	s := e.settings
	want := s.PathHeight + 18 + s.PathSpacing
	if pcs[0].TY != 0 || pcs[1].TY != want {
		t.Errorf("paths at %g and %g, want 0 and %g", pcs[0].TY, pcs[1].TY, want)
	}
	if n := len(pcs[0].ChildrenOf(scene.Group, "node")); n != 3 {
		t.Errorf("%d nodes drawn", n)
	}

	w, h := e.layout.Size()
	if w != 290+50+25 || h != want+s.PathHeight {
		t.Errorf("size = %gx%g", w, h)
	}
}

func TestUpdatePathListRelayouts(t *testing.T) {
	e := newEnv()
	d := NewDatasetWrapper(matrix("m1", "expr"))
	e.layout.AddPath(testPath, d)
	e.layout.AddPath(data.Path{ID: "p2"})

	d.Collapsed = false
	e.layout.UpdatePathList()
	pcs := e.layout.Root.ChildrenOf(scene.Group, "pathContainer")
	s := e.settings
	if want := s.PathHeight + 18 + 16 + s.PathSpacing; pcs[1].TY != want {
		t.Errorf("second path at %g, want %g", pcs[1].TY, want)
	}
	if e.updates != 1 {
		t.Errorf("OnUpdate called %d times", e.updates)
	}
}
