package pathplot

import "github.com/vdobler/pathplot/geom"

// Datasets and data groups form a two level hierarchy of rows. Both share
// the rule for the height of a row without its children.

// baseHeight is the room for a horizontal box plot or, tilted, for a
// vertical axis, padded above and below.
func baseHeight(ctx *Context) float64 {
	if ctx.Tilted() {
		return geom.AxisSize + 2*geom.GroupVPadding
	}
	return geom.BoxWidth + 2*geom.GroupVPadding
}

// offsets stacks rows of the given heights starting at top and returns the
// y of each row.
func offsets(top float64, heights []float64) []float64 {
	ys := make([]float64, len(heights))
	y := top
	for i, h := range heights {
		ys[i] = y
		y += h
	}
	return ys
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// labelY is the baseline of a row label.
func labelY(ctx *Context) float64 {
	return (baseHeight(ctx)-10)/2 + 9
}
